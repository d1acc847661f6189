package rest

import (
	"io/fs"
	"net/http"

	"brainsimp-server/internal/config"
	"brainsimp-server/internal/logger"
	"brainsimp-server/internal/transport/rest/middleware"
	"brainsimp-server/web"
)

type RouterDeps struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Log     logger.Logger
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.RequestLogger(deps.Log))
	globalMw.Use(middleware.CORS(cfg))

	userStack := middleware.New()
	userStack.Use(middleware.JWT(cfg))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	mux.Handle("GET /api/profile", userStack.Then(http.HandlerFunc(deps.Profile.Show)))
	mux.Handle("PUT /api/profile/preferences", userStack.Then(http.HandlerFunc(deps.Profile.UpdatePreferences)))

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServerFS(staticFS))

	return globalMw.Apply(mux)
}
