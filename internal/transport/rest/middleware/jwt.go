package middleware

import (
	"context"
	"net/http"
	"strings"

	"brainsimp-server/internal/config"
	"brainsimp-server/pkg/token"
)

type contextKey string

const claimsKey contextKey = "claims"

// JWT guards a route with a bearer token. Every rejection gets the same
// response so callers cannot tell a bad signature from an expired token.
func JWT(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				unauthorized(w)
				return
			}

			claims, err := token.Validate(tokenString, cfg.JWTSecret)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or expired token"}`))
}
