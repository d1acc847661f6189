// Package rest
package rest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// JSONValidationError flattens the field map into a single deterministic
// message so clients always get the same body shape as other errors.
func JSONValidationError(w http.ResponseWriter, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(errs))
	for _, field := range fields {
		messages = append(messages, errs[field])
	}

	JSONError(w, http.StatusBadRequest, strings.Join(messages, " "))
}
