package api

import (
	"encoding/json"
	"net/http"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/logger"
)

// userID identifies the caller. The frontend proxies a session header; local
// development falls back to a fixed id.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return "local"
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid request body")
	}
	return nil
}
