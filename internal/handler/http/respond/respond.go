// Package respond writes JSON responses for the article API.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes v as JSON with the given status code. A nil v writes no body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes msg as a JSON error body. msg must be safe to show to clients.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// Internal logs err with credentials masked and replies with msg only.
func Internal(w http.ResponseWriter, logger *slog.Logger, code int, msg string, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(msg,
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Error(w, code, msg)
}
