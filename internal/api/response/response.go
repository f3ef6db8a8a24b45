package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error is the JSON body of a failed request.
type Error struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Err writes a JSON error response.
func Err(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Error{Error: message})
}

// ErrWithDetails writes a JSON error response with additional details.
func ErrWithDetails(w http.ResponseWriter, status int, message string, details any) {
	JSON(w, status, Error{Error: message, Details: details})
}

// Text writes a plain-text response. The form endpoints answer this way.
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
