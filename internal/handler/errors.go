package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is the JSON body for successful PUT and DELETE operations.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures are
// swallowed — the status line has already been written by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an errorResponse with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.DocumentService.Put: validation error: users data must be an
// array" → "users data must be an array".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
