package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// GetDocument handles GET /api/{type}.
// Returns the raw JSON document, 404 for unknown types, 500 on read failure.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "type")

	doc, err := s.docs.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "invalid type: "+key)
			return
		}
		slog.ErrorContext(r.Context(), "document read failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "error reading "+key+" data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// PutDocument handles PUT /api/{type}: a full replace of the document.
// The users document must be an array and keeps its administrative account
// even when the body omits it.
func (s *Server) PutDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "type")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		// Includes bodies cut off by the max-body-size middleware.
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	if err := s.docs.Put(r.Context(), key, body); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "invalid type: "+key)
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, unwrapMessage(err))
		default:
			slog.ErrorContext(r.Context(), "document write failed", "key", key, "error", err)
			writeError(w, http.StatusInternalServerError, "error updating "+key+" data")
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: key + " data updated successfully"})
}

// DeleteDocument handles DELETE /api/{type}.
// The document is reset to its empty form ([] or {}), never removed.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "type")

	if err := s.docs.Reset(r.Context(), key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "invalid type: "+key)
			return
		}
		slog.ErrorContext(r.Context(), "document reset failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "error resetting "+key+" data")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: key + " data reset successfully"})
}
