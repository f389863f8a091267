// Package handler implements the HTTP handlers for the carpool ledger API.
// All handlers are methods on Server. The API surface is document-level:
// collaborators read and replace whole JSON documents and run the domain
// logic client-side, so the routes are GET/PUT/DELETE per document type plus
// a health check.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DocumentServicer defines the document operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type DocumentServicer interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	Reset(ctx context.Context, key string) error
}

// Server holds the dependencies shared by all handlers.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	docs DocumentServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(docs DocumentServicer) *Server {
	return &Server{docs: docs}
}

// Routes returns the chi router for the full API surface.
// Mount it at / in main.go.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/api/{type}", s.GetDocument)
	r.Put("/api/{type}", s.PutDocument)
	r.Delete("/api/{type}", s.DeleteDocument)
	return r
}
