// Package httpserver exposes the NoteHub HTTP/JSON API.
package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/avm-dev/notehub/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth    service.AuthService
	notes   service.NoteService
	signKey []byte
	log     *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, notes service.NoteService, signKey []byte, log *zap.Logger) *Server {
	return &Server{auth: auth, notes: notes, signKey: signKey, log: log}
}

// Router builds the route table with the middleware chain applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(Recover(s.log), Logging(s.log))

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	auth.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", s.handleForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", s.handleResetPassword).Methods(http.MethodPost)
	auth.Handle("/change-password", s.RequireAuth(http.HandlerFunc(s.handleChangePassword))).Methods(http.MethodPost)
	auth.Handle("/protected", s.RequireAuth(http.HandlerFunc(s.handleProtected))).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/getNotes", s.handleListNotes).Methods(http.MethodGet)
	api.HandleFunc("/createNote", s.handleCreateNote).Methods(http.MethodPost)
	api.HandleFunc("/{id}", s.handleGetNote).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.handleUpdateNote).Methods(http.MethodPut)
	api.HandleFunc("/{id}", s.handleDeleteNote).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/favorite", s.handleSetFavorite).Methods(http.MethodPatch)
	api.HandleFunc("/{id}/category", s.handleSetCategory).Methods(http.MethodPatch)

	return r
}
