package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/avm-dev/notehub/internal/service"
)

// Favorite wire values kept for frontend compatibility; the model uses a bool.
const (
	favoriteYes = "Yes"
	favoriteNo  = "No"
)

type noteJSON struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsFavorite string    `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toNoteJSON(n *model.Note) noteJSON {
	fav := favoriteNo
	if n.Favorite {
		fav = favoriteYes
	}
	return noteJSON{
		ID:         n.ID.String(),
		UserID:     n.UserID,
		Title:      n.Title,
		Content:    n.Content,
		Category:   n.Category,
		IsFavorite: fav,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// noteID parses the {id} path variable. Malformed ids map to not-found.
func noteID(r *http.Request) (uuid.UUID, error) {
	return uuid.FromString(mux.Vars(r)["id"])
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	notes, err := s.notes.List(r.Context(), userID)
	if err != nil {
		s.log.Error("list notes", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error fetching notes")
		return
	}

	out := make([]noteJSON, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteJSON(&notes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     string `json:"userId"`
		Title      string `json:"title"`
		Content    string `json:"content"`
		Category   string `json:"category"`
		IsFavorite string `json:"isFavorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.notes.Create(r.Context(), service.CreateNoteInput{
		OwnerID:  req.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Favorite: req.IsFavorite == favoriteYes,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInput) {
			writeMessage(w, http.StatusBadRequest, "User ID, title, and content are required")
			return
		}
		s.log.Error("create note", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error creating note")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Note created successfully",
		"noteId":  id.String(),
	})
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	n, err := s.notes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.log.Error("get note", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := s.notes.Update(r.Context(), id, model.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.log.Error("update note", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := s.notes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.log.Error("delete note", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusOK, "Note deleted successfully")
}

func (s *Server) handleSetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	var req struct {
		IsFavorite string `json:"isFavorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.IsFavorite != favoriteYes && req.IsFavorite != favoriteNo {
		writeMessage(w, http.StatusBadRequest, "Invalid value for isFavorite")
		return
	}

	n, err := s.notes.SetFavorite(r.Context(), id, req.IsFavorite == favoriteYes)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		s.log.Error("set favorite", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error updating favorite status")
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleSetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := s.notes.SetCategory(r.Context(), id, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, "Category is required")
		case errors.Is(err, errs.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Note not found")
		default:
			s.log.Error("set category", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Error updating category")
		}
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}
