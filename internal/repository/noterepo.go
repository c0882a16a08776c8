package repository

import (
	"context"

	"github.com/avm-dev/notehub/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NoteRepository provides access to user notes.
//
// Mutations are keyed by note ID alone; owner scoping happens only on List.
type NoteRepository interface {
	// Create inserts a new note.
	Create(ctx context.Context, n *model.Note) error
	// GetByID loads a note by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error)
	// ListByOwner returns all notes whose owner id equals ownerID, storage order.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error)
	// Update replaces title/content/category, stamps updated_at and returns the new row.
	Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error)
	// Delete removes a note.
	Delete(ctx context.Context, id uuid.UUID) error
	// SetFavorite flips the favorite flag and returns the new row.
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Note, error)
	// SetCategory replaces the category and returns the new row.
	SetCategory(ctx context.Context, id uuid.UUID, category string) (*model.Note, error)
}
