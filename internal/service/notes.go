package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/avm-dev/notehub/internal/repository"
)

// CreateNoteInput collects fields for a new note. Category and Favorite are optional.
type CreateNoteInput struct {
	OwnerID  string
	Title    string
	Content  string
	Category string
	Favorite bool
}

// NoteService defines CRUD operations over notes.
//
// Mutations are keyed by note ID alone and are not re-verified against the
// authenticated session; owner scoping happens only on List.
type NoteService interface {
	// List returns all notes for the given owner id, storage order.
	List(ctx context.Context, ownerID string) ([]model.Note, error)
	// Create validates required fields, applies defaults and inserts a note.
	Create(ctx context.Context, in CreateNoteInput) (uuid.UUID, error)
	// Get returns a single note by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Note, error)
	// Update replaces note fields and returns the post-update note.
	Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error)
	// Delete removes a note.
	Delete(ctx context.Context, id uuid.UUID) error
	// SetFavorite flips the favorite flag and returns the post-update note.
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Note, error)
	// SetCategory replaces the category and returns the post-update note.
	SetCategory(ctx context.Context, id uuid.UUID, category string) (*model.Note, error)
}

type NoteServiceImpl struct {
	repo repository.NoteRepository
}

// NewNoteService constructs NoteService.
func NewNoteService(repo repository.NoteRepository) *NoteServiceImpl {
	return &NoteServiceImpl{repo: repo}
}

// List returns all notes owned by ownerID.
func (s *NoteServiceImpl) List(ctx context.Context, ownerID string) ([]model.Note, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates required fields and inserts a note with defaults applied.
func (s *NoteServiceImpl) Create(ctx context.Context, in CreateNoteInput) (uuid.UUID, error) {
	if in.OwnerID == "" || in.Title == "" || in.Content == "" {
		return uuid.Nil, fmt.Errorf("%w: userId/title/content required", errs.ErrInvalidInput)
	}
	if in.Category == "" {
		in.Category = model.DefaultCategory
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	n := &model.Note{
		ID:       id,
		UserID:   in.OwnerID,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Favorite: in.Favorite,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Get returns a single note.
func (s *NoteServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces title/content/category and returns the post-update note.
func (s *NoteServiceImpl) Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a note.
func (s *NoteServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SetFavorite flips the favorite flag.
func (s *NoteServiceImpl) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Note, error) {
	return s.repo.SetFavorite(ctx, id, favorite)
}

// SetCategory replaces the category after checking it is non-empty.
func (s *NoteServiceImpl) SetCategory(ctx context.Context, id uuid.UUID, category string) (*model.Note, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category required", errs.ErrInvalidInput)
	}
	return s.repo.SetCategory(ctx, id, category)
}
