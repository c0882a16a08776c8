package postgres

import (
	"context"
	"errors"

	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

const noteColumns = `id, user_id, title, content, category, favorite, created_at, updated_at`

// Create inserts a new note row. Timestamps are stamped by the database.
func (r *NoteRepo) Create(ctx context.Context, n *model.Note) error {
	const q = `
INSERT INTO notes (id, user_id, title, content, category, favorite)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, n.ID, n.UserID, n.Title, n.Content, n.Category, n.Favorite)
	return err
}

// GetByID selects a note by ID.
func (r *NoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE id=$1`
	return scanNote(r.db.Pool.QueryRow(ctx, q, id))
}

// ListByOwner returns all notes whose owner id equals ownerID.
func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE user_id=$1`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category,
			&n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update replaces title/content/category, stamps updated_at and returns the new row.
func (r *NoteRepo) Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	const q = `
UPDATE notes SET title=$2, content=$3, category=$4, updated_at=now()
WHERE id=$1
RETURNING ` + noteColumns
	return scanNote(r.db.Pool.QueryRow(ctx, q, id, upd.Title, upd.Content, upd.Category))
}

// Delete removes a note row.
func (r *NoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM notes WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SetFavorite flips the favorite flag and returns the new row.
func (r *NoteRepo) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Note, error) {
	const q = `
UPDATE notes SET favorite=$2, updated_at=now()
WHERE id=$1
RETURNING ` + noteColumns
	return scanNote(r.db.Pool.QueryRow(ctx, q, id, favorite))
}

// SetCategory replaces the category and returns the new row.
func (r *NoteRepo) SetCategory(ctx context.Context, id uuid.UUID, category string) (*model.Note, error) {
	const q = `
UPDATE notes SET category=$2, updated_at=now()
WHERE id=$1
RETURNING ` + noteColumns
	return scanNote(r.db.Pool.QueryRow(ctx, q, id, category))
}

func scanNote(row pgx.Row) (*model.Note, error) {
	var n model.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category,
		&n.Favorite, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &n, nil
}
