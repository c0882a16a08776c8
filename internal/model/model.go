// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. The password hash never leaves the service layer.
type User struct {
	ID        uuid.UUID // PK
	Email     string    // unique, case-sensitive as stored
	PwdHash   []byte    // bcrypt hash (salt embedded)
	Name      string
	Contact   string
	CreatedAt time.Time
}

// Session collects an issued access token and its expiry (for diagnostics).
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Claims is the identity attached to a request after token verification.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

// Note is a single user note.
//
// UserID is the caller-supplied owner string and is not referentially
// enforced against the users table.
type Note struct {
	ID        uuid.UUID
	UserID    string
	Title     string
	Content   string
	Category  string // defaults to "Uncategorized"
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteUpdate carries replacement fields for a full note update.
type NoteUpdate struct {
	Title    string
	Content  string
	Category string
}

// DefaultCategory is assigned when a note is created without a category.
const DefaultCategory = "Uncategorized"
