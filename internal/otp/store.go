// Package otp defines the one-time reset code store and its in-memory implementation.
package otp

import (
	"context"
	"crypto/rand"
	"math/big"
	"sync"
	"time"
)

// Entry is a live reset code for one email.
type Entry struct {
	Code      string
	ExpiresAt time.Time
}

// Store keeps at most one live entry per email. Put overwrites any prior entry.
// Expiry is owned by the caller: Get returns stale entries so the reset flow
// can distinguish "never issued" from "expired".
type Store interface {
	// Put records an entry for email, replacing any existing one.
	Put(ctx context.Context, email string, e Entry) error
	// Get returns the entry for email, if any.
	Get(ctx context.Context, email string) (Entry, bool, error)
	// Delete removes the entry for email. Deleting a missing entry is not an error.
	Delete(ctx context.Context, email string) error
}

// MemoryStore is a mutex-guarded process-local Store. Suitable for a
// single-instance deployment only; entries do not survive restarts.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Put records an entry, replacing any existing one and dropping entries
// that are already past expiry so abandoned flows do not accumulate.
func (s *MemoryStore) Put(_ context.Context, email string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for k, v := range s.entries {
		if v.ExpiresAt.Before(now) {
			delete(s.entries, k)
		}
	}
	s.entries[email] = e
	return nil
}

// Get returns the entry for email, expired or not.
func (s *MemoryStore) Get(_ context.Context, email string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[email]
	return e, ok, nil
}

// Delete removes the entry for email.
func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

var codeRange = big.NewInt(900000)

// GenerateCode returns a uniformly random 6-digit code in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}
