// Package store implements the site's record stores: one flat collection per
// named key, re-read from the key-value store at the start of every
// operation and written back whole at the end. Two page contexts sharing the
// same backing store can interleave a read-modify-write and the last writer
// wins; the backing store is the single source of truth and nothing here
// tries to referee that race.
package store

import (
	"context"
	"errors"

	"studysite/internal/codec"
	"studysite/internal/kvstore"
)

// Collection keys in the backing store.
const (
	keyAccounts = "accounts"
	keySession  = "session"
	keyGroups   = "groups"
	keyTutors   = "tutors"
	keyBookings = "bookings"

	progressPrefix = "progress:"
)

var (
	ErrValidation       = errors.New("invalid input")
	ErrDuplicate        = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidImport    = errors.New("invalid import")
)

type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store { return &Store{kv: kv} }

// load recovers unreadable stored data to the empty collection; a page must
// keep working over hand-edited or partially-written storage.
func load[T any](ctx context.Context, s *Store, key string) (T, error) {
	v, err := codec.Load[T](ctx, s.kv, key)
	if errors.Is(err, codec.ErrCorrupt) {
		var zero T
		return zero, nil
	}
	return v, err
}

func save[T any](ctx context.Context, s *Store, key string, v T) error {
	return codec.Save(ctx, s.kv, key, v)
}
