package store

import "context"

// The session is a singleton value, not a collection: one signed token under
// one key. Minting and verifying the token is the caller's business; the
// store only persists it.

func (s *Store) SetSessionValue(ctx context.Context, value string) error {
	return s.kv.Set(ctx, keySession, value)
}

func (s *Store) SessionValue(ctx context.Context) (string, bool, error) {
	return s.kv.Get(ctx, keySession)
}

// ClearSession logs out. Clearing an absent session is a no-op.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Delete(ctx, keySession)
}
