// Package codec serializes whole collections to and from the key-value
// store. A missing key decodes to the collection's zero value; data that is
// present but unparsable surfaces as ErrCorrupt so callers can fall back to
// an empty collection instead of failing the page.
package codec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"studysite/internal/kvstore"
)

// ErrCorrupt marks stored text that does not parse as the expected shape.
var ErrCorrupt = errors.New("corrupt collection")

// Load reads and decodes the collection stored under key. An absent key
// yields T's zero value and a nil error.
func Load[T any](ctx context.Context, kv kvstore.Store, key string) (T, error) {
	var out T
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if !ok || raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: key %s: %v", ErrCorrupt, key, err)
	}
	return out, nil
}

// Save encodes v and writes it under key, replacing any previous value.
func Save[T any](ctx context.Context, kv kvstore.Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(b))
}
