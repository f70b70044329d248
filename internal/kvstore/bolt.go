package kvstore

import (
	"context"

	"go.etcd.io/bbolt"
)

var boltBucket = []byte("collections")

// Bolt keeps every key in a single bucket of a local bbolt file. This is the
// default backend: a local, serialized, crash-safe store with the same flat
// string-to-string shape as browser storage.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the bolt file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Driver() Driver { return DriverBolt }

func (s *Bolt) Get(_ context.Context, key string) (string, bool, error) {
	var v []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(boltBucket).Get([]byte(key)); raw != nil {
			v = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *Bolt) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
}

func (s *Bolt) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

func (s *Bolt) Close() error { return s.db.Close() }
