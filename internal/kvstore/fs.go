package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS stores each key as one file under a root directory. Writes go through a
// temp file and rename so a reader never sees a partial value.
type FS struct {
	root string
}

// NewFS returns a filesystem-backed store rooted at root, creating the
// directory if needed.
func NewFS(root string) (*FS, error) {
	if root == "" {
		root = "./sitedata"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root}, nil
}

func (s *FS) Driver() Driver { return DriverFS }

// keys must not escape the root
func (s *FS) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

func (s *FS) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FS) Set(_ context.Context, key, value string) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (s *FS) Delete(_ context.Context, key string) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FS) Close() error { return nil }
