package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"egov-portal-backend/pkg/id"
)

// Store is the blob collaborator the document handlers write uploads through.
type Store interface {
	Save(ctx context.Context, src io.Reader, originalName string) (path string, size int64, err error)
}

// LocalStore writes uploads under a flat directory, one file per upload,
// keyed by a fresh 32-hex id so re-uploads never clobber earlier versions.
type LocalStore struct{ dir string }

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %q: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, src io.Reader, originalName string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	name := id.NewID32() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("storage: create %q: %w", path, err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("storage: write %q: %w", path, err)
	}
	return path, n, nil
}
