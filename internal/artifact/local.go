package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type localStorage struct {
	dir string
}

// NewLocalStorage stores artifacts as files under rootDir.
func NewLocalStorage(rootDir string) (Storage, error) {
	if rootDir == "" {
		return nil, errors.New("artifact root directory cannot be empty")
	}
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve artifact root %q: %w", rootDir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact root %q: %w", abs, err)
	}
	return &localStorage{dir: abs}, nil
}

// Put writes to a temp file in the target directory and hard-links it into
// place, which fails if the key already exists.
func (s *localStorage) Put(ctx context.Context, key string, r io.Reader, _ string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	finalPath := filepath.Join(s.dir, filepath.FromSlash(key))
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, r); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (s *localStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
