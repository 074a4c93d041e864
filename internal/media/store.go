package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrBlobNotFound    = errors.New("blob not found")
	ErrInvalidBlobName = errors.New("invalid blob name")
)

// BlobStore holds whole-file blobs addressed by stored filename.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, name string) error
}

// LocalStore keeps blobs in a single directory.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Put(_ context.Context, name string, data []byte, _ string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, ErrBlobNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open blob: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat blob: %w", err)
	}
	return f, info.Size(), nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// resolve refuses anything that is not a single path element.
func (s *LocalStore) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidBlobName
	}
	return filepath.Join(s.root, name), nil
}
