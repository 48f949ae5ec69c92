package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV implements KeyValue on top of a single JSON file holding a
// key -> value object. Every Set rewrites the whole file through a temp file
// and rename, so readers never observe a partial write.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV creates a file-backed store at path, creating the parent
// directory if needed.
func NewFileKV(path string) (*FileKV, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &FileKV{path: path}, nil
}

// Get retrieves the value for a key.
func (s *FileKV) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set writes the value for a key.
func (s *FileKV) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between operations.
func (s *FileKV) Close() error {
	return nil
}

func (s *FileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return values, nil
}
