package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore keeps the token in a 0600 file, the desktop analog of the
// browser's durable key-value storage.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenPath returns the per-user default token location.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: cannot resolve config dir: %w", err)
	}
	return filepath.Join(dir, "sellerdash", "token"), nil
}

// Load reads the stored token. A missing file means no session.
func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("session: failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory if needed.
func (s *FileTokenStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: failed to create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Missing file is not an error.
func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: failed to remove token file: %w", err)
	}
	return nil
}

var _ TokenStore = (*FileTokenStore)(nil)
