package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/waterbill/internal/filex"
)

const tokenFile = "token"

// TokenStore keeps the access token in a file under an owner-only directory.
type TokenStore struct {
	dir string
}

func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{dir: dir}
}

func (s *TokenStore) path() string { return filepath.Join(s.dir, tokenFile) }

// Load returns the stored token, or "" when none is saved.
func (s *TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *TokenStore) Save(token string) error {
	dir, err := filex.EnsureSubdDir(s.dir)
	if err != nil {
		return err
	}
	s.dir = dir
	return filex.WriteFileAtomic(s.path(), []byte(token), 0o600)
}

// Clear removes the token. A missing token is not an error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
