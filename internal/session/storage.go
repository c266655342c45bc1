package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SohamMhatre7788/insurai/internal/domain"
)

// Storage keys under the state directory. They mirror the durable keys the
// backend contract names: "token" holds the bearer string, "user" the
// JSON-serialized account.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Storage persists the session pair to a local state directory so it
// survives process restarts. It is advisory across concurrent instances,
// not synchronized.
type Storage struct {
	dir string
}

// NewStorage builds storage rooted at dir. The directory is created lazily
// on first write.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Read loads the persisted pair. A missing or unreadable half yields
// ("", nil, nil): partial state is indistinguishable from no session.
func (s *Storage) Read() (string, *domain.User, error) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenKey))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenBytes))

	userBytes, err := os.ReadFile(filepath.Join(s.dir, userKey))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("read user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		// Corrupt user record: treat the whole pair as absent.
		return "", nil, nil
	}

	if token == "" || user.ID == 0 {
		return "", nil, nil
	}
	return token, &user, nil
}

// Write persists both halves of the pair. Each file lands via a temp file
// and rename so a crash never leaves a torn value.
func (s *Storage) Write(token string, user *domain.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	userBytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(s.dir, tokenKey), []byte(token)); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.dir, userKey), userBytes); err != nil {
		// Do not leave a token without its user half.
		_ = os.Remove(filepath.Join(s.dir, tokenKey))
		return err
	}
	return nil
}

// Clear removes both halves. Missing files are not an error.
func (s *Storage) Clear() error {
	var firstErr error
	for _, key := range []string{tokenKey, userKey} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
