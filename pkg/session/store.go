package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xmhha/snipet/pkg/logger"
	"gopkg.in/yaml.v3"
)

// PathEnv overrides the session file location.
const PathEnv = "SNIPET_SESSION_FILE"

// fileStore implements Store on a single YAML file.
type fileStore struct {
	path   string
	logger logger.Logger
}

// NewStore creates a session store.
//
// An empty cfg.Path resolves to DefaultPath().
func NewStore(cfg Config, log logger.Logger) Store {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}

	return &fileStore{
		path:   path,
		logger: log.With("session_file", path),
	}
}

// DefaultPath returns the session file path.
//
// Checks SNIPET_SESSION_FILE first, then falls back to
// <user config dir>/snipet/session.yaml.
func DefaultPath() string {
	if envPath := os.Getenv(PathEnv); envPath != "" {
		return envPath
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "snipet-session.yaml")
	}

	return filepath.Join(configDir, "snipet", "session.yaml")
}

// Load implements Store.Load.
func (s *fileStore) Load() (*Session, bool) {
	data, err := os.ReadFile(s.path) // nolint:gosec
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read session file", "error", err)
		}
		return nil, false
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("failed to parse session file", "error", err)
		return nil, false
	}

	s.logger.Debug("session loaded", "email", sess.Identity, "server", sess.ServerURL)

	return &sess, true
}

// Save implements Store.Save.
func (s *fileStore) Save(sess *Session) error {
	if sess == nil {
		return ErrNilSession
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// File holds a bearer token: owner-only permissions.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.logger.Info("session saved", "email", sess.Identity, "server", sess.ServerURL)

	return nil
}

// Clear implements Store.Clear.
func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	s.logger.Info("session cleared")

	return nil
}

// Path implements Store.Path.
func (s *fileStore) Path() string {
	return s.path
}
