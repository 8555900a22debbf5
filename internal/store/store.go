// Package store persists the workspace model. SQLite is the source of truth
// (.lexdesk/index.sqlite); a legacy desk.json is imported once if present.
// The encoding is an implementation detail: callers save the current model
// and get it back verbatim next session.
package store

import (
	"context"
	"os"
	"path/filepath"

	"lexdesk/internal/workspace"
)

const (
	dirName            = ".lexdesk"
	legacyDeskFileName = "desk.json"
)

type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a .lexdesk directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store dir: the nearest .lexdesk above the working
// directory, else a fresh one in it.
func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, dirName), nil
}

// WorkspaceDir returns the named workspace root under the user config dir.
func WorkspaceDir(name string) (string, error) {
	if name == "" {
		name = "default"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName, "workspaces", name), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) legacyDeskPath() string {
	return filepath.Join(s.Dir, legacyDeskFileName)
}

// Load reads the workspace state. Missing state yields a fresh empty model.
func (s Store) Load() (*workspace.State, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.loadSQLite(context.Background())
}

// Save writes the whole workspace state.
func (s Store) Save(st *workspace.State) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.saveSQLite(context.Background(), st)
}
