package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/pokedex/internal/domain"
)

// File names searched for, in order, in each directory.
var fileNames = []string{"pokedex.yaml", "pokedex.yml"}

// FindFile looks for a config file in startDir and its parents.
func FindFile(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findfile",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findfile",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	cur := filepath.Clean(abs)
	for {
		if p := fileIn(cur); p != "" {
			return p, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "config.findfile",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func fileIn(dir string) string {
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// UserConfigFile returns the per-user config path if it exists.
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "pokedex", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// StateDir is where logs and the record cache live by default.
func StateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return filepath.Join(os.TempDir(), "pokedex")
	}
	return filepath.Join(dir, "pokedex")
}
