package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves REPL_RUNTIME_PATH against the home directory.
// It is read before any .env file is loaded, since the .env lives there.
func GetRuntimePath() string {
	path := os.Getenv("REPL_RUNTIME_PATH")
	if path == "" {
		path = ".replkit"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
