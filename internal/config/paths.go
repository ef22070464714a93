package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	userConfigPath    = "~/.config/purifier/config.toml"
	projectConfigName = "purifier.toml"
)

// configSource is the file Load reads from, if any.
type configSource struct {
	path   string
	exists bool
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	return ExpandPath(userConfigPath)
}

// locate picks the config file. An explicit path is used even when missing;
// otherwise the per-user file wins over ./purifier.toml, and the per-user
// path is reported when neither exists.
func locate(explicit string) (configSource, error) {
	if explicit != "" {
		path, err := ExpandPath(explicit)
		if err != nil {
			return configSource{}, err
		}
		exists, err := isFile(path)
		if err != nil {
			return configSource{}, fmt.Errorf("stat config: %w", err)
		}
		return configSource{path: path, exists: exists}, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return configSource{}, err
	}
	projectPath, err := ExpandPath(projectConfigName)
	if err != nil {
		return configSource{}, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := isFile(candidate); ok {
			return configSource{path: candidate, exists: true}, nil
		}
	}
	return configSource{path: userPath}, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	return !info.IsDir(), nil
}

// ExpandPath resolves a leading ~ to the home directory and returns a clean
// absolute path. The empty string is returned unchanged.
func ExpandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if rest, ok := strings.CutPrefix(value, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, strings.TrimLeft(rest, `/\`))
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return abs, nil
}
