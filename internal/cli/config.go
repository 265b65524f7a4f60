package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds optional user overrides loaded from a TOML file. The zero
// value leaves all defaults untouched, so a missing file is not an error.
//
// Example config:
//
//	user_agent = "citegen/0.1 (mailto:me@example.org)"
//	timeout_seconds = 30
type Config struct {
	// UserAgent replaces the default User-Agent header on all outbound
	// requests. Useful for registering a contact address with the APIs.
	UserAgent string `toml:"user_agent"`

	// TimeoutSeconds overrides the per-request HTTP timeout. Ignored when
	// the --timeout flag is set.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// defaultConfigPath returns the conventional config location,
// e.g. ~/.config/citegen/config.toml on Linux.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "citegen", "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the zero Config; a file that exists
// but fails to parse is reported so typos do not silently disable overrides.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
