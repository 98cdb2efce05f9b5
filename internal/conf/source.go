package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~spc/go-ini"
	"git.sr.ht/~spc/go-log"
	"github.com/BurntSushi/toml"
)

// InvalidConfigFileError marks a configuration file that exists but
// cannot be understood. A missing or unreadable file is never an
// error; a present-but-corrupt one always is.
type InvalidConfigFileError struct {
	Path string
	Err  error
}

func (e *InvalidConfigFileError) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %v", e.Path, e.Err)
}

func (e *InvalidConfigFileError) Unwrap() error { return e.Err }

// fileConfig is the file layer: raw, unvalidated coordinate strings.
// Pointer fields distinguish "not set" from "set to an empty value".
type fileConfig struct {
	Latitude  *string `toml:"latitude"`
	Longitude *string `toml:"longitude"`
}

// Source yields the file layer of the configuration. The merge
// pipeline depends on this interface only, so it can be exercised
// without touching the real filesystem.
type Source interface {
	Load() (fileConfig, error)
}

// FileSource reads the persisted configuration from the user
// configuration directory: suncron.toml, or the legacy suncron.ini
// when no TOML file exists.
type FileSource struct {
	// Dir overrides the platform user configuration directory.
	Dir string
}

func (s *FileSource) dir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	return os.UserConfigDir()
}

// Load reads the configuration file if one exists. Absence yields an
// empty layer with no error; an existing file that fails to parse is
// fatal (let's not hide problems from the users).
func (s *FileSource) Load() (fileConfig, error) {
	dir, err := s.dir()
	if err != nil {
		log.Debugf("no user configuration directory: %v", err)
		return fileConfig{}, nil
	}

	path := filepath.Join(dir, "suncron.toml")
	data, err := os.ReadFile(path)
	if err == nil {
		var layer fileConfig
		if err := toml.Unmarshal(data, &layer); err != nil {
			return fileConfig{}, &InvalidConfigFileError{Path: path, Err: err}
		}
		return layer, nil
	}
	log.Debugf("no configuration at %s: %v", path, err)

	return s.loadLegacy(dir)
}

// loadLegacy reads the pre-TOML suncron.ini, which carries the same
// two optional fields. Empty values count as absent.
func (s *FileSource) loadLegacy(dir string) (fileConfig, error) {
	path := filepath.Join(dir, "suncron.ini")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("no configuration at %s: %v", path, err)
		return fileConfig{}, nil
	}

	var legacy struct {
		Latitude  string `ini:"latitude"`
		Longitude string `ini:"longitude"`
	}
	if err := ini.Unmarshal(data, &legacy); err != nil {
		return fileConfig{}, &InvalidConfigFileError{Path: path, Err: err}
	}

	var layer fileConfig
	if legacy.Latitude != "" {
		layer.Latitude = &legacy.Latitude
	}
	if legacy.Longitude != "" {
		layer.Longitude = &legacy.Longitude
	}
	return layer, nil
}
