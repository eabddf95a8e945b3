// Package config loads and persists the Mawaku TOML configuration under
// the user's home directory, migrating legacy schema variants in place.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mawaku/mawaku/core"
)

// DefaultAPIKeyEnvVar names the environment variable consulted for the
// Gemini API key when the config does not specify one.
const DefaultAPIKeyEnvVar = "GEMINI_API_KEY"

const (
	configDirName  = ".mawaku"
	configFileName = "config.toml"
)

// ErrHomeDirUnavailable indicates the user's home directory could not be
// resolved, so no configuration path exists.
var ErrHomeDirUnavailable = errors.New("could not determine configuration directory")

// Config is the on-disk configuration schema.
type Config struct {
	GeminiAPI      GeminiAPI `toml:"gemini_api"`
	ImageOutputDir string    `toml:"image_output_dir"`
}

// GeminiAPI holds the Gemini credential settings. Only the name of an
// environment variable is stored, never a key value.
type GeminiAPI struct {
	APIKeyEnvVar string `toml:"api_key_env_var"`
}

// Default returns the configuration written on first run, rooted at the
// given home directory.
func Default(home string) Config {
	return Config{
		GeminiAPI:      GeminiAPI{APIKeyEnvVar: DefaultAPIKeyEnvVar},
		ImageOutputDir: filepath.Join(home, configDirName),
	}
}

// Outcome reports the result of LoadOrInit.
type Outcome struct {
	Config   Config
	Path     string
	Created  bool
	Migrated bool
}

// Store reads and writes the configuration file. The environment accessor
// is injected so tests can supply an isolated home directory.
type Store struct {
	env  core.Environment
	path string
}

// NewStore creates a Store bound to the given environment, using the
// default path under the user's home directory.
func NewStore(env core.Environment) *Store {
	return &Store{env: env}
}

// NewStoreAt creates a Store reading and writing an explicit file path
// instead of the default location.
func NewStoreAt(env core.Environment, path string) *Store {
	return &Store{env: env, path: path}
}

// Path resolves the configuration file path, <home>/.mawaku/config.toml
// unless an explicit path was given.
func (s *Store) Path() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	home, err := s.env.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeDirUnavailable
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadOrInit loads the configuration from disk, creating a default file
// when absent and rewriting the file when legacy keys were migrated.
func (s *Store) LoadOrInit() (Outcome, error) {
	path, err := s.Path()
	if err != nil {
		return Outcome{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Outcome{}, fmt.Errorf("reading config: %w", err)
		}

		cfg := Config{
			GeminiAPI:      GeminiAPI{APIKeyEnvVar: DefaultAPIKeyEnvVar},
			ImageOutputDir: filepath.Dir(path),
		}
		if err := Save(cfg, path); err != nil {
			return Outcome{}, err
		}
		return Outcome{Config: cfg, Path: path, Created: true}, nil
	}

	// Parse as a generic document first so legacy keys survive long
	// enough to be migrated rather than silently dropped.
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Outcome{}, fmt.Errorf("parsing config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	migrated := migrate(doc, filepath.Dir(path))

	cfg, err := decodeDocument(doc)
	if err != nil {
		return Outcome{}, fmt.Errorf("parsing config: %w", err)
	}

	if migrated {
		if err := Save(cfg, path); err != nil {
			return Outcome{}, err
		}
	}

	return Outcome{Config: cfg, Path: path, Migrated: migrated}, nil
}

// Save serializes the configuration to TOML and writes it, creating
// parent directories first.
func Save(cfg Config, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// decodeDocument converts a migrated generic document into a typed Config
// by round-tripping it through the TOML encoder.
func decodeDocument(doc map[string]any) (Config, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(buf.Bytes(), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
