package core

import "os"

// Environment supplies the process-environment lookups Mawaku depends on.
// Passing it explicitly lets tests provide isolated values instead of
// mutating real process state.
type Environment interface {
	// Getenv returns the value of the named environment variable, or ""
	// when unset.
	Getenv(key string) string
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)
}

// OSEnvironment implements Environment over the real process environment.
type OSEnvironment struct{}

func (OSEnvironment) Getenv(key string) string { return os.Getenv(key) }

func (OSEnvironment) UserHomeDir() (string, error) { return os.UserHomeDir() }

// Compile-time check that OSEnvironment implements Environment.
var _ Environment = OSEnvironment{}

// MapEnvironment is an Environment backed by a fixed map and home directory.
// It is intended for tests.
type MapEnvironment struct {
	Vars map[string]string
	Home string
	// HomeErr, when set, is returned by UserHomeDir.
	HomeErr error
}

func (m MapEnvironment) Getenv(key string) string { return m.Vars[key] }

func (m MapEnvironment) UserHomeDir() (string, error) {
	if m.HomeErr != nil {
		return "", m.HomeErr
	}
	return m.Home, nil
}
