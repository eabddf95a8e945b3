package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mawaku/mawaku/core"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	home := t.TempDir()
	return NewStore(core.MapEnvironment{Home: home}), home
}

func TestPath(t *testing.T) {
	store, home := testStore(t)

	path, err := store.Path()
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(home, ".mawaku", "config.toml")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestPathHomeUnavailable(t *testing.T) {
	store := NewStore(core.MapEnvironment{HomeErr: errors.New("no home")})

	if _, err := store.Path(); !errors.Is(err, ErrHomeDirUnavailable) {
		t.Errorf("Path() error = %v, want ErrHomeDirUnavailable", err)
	}
}

func TestLoadOrInitCreatesDefaults(t *testing.T) {
	store, home := testStore(t)

	outcome, err := store.LoadOrInit()
	if err != nil {
		t.Fatal(err)
	}

	if !outcome.Created {
		t.Error("Created = false, want true")
	}
	if outcome.Migrated {
		t.Error("Migrated = true, want false")
	}
	if got := outcome.Config.GeminiAPI.APIKeyEnvVar; got != DefaultAPIKeyEnvVar {
		t.Errorf("APIKeyEnvVar = %q, want %q", got, DefaultAPIKeyEnvVar)
	}
	if want := filepath.Join(home, ".mawaku"); outcome.Config.ImageOutputDir != want {
		t.Errorf("ImageOutputDir = %q, want %q", outcome.Config.ImageOutputDir, want)
	}

	data, err := os.ReadFile(outcome.Path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `api_key_env_var = "GEMINI_API_KEY"`) {
		t.Errorf("written config missing default env var name:\n%s", data)
	}
}

func TestLoadOrInitRoundTrip(t *testing.T) {
	store, home := testStore(t)

	want := Config{
		GeminiAPI:      GeminiAPI{APIKeyEnvVar: "MY_GEMINI_KEY"},
		ImageOutputDir: filepath.Join(home, "backgrounds"),
	}

	path := filepath.Join(home, ".mawaku", "config.toml")
	if err := Save(want, path); err != nil {
		t.Fatal(err)
	}

	outcome, err := store.LoadOrInit()
	if err != nil {
		t.Fatal(err)
	}

	if outcome.Created || outcome.Migrated {
		t.Errorf("Created/Migrated = %v/%v, want false/false", outcome.Created, outcome.Migrated)
	}
	if outcome.Config != want {
		t.Errorf("Config = %+v, want %+v", outcome.Config, want)
	}
}

func TestLoadOrInitMalformedFile(t *testing.T) {
	store, home := testStore(t)

	path := filepath.Join(home, ".mawaku", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadOrInit(); err == nil {
		t.Error("LoadOrInit() = nil error, want parse failure")
	}
}

func TestNewStoreAtUsesExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	store := NewStoreAt(core.MapEnvironment{HomeErr: errors.New("no home")}, path)

	outcome, err := store.LoadOrInit()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Path != path {
		t.Errorf("Path = %q, want %q", outcome.Path, path)
	}
	if !outcome.Created {
		t.Error("Created = false, want true")
	}
	if outcome.Config.ImageOutputDir != dir {
		t.Errorf("ImageOutputDir = %q, want %q", outcome.Config.ImageOutputDir, dir)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "config.toml")

	if err := Save(Default(dir), path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
