package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mawaku/mawaku/config"
	"github.com/mawaku/mawaku/core"
)

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	store := &fakeStore{outcome: config.Outcome{
		Config: config.Config{
			GeminiAPI:      config.GeminiAPI{APIKeyEnvVar: "WORK_GEMINI_KEY"},
			ImageOutputDir: dir,
		},
		Path: filepath.Join(dir, "config.toml"),
	}}

	var stdout, stderr bytes.Buffer
	app := NewApp(
		WithEnvironment(core.MapEnvironment{Vars: map[string]string{"WORK_GEMINI_KEY": "secret"}}),
		WithStoreFactory(func(string) ConfigStore { return store }),
		WithIO(&stdout, &stderr),
	)

	app.root.SetArgs([]string{"config"})
	if err := app.Execute(); err != nil {
		t.Fatal(err)
	}

	out := stdout.String()
	if !strings.Contains(out, filepath.Join(dir, "config.toml")) {
		t.Errorf("output %q missing config path", out)
	}
	if !strings.Contains(out, "WORK_GEMINI_KEY (set)") {
		t.Errorf("output %q missing env var state", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("output %q leaks the key value", out)
	}
	if !strings.Contains(out, dir) {
		t.Errorf("output %q missing output dir", out)
	}
}

func TestConfigCommandUnsetKey(t *testing.T) {
	store := &fakeStore{outcome: config.Outcome{
		Config: config.Config{GeminiAPI: config.GeminiAPI{APIKeyEnvVar: config.DefaultAPIKeyEnvVar}},
	}}

	var stdout bytes.Buffer
	app := NewApp(
		WithEnvironment(core.MapEnvironment{}),
		WithStoreFactory(func(string) ConfigStore { return store }),
		WithIO(&stdout, &stdout),
	)

	app.root.SetArgs([]string{"config"})
	if err := app.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "GEMINI_API_KEY (not set)") {
		t.Errorf("output %q missing not-set state", stdout.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	app := NewApp(
		WithEnvironment(core.MapEnvironment{}),
		WithIO(&stdout, &stdout),
	)

	app.root.SetArgs([]string{"version"})
	if err := app.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "mawaku") {
		t.Errorf("output %q missing binary name", stdout.String())
	}
}
