package imagefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveEmptyPayload(t *testing.T) {
	for _, encoded := range []string{"", "   ", "\n\t"} {
		_, err := Save(encoded, SaveOptions{
			FileStem:  "x",
			MimeType:  "image/png",
			OutputDir: t.TempDir(),
		})
		if !errors.Is(err, ErrEmptyPayload) {
			t.Errorf("Save(%q) error = %v, want ErrEmptyPayload", encoded, err)
		}
	}
}

func TestSaveWritesDecodedBytes(t *testing.T) {
	dir := t.TempDir()

	path, err := Save("aGVsbG8=", SaveOptions{
		FileStem:  "x",
		MimeType:  "image/png",
		OutputDir: dir,
	})
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(dir, "x.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("written bytes = %q, want hello", data)
	}
}

func TestSaveExtensionFromMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/jpg", ".jpg"},
		{"IMAGE/JPEG", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"", ".png"},
		{"application/octet-stream", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			path, err := Save("aGVsbG8=", SaveOptions{
				FileStem:  "sample",
				MimeType:  tt.mime,
				OutputDir: t.TempDir(),
			})
			if err != nil {
				t.Fatal(err)
			}
			if filepath.Ext(path) != tt.want {
				t.Errorf("ext for %q = %q, want %q", tt.mime, filepath.Ext(path), tt.want)
			}
		})
	}
}

func TestSaveDefaultFileName(t *testing.T) {
	path, err := Save("aGVsbG8=", SaveOptions{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "mawaku-image-") || !strings.HasSuffix(name, ".png") {
		t.Errorf("default name = %q, want mawaku-image-<millis>.png", name)
	}
}

func TestSaveCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if _, err := Save("aGVsbG8=", SaveOptions{FileStem: "x", OutputDir: dir}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.png")); err != nil {
		t.Errorf("image not written under created dir: %v", err)
	}
}

func TestSaveInvalidBase64(t *testing.T) {
	_, err := Save("not base64!!!", SaveOptions{FileStem: "x", OutputDir: t.TempDir()})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestSaveOverwritesSameStem(t *testing.T) {
	dir := t.TempDir()
	opts := SaveOptions{FileStem: "x", OutputDir: dir}

	if _, err := Save("Zmlyc3Q=", opts); err != nil {
		t.Fatal(err)
	}
	if _, err := Save("c2Vjb25k", opts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "x.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("contents = %q, want the later write", data)
	}
}
