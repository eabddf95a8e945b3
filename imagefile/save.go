// Package imagefile decodes base64 image payloads and writes them to
// disk with names derived from the caller's naming scheme.
package imagefile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrEmptyPayload indicates an empty or whitespace-only base64 payload.
	ErrEmptyPayload = errors.New("image payload is empty")
	// ErrAppDirUnavailable indicates the fallback output directory (the
	// running executable's directory) could not be resolved.
	ErrAppDirUnavailable = errors.New("could not resolve application directory")
	// ErrDecode indicates the payload is not valid standard base64.
	ErrDecode = errors.New("failed to decode image bytes")
)

// SaveOptions control where and under what name the image is written.
// Zero values select the defaults: a timestamped file name, a PNG
// extension, and the executable's directory.
type SaveOptions struct {
	FileStem  string
	MimeType  string
	OutputDir string
}

// Save decodes the base64 payload and writes it under the resolved output
// directory, returning the written path. Two saves with the same stem
// silently overwrite; uniqueness is the caller's concern.
func Save(encoded string, opts SaveOptions) (string, error) {
	if strings.TrimSpace(encoded) == "" {
		return "", ErrEmptyPayload
	}

	outputDir, err := resolveOutputDir(opts.OutputDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", outputDir, err)
	}

	ext := extensionFromMime(opts.MimeType)
	name := opts.FileStem
	if name == "" {
		name = fmt.Sprintf("mawaku-image-%d", time.Now().UnixMilli())
	}

	path := filepath.Join(outputDir, name+"."+ext)

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing image to %s: %w", path, err)
	}
	return path, nil
}

// resolveOutputDir prefers the explicit directory and falls back to the
// directory containing the running executable.
func resolveOutputDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAppDirUnavailable, err)
	}

	parent := filepath.Dir(exe)
	if parent == "" || parent == "." {
		return "", ErrAppDirUnavailable
	}
	return parent, nil
}

// extensionFromMime maps a MIME type to a file extension. Unknown types
// fall back to "bin"; an unspecified type is treated as PNG.
func extensionFromMime(mimeType string) string {
	if mimeType == "" {
		mimeType = "image/png"
	}

	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/png":
		return "png"
	default:
		return "bin"
	}
}
