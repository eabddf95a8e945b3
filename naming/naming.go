// Package naming builds filesystem-safe file stems for generated images
// from free-text scene components.
package naming

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// DefaultPrefix is the leading token of every generated file stem.
	DefaultPrefix = "mawaku"
	// SuffixLength is the number of random characters appended to a stem.
	SuffixLength = 5
	// ComponentMaxLen caps the length of a single slugged component.
	ComponentMaxLen = 10
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Builder assembles the base portion of an image file stem from a prefix
// and a sequence of optional free-text components.
type Builder struct {
	parts     []string
	suffixLen int
}

// NewBuilder creates a Builder seeded with the given prefix.
func NewBuilder(prefix string) *Builder {
	return &Builder{
		parts:     []string{prefix},
		suffixLen: SuffixLength,
	}
}

// WithSuffixLength overrides the random suffix length. Lengths beyond the
// suffix alphabet are capped so characters are never drawn twice.
func (b *Builder) WithSuffixLength(n int) *Builder {
	switch {
	case n < 0:
		n = 0
	case n > len(suffixAlphabet):
		n = len(suffixAlphabet)
	}
	b.suffixLen = n
	return b
}

// PushComponent appends a slugged component. Values that reduce to an empty
// slug are discarded.
func (b *Builder) PushComponent(value string) {
	if token := ComponentToken(value); token != "" {
		b.parts = append(b.parts, token)
	}
}

// Build produces the immutable naming context for this invocation.
func (b *Builder) Build() Context {
	return Context{
		base:      strings.Join(b.parts, "-"),
		suffixLen: b.suffixLen,
	}
}

// Context holds the fixed base of a file stem. Each FileStem call yields a
// fresh name with an independent random suffix; uniqueness is statistical,
// not guaranteed across processes.
type Context struct {
	base      string
	suffixLen int
}

// NewContext builds a Context from a prefix and ordered components in one
// step.
func NewContext(prefix string, components ...string) Context {
	b := NewBuilder(prefix)
	for _, c := range components {
		b.PushComponent(c)
	}
	return b.Build()
}

// Base returns the fixed portion of the stem.
func (c Context) Base() string {
	return c.base
}

// FileStem returns "<base>-p<index>-<SUFFIX>" where SUFFIX is drawn fresh
// on every call.
func (c Context) FileStem(index int) string {
	return fmt.Sprintf("%s-p%d-%s", c.base, index, randomSuffix(c.suffixLen))
}

// Slugify lowers ASCII alphanumerics and collapses every other run of
// characters into a single hyphen. Leading and trailing hyphens are
// trimmed; inputs with no alphanumerics produce "".
func Slugify(input string) string {
	var slug strings.Builder
	lastWasSeparator := false

	for _, ch := range input {
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			slug.WriteRune(ch)
			lastWasSeparator = false
		case ch >= 'A' && ch <= 'Z':
			slug.WriteRune(ch + ('a' - 'A'))
			lastWasSeparator = false
		default:
			if !lastWasSeparator && slug.Len() > 0 {
				slug.WriteByte('-')
				lastWasSeparator = true
			}
		}
	}

	return strings.Trim(slug.String(), "-")
}

// ComponentToken slugs the input and caps it at ComponentMaxLen. A hyphen
// left dangling by the truncation is trimmed; slugs already within the cap
// are returned unchanged.
func ComponentToken(input string) string {
	slug := Slugify(input)
	if len(slug) <= ComponentMaxLen {
		return slug
	}

	truncated := slug[:ComponentMaxLen]
	if trimmed := strings.TrimRight(truncated, "-"); trimmed != "" {
		return trimmed
	}
	return truncated
}

// randomSuffix draws n characters without replacement from the suffix
// alphabet.
func randomSuffix(n int) string {
	letters := []byte(suffixAlphabet)
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return string(letters[:n])
}
