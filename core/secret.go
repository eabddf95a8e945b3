// Package core holds shared primitives used across Mawaku: the Secret
// wrapper for API credentials and the Environment capability that replaces
// ambient process-state lookups.
package core

// Secret wraps a sensitive string value with protection against accidental
// logging or serialization. String(), GoString(), and JSON/text marshaling
// all produce a redacted placeholder; call Expose() where the real value is
// genuinely needed, such as an authentication header.
type Secret struct {
	value string
}

// NewSecret creates a Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String returns a redacted placeholder. Implements fmt.Stringer.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString returns a redacted placeholder for %#v formatting.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON returns a redacted JSON string.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText returns a redacted text representation.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the actual secret value.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether the secret value is empty.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
