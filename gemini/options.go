package gemini

import (
	"net/http"

	"github.com/mawaku/mawaku/core"
)

// Config holds configuration for the Gemini client.
type Config struct {
	// APIKey authenticates every request.
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to
	// https://generativelanguage.googleapis.com
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header

	// ImageModel is the prediction model used for image generation.
	ImageModel string

	// TextModel is the model used for text and place-description calls.
	TextModel string
}

// DefaultBaseURL is the default Gemini API base URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Default model identifiers.
const (
	DefaultImageModel = "imagen-4.0-generate-001"
	DefaultTextModel  = "gemini-2.5-flash"
)

// Image generation parameters sent with every predict call.
const (
	DefaultSampleCount = 2
	DefaultAspectRatio = "16:9"
)

// Option configures the Gemini client.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithImageModel overrides the image prediction model.
func WithImageModel(model string) Option {
	return func(c *Config) {
		c.ImageModel = model
	}
}

// WithTextModel overrides the text generation model.
func WithTextModel(model string) Option {
	return func(c *Config) {
		c.TextModel = model
	}
}
