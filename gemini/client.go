package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mawaku/mawaku/core"
)

// Client issues blocking HTTP requests against the Gemini API.
// Client is safe for concurrent use.
type Client struct {
	config Config
}

// New creates a Client with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	cfg := Config{
		APIKey:     core.NewSecret(apiKey),
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		ImageModel: DefaultImageModel,
		TextModel:  DefaultTextModel,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{config: cfg}
}

// buildHeaders constructs the HTTP headers for an API request.
func (c *Client) buildHeaders() http.Header {
	headers := make(http.Header)

	headers.Set("x-goog-api-key", c.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")

	for key, values := range c.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

// checkAPIKey rejects empty or whitespace-only keys before any network
// call is attempted.
func (c *Client) checkAPIKey() error {
	if strings.TrimSpace(c.config.APIKey.Expose()) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// GenerateImage submits the prompt to the image prediction endpoint and
// returns the parsed predictions.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*PredictResponse, error) {
	if err := c.checkAPIKey(); err != nil {
		return nil, err
	}

	reqBody := predictRequest{
		Instances: []instance{{Prompt: prompt}},
		Parameters: parameters{
			SampleCount: DefaultSampleCount,
			AspectRatio: DefaultAspectRatio,
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict", c.config.BaseURL, c.config.ImageModel)

	var resp PredictResponse
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateText submits the prompt to the text-generation endpoint and
// returns the candidates.
func (c *Client) GenerateText(ctx context.Context, prompt string) (*GenerateResponse, error) {
	if err := c.checkAPIKey(); err != nil {
		return nil, err
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	raw, err := c.generateContent(ctx, reqBody)
	if err != nil {
		return nil, err
	}
	return mapGenerateResponse(raw), nil
}

// generateContent posts a request to the text model's generateContent
// endpoint.
func (c *Client) generateContent(ctx context.Context, reqBody generateRequest) (*generateContentResponse, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.TextModel)

	var resp generateContentResponse
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post marshals reqBody, executes the request, and decodes a 2xx response
// into out. Non-2xx statuses surface as normalized APIErrors.
func (c *Client) post(ctx context.Context, url string, reqBody, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return newDecodeError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return newNetworkError(err)
	}

	for key, values := range c.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return normalizeError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}

func mapGenerateResponse(raw *generateContentResponse) *GenerateResponse {
	resp := &GenerateResponse{}
	for _, cand := range raw.Candidates {
		mapped := Candidate{FinishReason: cand.FinishReason}
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				mapped.Parts = append(mapped.Parts, p.Text)
			}
		}
		resp.Candidates = append(resp.Candidates, mapped)
	}
	return resp
}
