// Package gemini provides a blocking HTTP client for the Google Gemini
// image-prediction and text-generation endpoints.
package gemini

import "encoding/json"

// generateRequest represents a request to the generateContent API.
type generateRequest struct {
	Contents         []content  `json:"contents"`
	GenerationConfig *genConfig `json:"generationConfig,omitempty"`
}

// content represents a content block within a request or response.
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// part represents one part within content.
type part struct {
	Text string `json:"text,omitempty"`
}

// genConfig holds generation configuration, including a structured-output
// schema constraint.
type genConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

// generateContentResponse represents a raw generateContent response.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

// candidate represents one response candidate.
type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateResponse is the typed result of a text-generation call.
type GenerateResponse struct {
	Candidates []Candidate
}

// Candidate carries the text parts of one candidate plus its optional
// finish reason.
type Candidate struct {
	Parts        []string
	FinishReason string
}

// FirstText returns the first text part of the first candidate, or ""
// when the response is empty.
func (r *GenerateResponse) FirstText() string {
	for _, c := range r.Candidates {
		for _, p := range c.Parts {
			if p != "" {
				return p
			}
		}
	}
	return ""
}

// predictRequest represents a request to the image prediction API.
type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

// PredictResponse is the typed result of an image prediction call.
type PredictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// Prediction is one image result entry. Both fields are optional on the
// wire.
type Prediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
	MimeType           string `json:"mimeType,omitempty"`
}

// PlaceDescription is a structured summary of a location, produced by a
// schema-constrained text-generation call and consumed only to enrich the
// image prompt.
type PlaceDescription struct {
	Ambiance string   `json:"ambiance"`
	Items    []string `json:"items"`
	Keywords []string `json:"keywords"`
}

// errorResponse represents the API error envelope.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
