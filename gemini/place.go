package gemini

import (
	"context"
	"encoding/json"
	"fmt"
)

// placeDescriptionSchema constrains the structured-output call to an
// object with a string ambiance, string items, and string keywords, in
// that property order.
var placeDescriptionSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"ambiance": {"type": "STRING"},
		"items": {"type": "ARRAY", "items": {"type": "STRING"}},
		"keywords": {"type": "ARRAY", "items": {"type": "STRING"}}
	},
	"required": ["ambiance", "items", "keywords"],
	"propertyOrdering": ["ambiance", "items", "keywords"]
}`)

const placeDescriptionInstructions = "Describe the place %q for an image generation prompt. " +
	"Summarize its overall ambiance in one or two sentences, list distinctive items one would " +
	"see there, and list short visual keywords."

// GeneratePlaceDescription asks the text model for a schema-constrained
// description of the location and parses the result. A JSON decode
// failure on the extracted text is classified as a decode error, distinct
// from HTTP failures.
func (c *Client) GeneratePlaceDescription(ctx context.Context, location string) (*PlaceDescription, error) {
	if err := c.checkAPIKey(); err != nil {
		return nil, err
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{
			Text: fmt.Sprintf(placeDescriptionInstructions, location),
		}}}},
		GenerationConfig: &genConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   placeDescriptionSchema,
		},
	}

	raw, err := c.generateContent(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	text := mapGenerateResponse(raw).FirstText()
	if text == "" {
		return nil, newDecodeError(fmt.Errorf("response contains no text candidate"))
	}

	var desc PlaceDescription
	if err := json.Unmarshal([]byte(text), &desc); err != nil {
		return nil, newDecodeError(err)
	}
	return &desc, nil
}
