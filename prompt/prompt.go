// Package prompt composes the image-generation prompt from scene inputs
// and an optional structured place description.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mawaku/mawaku/gemini"
)

// BaseInstructions is the fixed instruction every generated prompt opens
// with.
const BaseInstructions = "Create a photorealistic, wide-angle background image suitable for a video call."

const unspecified = "Unspecified"

// Craft joins the base instructions with optional location, season, and
// time-of-day clauses. Empty or whitespace-only inputs are silently
// omitted; when every segment is empty the result is "".
func Craft(base, location, season, timeOfDay string) string {
	var segments []string

	if v := strings.TrimSpace(base); v != "" {
		segments = append(segments, v)
	}
	if v := strings.TrimSpace(location); v != "" {
		segments = append(segments, fmt.Sprintf("Set the scene in %s and make it feel authentic to that place.", v))
	}
	if v := strings.TrimSpace(season); v != "" {
		segments = append(segments, fmt.Sprintf("It is %s.", v))
	}
	if v := strings.TrimSpace(timeOfDay); v != "" {
		segments = append(segments, fmt.Sprintf("Capture the lighting of %s.", v))
	}

	return strings.Join(segments, " ")
}

// BuildStructured folds a place description and scene timing into a
// multi-block prompt. Blocks are separated by blank lines; absent values
// fall back to "Unspecified". The output is deterministic for a given
// input.
func BuildStructured(instructions string, desc *gemini.PlaceDescription, season, timeOfDay string) string {
	var blocks []string

	if v := strings.TrimSpace(instructions); v != "" {
		blocks = append(blocks, v)
	}

	blocks = append(blocks, placeBlock(desc))
	blocks = append(blocks, timingBlock(season, timeOfDay))

	return strings.Join(blocks, "\n\n")
}

func placeBlock(desc *gemini.PlaceDescription) string {
	ambiance := unspecified
	items := unspecified
	keywords := unspecified

	if desc != nil {
		if v := strings.TrimSpace(desc.Ambiance); v != "" {
			ambiance = v
		}
		items = listOrUnspecified(desc.Items)
		keywords = listOrUnspecified(desc.Keywords)
	}

	return strings.Join([]string{
		"Complete place description:",
		"Ambiance: " + ambiance,
		"Items: " + items,
		"Keywords: " + keywords,
	}, "\n")
}

func timingBlock(season, timeOfDay string) string {
	return strings.Join([]string{
		"Scene timing:",
		contextLine("Season", season),
		contextLine("Time of day", timeOfDay),
	}, "\n")
}

// listOrUnspecified joins non-empty trimmed items with ", ", or returns
// "Unspecified" when nothing survives.
func listOrUnspecified(items []string) string {
	var filtered []string
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			filtered = append(filtered, v)
		}
	}

	if len(filtered) == 0 {
		return unspecified
	}
	return strings.Join(filtered, ", ")
}

func contextLine(label, value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return label + ": " + v
	}
	return label + ": " + unspecified
}
