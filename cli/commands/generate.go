package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mawaku/mawaku/config"
	"github.com/mawaku/mawaku/gemini"
	"github.com/mawaku/mawaku/imagefile"
	"github.com/mawaku/mawaku/naming"
	"github.com/mawaku/mawaku/prompt"
)

// runGenerate drives the whole pipeline: config, baseline prompt, optional
// place-description enrichment, image generation, and saving. Failures
// along the way are downgraded to warnings on stderr so the run always
// completes and prints a best-effort prompt; the exit code stays zero.
func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := a.loadConfig()

	envVar := strings.TrimSpace(cfg.GeminiAPI.APIKeyEnvVar)
	if envVar == "" {
		envVar = config.DefaultAPIKeyEnvVar
	}
	apiKey := a.env.Getenv(envVar)

	finalPrompt := prompt.Craft(prompt.BaseInstructions, a.location, a.season, a.timeOfDay)

	if strings.TrimSpace(apiKey) == "" {
		a.warnf("Warning: %s is not set. Skipping prompt enrichment and image generation.", envVar)
	} else {
		client := a.newClient(apiKey)

		if desc := a.describePlace(ctx, client); desc != nil {
			finalPrompt = prompt.BuildStructured(finalPrompt, desc, a.season, a.timeOfDay)
		}

		if resp := a.generateImages(ctx, client, finalPrompt); resp != nil {
			a.savePredictions(resp, cfg.ImageOutputDir)
		}
	}

	fmt.Fprintln(a.stdout, finalPrompt)
	return nil
}

// loadConfig loads or initializes the configuration, falling back to an
// in-memory default with a warning when the store fails.
func (a *App) loadConfig() config.Config {
	store := a.newStore(a.cfgFile)

	outcome, err := store.LoadOrInit()
	if err != nil {
		a.warnf("Warning: failed to load Mawaku configuration (%v). Falling back to defaults.", err)

		cfg := config.Config{GeminiAPI: config.GeminiAPI{APIKeyEnvVar: config.DefaultAPIKeyEnvVar}}
		if home, herr := a.env.UserHomeDir(); herr == nil && home != "" {
			cfg = config.Default(home)
		}
		return cfg
	}

	if outcome.Created {
		a.infof("Created Mawaku configuration at %s", outcome.Path)
	}
	if outcome.Migrated {
		a.infof("Migrated Mawaku configuration at %s", outcome.Path)
	}
	return outcome.Config
}

// describePlace fetches the structured place description, or nil when the
// call fails.
func (a *App) describePlace(ctx context.Context, client Generator) *gemini.PlaceDescription {
	desc, err := client.GeneratePlaceDescription(ctx, a.location)
	if err != nil {
		a.warnf("Warning: could not fetch a place description (%v). Using the basic prompt.", err)
		return nil
	}
	return desc
}

// generateImages runs the blocking image call on its own goroutine so the
// spinner can animate on stderr until the result lands. Once dispatched
// the request runs to completion; there is no user-triggered abort.
func (a *App) generateImages(ctx context.Context, client Generator, p string) *gemini.PredictResponse {
	type result struct {
		resp *gemini.PredictResponse
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		resp, err := client.GenerateImage(ctx, p)
		ch <- result{resp: resp, err: err}
	}()

	stop := a.spin(a.stderr, "Generating images")
	res := <-ch
	stop()

	if res.err != nil {
		a.warnf("Warning: image generation failed (%v).", res.err)
		return nil
	}
	return res.resp
}

// savePredictions writes each returned prediction under a fresh unique
// file stem. Per-prediction failures warn and skip.
func (a *App) savePredictions(resp *gemini.PredictResponse, outputDir string) {
	nameCtx := naming.NewContext(naming.DefaultPrefix, a.location, a.season, a.timeOfDay)

	for i, p := range resp.Predictions {
		if strings.TrimSpace(p.BytesBase64Encoded) == "" {
			a.warnf("Warning: prediction %d carried no image payload. Skipping.", i+1)
			continue
		}

		path, err := a.saveImage(p.BytesBase64Encoded, imagefile.SaveOptions{
			FileStem:  nameCtx.FileStem(i + 1),
			MimeType:  p.MimeType,
			OutputDir: outputDir,
		})
		if err != nil {
			a.warnf("Warning: could not save prediction %d (%v).", i+1, err)
			continue
		}
		a.infof("Saved image to %s", path)
	}
}

func (a *App) infof(format string, args ...any) {
	fmt.Fprintf(a.stderr, format+"\n", args...)
}

func (a *App) warnf(format string, args ...any) {
	fmt.Fprintf(a.stderr, format+"\n", args...)
}
