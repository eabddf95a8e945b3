package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mawaku/mawaku/config"
)

func (a *App) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long: `Show the configuration file path, the environment variable consulted
for the Gemini API key, and the image output directory. Key values are
never printed.`,
		RunE: a.runConfig,
	}
}

func (a *App) runConfig(cmd *cobra.Command, args []string) error {
	store := a.newStore(a.cfgFile)

	path, err := store.Path()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	outcome, err := store.LoadOrInit()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := outcome.Config

	envVar := strings.TrimSpace(cfg.GeminiAPI.APIKeyEnvVar)
	if envVar == "" {
		envVar = config.DefaultAPIKeyEnvVar
	}

	keyState := "not set"
	if strings.TrimSpace(a.env.Getenv(envVar)) != "" {
		keyState = "set"
	}

	fmt.Fprintf(a.stdout, "Config file:      %s\n", path)
	fmt.Fprintf(a.stdout, "API key env var:  %s (%s)\n", envVar, keyState)
	fmt.Fprintf(a.stdout, "Image output dir: %s\n", cfg.ImageOutputDir)
	return nil
}
