// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mawaku/mawaku/cli/spinner"
	"github.com/mawaku/mawaku/config"
	"github.com/mawaku/mawaku/core"
	"github.com/mawaku/mawaku/gemini"
	"github.com/mawaku/mawaku/imagefile"
)

// ConfigStore is the subset of the config store the CLI depends on.
type ConfigStore interface {
	LoadOrInit() (config.Outcome, error)
	Path() (string, error)
}

// Generator is the subset of the Gemini client the CLI depends on.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (*gemini.PredictResponse, error)
	GeneratePlaceDescription(ctx context.Context, location string) (*gemini.PlaceDescription, error)
}

// StoreFactory creates a config store; path is the --config override, or
// "" for the default location.
type StoreFactory func(path string) ConfigStore

// ClientFactory creates a Gemini client for the resolved API key.
type ClientFactory func(apiKey string) Generator

// ImageSaver persists one base64 image payload.
type ImageSaver func(encoded string, opts imagefile.SaveOptions) (string, error)

// SpinnerFunc starts progress output and returns a stop function.
type SpinnerFunc func(w io.Writer, message string) func()

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	env       core.Environment
	newStore  StoreFactory
	newClient ClientFactory
	saveImage ImageSaver
	spin      SpinnerFunc
	stdout    io.Writer
	stderr    io.Writer

	cfgFile   string
	location  string
	season    string
	timeOfDay string
}

// WithEnvironment injects the environment accessor.
func WithEnvironment(env core.Environment) AppOption {
	return func(a *App) {
		if env != nil {
			a.env = env
		}
	}
}

// WithStoreFactory injects a config store factory.
func WithStoreFactory(factory StoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newStore = factory
		}
	}
}

// WithClientFactory injects a Gemini client factory.
func WithClientFactory(factory ClientFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newClient = factory
		}
	}
}

// WithImageSaver injects an image persister.
func WithImageSaver(saver ImageSaver) AppOption {
	return func(a *App) {
		if saver != nil {
			a.saveImage = saver
		}
	}
}

// WithSpinner injects a progress spinner.
func WithSpinner(spin SpinnerFunc) AppOption {
	return func(a *App) {
		if spin != nil {
			a.spin = spin
		}
	}
}

// WithIO injects process output streams.
func WithIO(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		env: core.OSEnvironment{},
		newClient: func(apiKey string) Generator {
			return gemini.New(apiKey)
		},
		saveImage: imagefile.Save,
		spin:      spinner.Start,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.newStore == nil {
		env := a.env
		a.newStore = func(path string) ConfigStore {
			if path != "" {
				return config.NewStoreAt(env, path)
			}
			return config.NewStore(env)
		}
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mawaku",
		Short: "Generate video-call backgrounds by describing a place.",
		Long: `Mawaku turns a short natural-language place description into an
image-generation prompt, asks Gemini to render it, and saves the returned
images to disk. The final prompt is printed to standard output.`,
		RunE:         a.runGenerate,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.mawaku/config.toml)")

	root.Flags().StringVar(&a.location, "location", "", "Place to set the scene in (required)")
	root.Flags().StringVar(&a.season, "season", "", "Season of the scene")
	root.Flags().StringVar(&a.timeOfDay, "time-of-day", "", "Time of day for the scene lighting")
	_ = root.MarkFlagRequired("location")

	root.AddCommand(a.newConfigCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
