package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/dailydeck/internal/config"
	"github.com/idilsaglam/dailydeck/internal/logging"
	"github.com/idilsaglam/dailydeck/internal/store"
	"github.com/idilsaglam/dailydeck/internal/store/jsonstore"
	"github.com/idilsaglam/dailydeck/internal/tui"
	"github.com/idilsaglam/dailydeck/internal/ui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// App carries root flags and the settings resolved from them.
type App struct {
	ConfigPath string
	SeedPath   string
	Theme      string
	LogLevel   string

	cfg *config.Config
	log *log.Logger
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:           "deck",
		Short:         "Daily Deck: your routine as a deck of cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		Example: strings.TrimSpace(`
  # Open the interactive deck
  deck

  # Print the deck grouped by part of day
  deck ls --group

  # Start from your own deck file
  deck --seed ./my-deck.json ls --json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DECK_CONFIG", "deck.yaml"), "Path to the YAML config file (missing file uses defaults)")
	cmd.PersistentFlags().StringVar(&app.SeedPath, "seed", "", "JSON deck to start from instead of the built-in deck")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("DECK_THEME", ""), "Theme (classic|neon|mono)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newSongsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves defaults, the config file and root flags, in that order.
func (app *App) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if err := config.LoadOptional(app.ConfigPath, cfg); err != nil {
		return err
	}
	if app.Theme != "" {
		cfg.UI.Theme = strings.ToLower(app.Theme)
	}
	if app.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(app.LogLevel)
	}
	if app.SeedPath != "" {
		cfg.Deck.Seed = app.SeedPath
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err: fmt.Errorf("invalid flags: %w", err)}
	}

	app.cfg = cfg
	app.log = logging.New(cmd.ErrOrStderr(), cfg.Log)
	ui.SetTheme(cfg.UI.Theme)
	return nil
}

// openStore builds the in-memory store from the seed file, or from the
// built-in deck when none is configured.
func (app *App) openStore(l *log.Logger) (*store.Store, error) {
	opts := []store.Option{store.WithLogger(l)}
	if app.cfg.Deck.Seed == "" {
		return store.NewSeeded(opts...), nil
	}
	items, err := jsonstore.Load(app.cfg.Deck.Seed)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", app.cfg.Deck.Seed, err)
	}
	l.Debug("loaded deck", "path", app.cfg.Deck.Seed, "items", len(items))
	return store.New(append(opts, store.WithItems(items))...), nil
}

func runTUI(app *App) (err error) {
	lg, closeLog, err := logging.Open(app.cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()

	st, err := app.openStore(lg)
	if err != nil {
		return err
	}
	lg.Info("starting deck", "items", st.Len(), "theme", app.cfg.UI.Theme)
	return tui.Run(tui.Options{
		Store:     st,
		Logger:    lg,
		Spring:    app.cfg.Animation.Spring(),
		Theme:     app.cfg.UI.Theme,
		Mouse:     app.cfg.UI.Mouse,
		Remeasure: app.cfg.Animation.Remeasure,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "deck "+Version)
			return err
		},
	}
}

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if !cmd.HasParent() {
		return usageError{err: fmt.Errorf("unknown subcommand: %s", args[0])}
	}
	return usageError{err: fmt.Errorf("%s takes no arguments, got %q", cmd.Name(), args[0])}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
