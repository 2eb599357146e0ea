// Command folio runs the project showcase in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/prefs"
	"folio/internal/telemetry"
	"folio/internal/ui"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	EnvFile string
	Catalog string
	Assets  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand creates the folio command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	var (
		theme   string
		noMouse bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Browse a portfolio of projects in the terminal",
		Long:          "Shows a grid of project cards. Selecting one opens an image carousel with the project's details.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = theme
			}
			if noMouse {
				cfg.Mouse = false
			}
			if debug {
				cfg.Debug = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runShowcase(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "catalog file (.yaml or .json); default is the built-in catalog")
	cmd.PersistentFlags().StringVar(&opts.Assets, "assets", "", "base URL or directory for relative image references")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme (dark|light); default is the saved preference")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse input")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a debug log (see FOLIO_LOG_FILE)")

	cmd.AddCommand(NewCatalogCommand(opts))
	return cmd
}

// loadConfig reads the environment and applies the shared flags on top.
func loadConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = opts.Catalog
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets = opts.Assets
	}
	return cfg, nil
}

// loadCatalog loads the configured catalog and resolves its assets.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	c, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if cfg.Assets != "" {
		c = c.ResolveAssets(cfg.Assets)
	}
	return c, nil
}

func runShowcase(ctx context.Context, cfg config.Config) error {
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	store, err := prefs.NewStore(cfg.Home)
	if err != nil {
		log.Printf("folio: preferences disabled: %v", err)
	}
	theme := cfg.Theme
	if theme == "" {
		theme = store.Theme()
	}

	tracer, err := telemetry.New(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		log.Printf("folio: telemetry disabled: %v", err)
		tracer = telemetry.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Printf("folio: %v", err)
		}
	}()

	log.Printf("folio: %d projects, %d images, theme %s", c.Len(), c.ImageCount(), ui.ParseTheme(theme))
	model := ui.NewAppModel(ui.AppOptions{
		Catalog:       c,
		Theme:         ui.ParseTheme(theme),
		Prefs:         store,
		Tracer:        tracer,
		Owner:         cfg.Owner,
		Tagline:       cfg.Tagline,
		Contact:       cfg.Contact,
		DragThreshold: cfg.DragThreshold,
		CellWidth:     cfg.CellWidth,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model.AsTeaModel(), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
