// Package cli wires configuration, the roster and the picker UI behind the
// peoplepicker command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"peoplepicker/internal/config"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/people"
	"peoplepicker/internal/ui"
)

// version is set at build time
var version = "dev"

// Print formats for the final selection
const (
	PrintName = "name"
	PrintSlug = "slug"
	PrintJSON = "json"
	PrintNone = "none"
)

type options struct {
	configPath string
	peopleFile string
	debounceMs int
	logFile    string
	logLevel   string
	printAs    string
	inline     bool
	initConfig bool
}

// NewRootCommand builds the peoplepicker command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "peoplepicker",
		Short: "Pick a person from a roster with a debounced autocomplete",
		Long: `peoplepicker filters a roster of people as you type and prints the
person you pick. The list only refilters once typing pauses for the
configured debounce delay.

Keys: type to filter, up/down to move, enter to pick, tab/esc to leave
the input, ctrl+o to browse the roster, ctrl+y to copy the slug.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.printAs {
			case PrintName, PrintSlug, PrintJSON, PrintNone:
				return nil
			default:
				return fmt.Errorf("invalid --print %q: want name, slug, json or none", opts.printAs)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.peopleFile, "people", "p", "", "roster file (.json, .yaml or .toml); the built-in roster when empty")
	flags.IntVarP(&opts.debounceMs, "debounce", "d", config.DefaultDebounceMs, "debounce delay in milliseconds")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.printAs, "print", PrintName, "print the picked person as name, slug, json or none")
	flags.BoolVar(&opts.inline, "inline", false, "render inline instead of the alternate screen (disables mouse)")
	flags.BoolVar(&opts.initConfig, "init-config", false, "write the effective config to the config file and exit")

	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	configSvc := config.NewConfigService(opts.configPath)
	cfg, err := resolveConfig(cmd, configSvc, opts)
	if err != nil {
		return err
	}

	if opts.initConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configSvc.Path())
		return nil
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	roster, err := loadRoster(cfg)
	if err != nil {
		logger.Error("failed to load roster", zap.Error(err))
		return err
	}

	bus := eventbus.New(logger.Named("eventbus"))
	watchSelection(bus, logger)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path(), DebounceMs: cfg.DebounceMs})

	logger.Info("starting picker",
		zap.Int("people", roster.Len()),
		zap.Duration("debounce", cfg.DebounceDelay()),
		zap.Bool("inline", opts.inline),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(roster, ui.Options{
		Config: cfg,
		Logger: logger.Named("ui"),
		Bus:    bus,
	})

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}
	if !opts.inline {
		programOpts = append(programOpts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	_, runErr := p.Run()
	model.Close()
	bus.Close()

	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("picker terminated")
			return nil
		}
		logger.Error("picker failed", zap.Error(runErr))
		return fmt.Errorf("error running program: %w", runErr)
	}

	return printSelection(cmd.OutOrStdout(), model.Selected(), opts.printAs)
}

// resolveConfig loads the config file and applies flags the user set
func resolveConfig(cmd *cobra.Command, svc config.ConfigService, opts *options) (*config.Config, error) {
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("people") {
		cfg.PeopleFile = opts.peopleFile
	}
	if flags.Changed("debounce") {
		cfg.DebounceMs = opts.debounceMs
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRoster(cfg *config.Config) (*people.Roster, error) {
	if cfg.PeopleFile == "" {
		return people.Default(), nil
	}
	return people.LoadFile(cfg.PeopleFile)
}

// newLogger logs to the configured file so the terminal stays with the UI.
// An empty file disables logging.
func newLogger(settings config.LogSettings) (*zap.Logger, error) {
	if settings.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{settings.File}
	loggerConfig.ErrorOutputPaths = []string{settings.File}

	return loggerConfig.Build()
}

// watchSelection logs selection changes and UI errors
func watchSelection(bus eventbus.EventBus, logger *zap.Logger) {
	bus.Subscribe(eventbus.EventPersonSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PersonSelectedEvent); ok {
			logger.Info("person selected",
				zap.String("slug", event.Person.Slug),
				zap.String("name", event.Person.Name),
			)
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionClearedEvent); ok {
			logger.Info("selection cleared", zap.String("query", event.Query))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logger.Warn(event.Message, zap.Error(event.Err))
		}
	})
}

// printSelection writes the picked person in the requested format. Nothing is
// printed when no one is picked.
func printSelection(w io.Writer, p *domain.Person, format string) error {
	if p == nil {
		return nil
	}

	switch format {
	case PrintName:
		_, err := fmt.Fprintln(w, p.Name)
		return err
	case PrintSlug:
		_, err := fmt.Fprintln(w, p.Slug)
		return err
	case PrintJSON:
		return json.NewEncoder(w).Encode(p)
	case PrintNone:
		return nil
	default:
		return fmt.Errorf("unknown print format %q", format)
	}
}
