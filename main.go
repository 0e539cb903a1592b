package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"tabswitch/internal/config"
	"tabswitch/internal/content"
	"tabswitch/internal/domain"
	"tabswitch/internal/eventbus"
	"tabswitch/internal/ui"
)

// options are the command line flags
type options struct {
	configPath  string
	manifest    string
	animation   string
	orientation string
	defaultTab  string
	theme       string
	cellWidth   int
	watch       bool
	logFile     string
	logLevel    string
	save        bool
	noMouse     bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	flags := pflag.NewFlagSet("tabswitch", pflag.ContinueOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "TOML tab manifest to load instead of the demo tabs")
	flags.StringVarP(&opts.animation, "animation", "a", "", "Transition style: slide, fade or scale")
	flags.StringVarP(&opts.orientation, "orientation", "o", "", "Tab list axis: horizontal or vertical")
	flags.StringVarP(&opts.defaultTab, "default-tab", "d", "", "Tab to activate at start")
	flags.StringVar(&opts.theme, "theme", "", "Palette: auto, light or dark")
	flags.IntVar(&opts.cellWidth, "cell-width", 0, "Layout units per terminal column")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Reload the manifest when it changes")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.save, "save", false, "Save theme, animation and orientation changes to the config file")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "tabswitch: %v\n", err)
		return 2
	}

	// The terminal belongs to the UI; nothing is logged until the log file is open
	log.SetDefault(log.NewWithOptions(io.Discard, log.Options{}))

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration; logging is not up yet so errors are kept for later
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	if err := applyFlags(flags, opts, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tabswitch: %v\n", err)
		return 2
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabswitch: %v\n", err)
		return 1
	}
	defer closeLog()

	log.Info("starting", "config", configPath, "animation", cfg.UISettings.Animation, "orientation", cfg.UISettings.Orientation)
	var startupErrs []domain.ErrorEvent
	if loadErr != nil {
		log.Error("failed to load config, using defaults", "path", configPath, "error", loadErr)
		startupErrs = append(startupErrs, domain.ErrorEvent{Message: "config not loaded", Err: loadErr})
	}

	// Tab content
	tabs := content.Builtin()
	manifest := cfg.Content.Manifest
	if manifest != "" {
		loaded, err := content.LoadManifest(manifest)
		if err != nil {
			log.Error("failed to load manifest, using demo tabs", "path", manifest, "error", err)
			startupErrs = append(startupErrs, domain.ErrorEvent{Message: "manifest not loaded", Err: err})
		} else {
			tabs = loaded
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background detection queries the terminal, so only do it when needed
	dark := false
	if cfg.Theme() == domain.ThemeAuto {
		dark = termenv.NewOutput(os.Stdout).HasDarkBackground()
	}

	model := ui.NewModel(bus, cfg, tabs, dark)
	if manifest != "" {
		model.SetManifest(manifest)
	}
	if opts.save {
		model.SetConfigService(configSvc)
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)

	// Bus events re-enter the update loop as messages
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, typ := range []eventbus.EventType{
		eventbus.EventTabChanged,
		eventbus.EventLayoutChanged,
		eventbus.EventContentReloaded,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(typ, forward)
	}

	if cfg.Content.Watch && manifest != "" {
		w, err := content.NewWatcher(manifest, bus)
		if err != nil {
			log.Error("failed to watch manifest", "path", manifest, "error", err)
			startupErrs = append(startupErrs, domain.ErrorEvent{Message: "manifest not watched", Err: err})
		} else {
			log.Info("watching manifest", "path", w.Path())
			go w.Run(ctx)
		}
	}

	for _, e := range startupErrs {
		bus.Publish(e)
	}

	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Info("exited normally")
	return 0
}

// applyFlags layers explicitly set flags over the loaded config
func applyFlags(flags *pflag.FlagSet, opts options, cfg *config.Config) error {
	if flags.Changed("manifest") {
		abs, err := filepath.Abs(opts.manifest)
		if err != nil {
			return fmt.Errorf("failed to resolve manifest path: %w", err)
		}
		cfg.Content.Manifest = abs
	}
	if flags.Changed("animation") {
		cfg.UISettings.Animation = opts.animation
	}
	if flags.Changed("orientation") {
		cfg.UISettings.Orientation = opts.orientation
	}
	if flags.Changed("default-tab") {
		cfg.UISettings.DefaultTab = opts.defaultTab
	}
	if flags.Changed("theme") {
		cfg.UISettings.Theme = opts.theme
	}
	if flags.Changed("cell-width") {
		cfg.UISettings.CellWidth = opts.cellWidth
	}
	if flags.Changed("watch") {
		cfg.Content.Watch = opts.watch
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noMouse {
		cfg.UISettings.Mouse = false
	}
	return cfg.Validate()
}

// setupLogging sends the default logger to the log file. The terminal
// belongs to the UI, so an empty file name discards logs.
func setupLogging(settings config.LogSettings) (func(), error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}
	if settings.File == "" {
		log.SetDefault(log.NewWithOptions(io.Discard, log.Options{Level: level}))
		return func() {}, nil
	}

	logFile, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetDefault(log.NewWithOptions(logFile, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "tabswitch",
	}))
	return func() { logFile.Close() }, nil
}
