package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabswitch/internal/config"
)

func parse(t *testing.T, args ...string) (*pflag.FlagSet, options) {
	t.Helper()
	var opts options
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "")
	flags.StringVarP(&opts.animation, "animation", "a", "", "")
	flags.StringVarP(&opts.orientation, "orientation", "o", "", "")
	flags.StringVarP(&opts.defaultTab, "default-tab", "d", "", "")
	flags.StringVar(&opts.theme, "theme", "", "")
	flags.IntVar(&opts.cellWidth, "cell-width", 0, "")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "")
	flags.StringVar(&opts.logFile, "log-file", "", "")
	flags.StringVar(&opts.logLevel, "log-level", "", "")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "")
	require.NoError(t, flags.Parse(args))
	return flags, opts
}

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.Animation = "scale"

	flags, opts := parse(t, "-o", "vertical", "--theme", "dark", "--no-mouse")
	require.NoError(t, applyFlags(flags, opts, cfg))

	assert.Equal(t, "scale", cfg.UISettings.Animation, "unset flags keep the file value")
	assert.Equal(t, "vertical", cfg.UISettings.Orientation)
	assert.Equal(t, "dark", cfg.UISettings.Theme)
	assert.False(t, cfg.UISettings.Mouse)
	assert.Equal(t, "tabswitch.log", cfg.Log.File)
}

func TestApplyFlagsResolvesManifest(t *testing.T) {
	cfg := config.DefaultConfig()
	flags, opts := parse(t, "-m", "tabs.toml", "-w")
	require.NoError(t, applyFlags(flags, opts, cfg))

	assert.True(t, filepath.IsAbs(cfg.Content.Manifest))
	assert.Equal(t, "tabs.toml", filepath.Base(cfg.Content.Manifest))
	assert.True(t, cfg.Content.Watch)
}

func TestApplyFlagsValidates(t *testing.T) {
	cfg := config.DefaultConfig()
	flags, opts := parse(t, "--animation", "spin")
	require.ErrorIs(t, applyFlags(flags, opts, cfg), config.ErrInvalidAnimation)

	cfg = config.DefaultConfig()
	flags, opts = parse(t, "--cell-width", "0")
	require.ErrorIs(t, applyFlags(flags, opts, cfg), config.ErrInvalidCellWidth)
}

func TestSetupLogging(t *testing.T) {
	defer log.SetDefault(log.New(os.Stderr))

	_, err := setupLogging(config.LogSettings{Level: "loud"})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "app.log")
	closeLog, err := setupLogging(config.LogSettings{File: path, Level: "debug"})
	require.NoError(t, err)
	log.Debug("tab changed", "tab", "analytics")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tab=analytics")
	assert.Contains(t, string(data), "prefix=tabswitch")
}
