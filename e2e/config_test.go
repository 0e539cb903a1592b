//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigSavedOnChange(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	configPath := filepath.Join(workspace, "tabswitch.toml")

	require.NoError(t, tf.StartApp("-c", configPath, "--save", "--log-file", ""), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the page title")

	require.NoError(t, tf.SendKeys("o"))
	require.True(t, tf.WaitForStatusMessage("Saved settings to", 3*time.Second), "Should confirm the save")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be created")
	require.Contains(t, string(data), "vertical")
}

func TestConfigFileIsApplied(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	configPath, err := tf.WriteFile("custom.toml", `version = 1

[ui]
animation = "scale"
default_tab = "profile"
`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-c", configPath, "--log-file", ""), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the page title")
	require.True(t, tf.SeePlain("Animation scale"), "Controls should show the configured animation")
	require.True(t, tf.SeePlain("Pacific Standard Time"), "Should open on the configured tab")
}

func TestLogFileWritten(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("--log-level", "debug"), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the page title")
	require.NoError(t, tf.Right())
	require.True(t, tf.WaitForStatusMessage("→ Analytics", 3*time.Second))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(filepath.Join(workspace, "tabswitch.log"))
	require.NoError(t, err, "Default log file should be created in the working directory")
	require.Contains(t, string(data), "tab=analytics")
}
