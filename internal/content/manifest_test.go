package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabswitch/internal/domain"
)

const sampleManifest = `
title = "Docs"

[[tab]]
id = "intro"
label = "Intro"
icon = "home"
markdown = """
# Welcome

Hello there.
"""

[[tab]]
id = "guide"
label = "Guide"
icon = "rocket"
file = "guide.md"
`

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabs.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guide.md"), []byte("Step **one**."), 0o644))

	tabs, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, tabs, 2)

	assert.Equal(t, "intro", tabs[0].ID)
	assert.Equal(t, "Intro", tabs[0].Label)
	assert.Equal(t, domain.IconHome, tabs[0].Icon)
	assert.Contains(t, ansi.Strip(tabs[0].Body(40)), "Hello there.")

	// Unknown icons degrade to none
	assert.Equal(t, domain.IconNone, tabs[1].Icon)
	assert.Contains(t, ansi.Strip(tabs[1].Body(40)), "Step one.")
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no tabs", `title = "x"`, ErrNoTabs},
		{"missing id", "[[tab]]\nlabel = \"A\"\n", ErrMissingID},
		{"missing label", "[[tab]]\nid = \"a\"\n", ErrMissingLabel},
		{"duplicate", "[[tab]]\nid = \"a\"\nlabel = \"A\"\n[[tab]]\nid = \"a\"\nlabel = \"B\"\n", ErrDuplicateTab},
		{"two bodies", "[[tab]]\nid = \"a\"\nlabel = \"A\"\nmarkdown = \"x\"\nfile = \"y.md\"\n", ErrAmbiguousBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.body))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseManifestRejectsBadTOML(t *testing.T) {
	_, err := ParseManifest([]byte("[[tab]\nid = "))
	require.Error(t, err)

	_, err = ParseManifest([]byte("[[tab]]\nid = \"a\"\nlabel = \"A\"\ncolour = \"red\"\n"))
	require.Error(t, err)
}

func TestLoadManifestMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabs.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[tab]]\nid = \"a\"\nlabel = \"A\"\nfile = \"nope.md\"\n"), 0o644))

	_, err := LoadManifest(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadManifest(filepath.Join(dir, "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadManifestYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Docs
tabs:
  - id: intro
    label: Intro
    icon: user
    markdown: Hello *there*.
  - id: guide
    label: Guide
    file: guide.md
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guide.md"), []byte("Read me."), 0o644))

	tabs, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, domain.IconUser, tabs[0].Icon)
	assert.Equal(t, "Hello there.", ansi.Strip(tabs[0].Body(40)))
	assert.Equal(t, "Read me.", ansi.Strip(tabs[1].Body(40)))
}

func TestParseManifestYAMLErrors(t *testing.T) {
	_, err := ParseManifestYAML([]byte(""))
	require.ErrorIs(t, err, ErrNoTabs)

	_, err = ParseManifestYAML([]byte("tabs:\n  - id: a\n    label: A\n    colour: red\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = ParseManifestYAML([]byte("tabs:\n  - id: a\n    label: A\n  - id: a\n    label: B\n"))
	require.ErrorIs(t, err, ErrDuplicateTab)
}
