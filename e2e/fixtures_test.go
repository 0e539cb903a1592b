//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates the temporary directory the app runs in. It
// doubles as $HOME so no user config leaks into a test.
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file relative to the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, contents string) (string, error) {
	p := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		return "", err
	}
	return p, nil
}

// twoTabManifest is a small manifest with an inline and a file body
const twoTabManifest = `title = "E2E"

[[tab]]
id = "intro"
label = "Introduction"
icon = "home"
markdown = "Welcome to the **intro** tab."

[[tab]]
id = "notes"
label = "Release Notes"
icon = "user"
file = "notes.md"
`

const notesBody = `# Release notes

- first change
- second change
`
