package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tabswitch/internal/domain"
)

// Manifest errors
var (
	ErrNoTabs        = errors.New("manifest has no tabs")
	ErrMissingID     = errors.New("tab has no id")
	ErrMissingLabel  = errors.New("tab has no label")
	ErrDuplicateTab  = errors.New("duplicate tab id")
	ErrAmbiguousBody = errors.New("tab sets both markdown and file")
)

// Manifest is the on-disk description of a tab list
type Manifest struct {
	Title string      `toml:"title" yaml:"title"`
	Tabs  []TabSource `toml:"tab" yaml:"tabs"`
}

// TabSource is one [[tab]] entry
type TabSource struct {
	ID       string `toml:"id" yaml:"id"`
	Label    string `toml:"label" yaml:"label"`
	Icon     string `toml:"icon" yaml:"icon"`
	Markdown string `toml:"markdown" yaml:"markdown"`
	File     string `toml:"file" yaml:"file"` // markdown file, relative to the manifest
}

// LoadManifest reads and validates a tab manifest. Files ending in .yaml
// or .yml are read as YAML, everything else as TOML. Markdown files are
// read eagerly so a broken reference fails the load rather than the render.
func LoadManifest(path string) ([]domain.TabDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	parse := ParseManifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseManifestYAML
	}
	m, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m.Resolve(filepath.Dir(path))
}

// ParseManifest decodes manifest TOML. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("invalid manifest at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseManifestYAML decodes a YAML manifest, whose tab list lives under
// "tabs". Unknown keys are rejected.
func ParseManifestYAML(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks ids, labels and bodies
func (m *Manifest) Validate() error {
	if len(m.Tabs) == 0 {
		return ErrNoTabs
	}
	seen := make(map[string]bool, len(m.Tabs))
	for i, t := range m.Tabs {
		id := strings.TrimSpace(t.ID)
		switch {
		case id == "":
			return fmt.Errorf("tab %d: %w", i+1, ErrMissingID)
		case strings.TrimSpace(t.Label) == "":
			return fmt.Errorf("tab %q: %w", id, ErrMissingLabel)
		case seen[id]:
			return fmt.Errorf("tab %q: %w", id, ErrDuplicateTab)
		case t.Markdown != "" && t.File != "":
			return fmt.Errorf("tab %q: %w", id, ErrAmbiguousBody)
		}
		seen[id] = true
	}
	return nil
}

// Resolve turns the manifest into tab descriptors, reading file bodies
// relative to dir
func (m *Manifest) Resolve(dir string) ([]domain.TabDescriptor, error) {
	tabs := make([]domain.TabDescriptor, 0, len(m.Tabs))
	for _, t := range m.Tabs {
		body := t.Markdown
		if t.File != "" {
			p := t.File
			if !filepath.IsAbs(p) {
				p = filepath.Join(dir, p)
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("tab %q: failed to read body: %w", t.ID, err)
			}
			body = string(data)
		}

		icon := domain.ParseIcon(t.Icon)
		if icon == domain.IconNone && t.Icon != "" {
			log.Warn("unknown tab icon, rendering without one", "tab", t.ID, "icon", t.Icon)
		}

		tabs = append(tabs, domain.TabDescriptor{
			ID:      strings.TrimSpace(t.ID),
			Label:   strings.TrimSpace(t.Label),
			Icon:    icon,
			Content: Markdown(body),
		})
	}
	return tabs, nil
}
