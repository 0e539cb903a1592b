package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	inputtypes "tabswitch/internal/ui/input/types"
	"tabswitch/internal/ui/tabswitcher"
	"tabswitch/internal/ui/views"
)

func TestHelpContentListsBindings(t *testing.T) {
	r := NewHelpRenderer(inputtypes.DefaultKeyMap(), tabswitcher.DefaultKeyMap)
	out := ansi.Strip(r.Content(views.NewStyles(true)))

	for _, want := range []string{"Tabs", "Focus", "Panel", "Page", "previous tab", "next tab", "first tab", "theme", "help pager", "Click a tab"} {
		assert.Contains(t, out, want)
	}
}

func TestHelpScrolling(t *testing.T) {
	r := NewHelpRenderer(inputtypes.DefaultKeyMap(), tabswitcher.DefaultKeyMap)
	styles := views.NewStyles(false)
	total := len(r.lines(styles))

	// Tall screens show everything
	assert.Equal(t, 0, r.MaxOffset(styles, total+20))
	assert.NotContains(t, ansi.Strip(r.Render(styles, total+20, 0)), "more")

	// Short screens get a window with markers
	height := 13
	rows := visibleRows(height)
	maxOffset := r.MaxOffset(styles, height)
	assert.Equal(t, total-rows, maxOffset)

	top := strings.Split(ansi.Strip(r.Render(styles, height, 0)), "\n")
	assert.Len(t, top, rows)
	assert.Equal(t, "↓ (more below)", top[len(top)-1])

	bottom := strings.Split(ansi.Strip(r.Render(styles, height, maxOffset+10)), "\n")
	assert.Len(t, bottom, rows)
	assert.Equal(t, "↑ (more above)", bottom[0])
	assert.NotEqual(t, "↓ (more below)", bottom[len(bottom)-1])
}
