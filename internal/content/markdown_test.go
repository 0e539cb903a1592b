package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestRenderMarkdown(t *testing.T) {
	src := `# Release notes

This paragraph
is hard-wrapped in the source.

- first item
- second item

1. one
2. two

> quoted text

` + "```go\nfmt.Println(\"hi\")\n```" + `

Some **bold**, *italic*, ~~gone~~ and ` + "`code`" + ` with a [link](https://example.com).
`
	out := ansi.Strip(RenderMarkdown(src, 100))

	assert.Contains(t, out, "Release notes")
	assert.NotContains(t, out, "# Release")
	assert.Contains(t, out, "This paragraph is hard-wrapped in the source.")
	assert.Contains(t, out, "• first item\n• second item")
	assert.Contains(t, out, "1. one\n2. two")
	assert.Contains(t, out, "│ quoted text")
	assert.Contains(t, out, `  fmt.Println("hi")`)
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "code")
	assert.Contains(t, out, "link (https://example.com)")
	assert.NotContains(t, out, "**")
}

func TestRenderMarkdownWraps(t *testing.T) {
	src := strings.Repeat("word ", 40)
	out := ansi.Strip(RenderMarkdown(src, 30))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30)
	}
	assert.Greater(t, strings.Count(out, "\n"), 4)
}

func TestRenderMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown("", 40))
	assert.Equal(t, "", RenderMarkdown("  \n ", 40))
}

func TestMarkdownRenderer(t *testing.T) {
	body := Markdown("## Heading\n\ntext")
	out := ansi.Strip(body.Render(40))
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "text")
}

func TestRenderMarkdownHighlightsFencedCode(t *testing.T) {
	src := "Example:\n\n```go\nfunc main() {}\n```\n"
	out := RenderMarkdown(src, 80)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "  func main() {}")
	assert.NotEqual(t, plain, out, "a named language is colored")

	assert.Equal(t, "plain", ansi.Strip(highlight("plain", "")))
}

func TestMarkdownRenderIsCachedPerWidth(t *testing.T) {
	body := Markdown("cache **this** body")
	dark := lipgloss.HasDarkBackground()

	out := body.Render(40)
	cached, ok := cache().Get(renderKey{source: string(body), width: 40, dark: dark})
	require.True(t, ok)
	assert.Equal(t, out, cached)
	assert.Equal(t, out, body.Render(40))

	assert.False(t, cache().Contains(renderKey{source: string(body), width: 41, dark: dark}))
	body.Render(41)
	assert.True(t, cache().Contains(renderKey{source: string(body), width: 41, dark: dark}))
}

func TestMarkdownWalkCompletes(t *testing.T) {
	source := []byte("# Title\n\n- [x] done\n- plain\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n---\n\n~~old~~ <b>raw</b> https://example.com\n")
	doc := parser().Parser().Parse(text.NewReader(source))

	r := &mdRenderer{source: source, width: 40}
	require.NoError(t, ast.Walk(doc, r.walk))
	assert.Contains(t, ansi.Strip(r.out.String()), "Title")
}
