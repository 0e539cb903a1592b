package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"tabswitch/internal/domain"
)

var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func parser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

const wrapBreakpoints = " ,.;-+|"

// renderCacheSize bounds the number of rendered bodies kept
const renderCacheSize = 64

// renderKey identifies one rendering. Adaptive colours resolve against
// the background at render time, so it is part of the key.
type renderKey struct {
	source string
	width  int
	dark   bool
}

var (
	renderCacheOnce sync.Once
	renderCache     *lru.Cache[renderKey, string]
)

func cache() *lru.Cache[renderKey, string] {
	renderCacheOnce.Do(func() {
		// Only a non-positive size is an error
		renderCache, _ = lru.New[renderKey, string](renderCacheSize)
	})
	return renderCache
}

// Markdown is a tab body rendered from markdown source, reflowed to the
// panel width. Renderings are cached per width and background.
type Markdown string

// Render implements domain.Renderer
func (m Markdown) Render(width int) string {
	key := renderKey{source: string(m), width: width, dark: lipgloss.HasDarkBackground()}
	if out, ok := cache().Get(key); ok {
		return out
	}
	out := RenderMarkdown(string(m), width)
	cache().Add(key, out)
	return out
}

var _ domain.Renderer = Markdown("")

// RenderMarkdown renders markdown as styled terminal text. Soft line breaks
// become spaces so paragraphs reflow to width.
func RenderMarkdown(input string, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	doc := parser().Parser().Parse(text.NewReader(source))

	r := &mdRenderer{source: source, width: max(width, 10)}
	if err := ast.Walk(doc, r.walk); err != nil {
		log.Warn("markdown rendering stopped early", "error", err)
	}
	return strings.TrimRight(r.out.String(), "\n")
}

type listState struct {
	ordered bool
	counter int
	tight   bool
}

// mdRenderer walks the AST, collecting inline text per block and wrapping
// it when the block closes
type mdRenderer struct {
	source []byte
	width  int

	out      strings.Builder
	inline   strings.Builder
	trailing int

	prefix string
	bullet string
	lists  []listState
	bold   int
	italic int
	strike int
}

func (r *mdRenderer) write(s string) {
	if s == "" {
		return
	}
	r.out.WriteString(s)
	n := len(s) - len(strings.TrimRight(s, "\n"))
	if n == len(s) {
		r.trailing += n
	} else {
		r.trailing = n
	}
}

func (r *mdRenderer) newline() {
	if r.trailing < 1 && r.out.Len() > 0 {
		r.write("\n")
	}
}

func (r *mdRenderer) blank() {
	if r.out.Len() == 0 {
		return
	}
	for r.trailing < 2 {
		r.write("\n")
	}
}

func (r *mdRenderer) tight() bool {
	return len(r.lists) > 0 && r.lists[len(r.lists)-1].tight
}

// prefixed applies the bullet to the first line and the prefix to the rest
func (r *mdRenderer) prefixed(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		p := r.prefix
		if i == 0 && r.bullet != "" {
			p = r.bullet
			r.bullet = ""
		}
		lines[i] = p + l
	}
	return strings.Join(lines, "\n")
}

func (r *mdRenderer) flush() string {
	s := r.inline.String()
	r.inline.Reset()
	if s == "" {
		return ""
	}
	w := max(r.width-ansi.StringWidth(r.prefix), 10)
	return r.prefixed(ansi.Wrap(s, w, wrapBreakpoints))
}

func (r *mdRenderer) styled(s string) string {
	st := lipgloss.NewStyle().Foreground(textColor)
	if r.bold > 0 {
		st = st.Bold(true)
	}
	if r.italic > 0 {
		st = st.Italic(true)
	}
	if r.strike > 0 {
		st = st.Strikethrough(true)
	}
	return st.Render(s)
}

func (r *mdRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			r.inline.Reset()
			break
		}
		if s := r.flush(); s != "" {
			r.write(s)
			r.newline()
			if !r.tight() {
				r.blank()
			}
		}

	case ast.KindHeading:
		if entering {
			r.inline.Reset()
			break
		}
		r.heading(n.(*ast.Heading))

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			r.code(n)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindBlockquote:
		if entering {
			r.prefix += "│ "
		} else {
			r.prefix = strings.TrimSuffix(r.prefix, "│ ")
			r.blank()
		}

	case ast.KindList:
		if entering {
			l := n.(*ast.List)
			r.lists = append(r.lists, listState{ordered: l.IsOrdered(), counter: l.Start, tight: l.IsTight})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			if !r.tight() {
				r.blank()
			}
		}

	case ast.KindListItem:
		r.listItem(entering)

	case ast.KindThematicBreak:
		if entering {
			r.blank()
			rule := strings.Repeat("─", max(r.width-ansi.StringWidth(r.prefix), 1))
			r.write(r.prefixed(lipgloss.NewStyle().Foreground(lineColor).Render(rule)))
			r.newline()
			r.blank()
		}

	case ast.KindText:
		if entering {
			t := n.(*ast.Text)
			r.inline.WriteString(r.styled(string(t.Segment.Value(r.source))))
			if t.SoftLineBreak() {
				r.inline.WriteString(" ")
			}
			if t.HardLineBreak() {
				r.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			r.inline.WriteString(r.styled(string(n.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		e := n.(*ast.Emphasis)
		d := 1
		if !entering {
			d = -1
		}
		if e.Level >= 2 {
			r.bold += d
		} else {
			r.italic += d
		}

	case ast.KindCodeSpan:
		if entering {
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(lipgloss.NewStyle().Foreground(orange).Render(b.String()))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindLink:
		if !entering {
			link := n.(*ast.Link)
			r.inline.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render(" (" + string(link.Destination) + ")"))
		}

	case ast.KindAutoLink:
		if entering {
			link := n.(*ast.AutoLink)
			r.inline.WriteString(lipgloss.NewStyle().Foreground(blue).Underline(true).Render(string(link.URL(r.source))))
		}

	case extast.KindStrikethrough:
		if entering {
			r.strike++
		} else {
			r.strike--
		}

	case extast.KindTaskCheckBox:
		if entering {
			box := "[ ] "
			if n.(*extast.TaskCheckBox).IsChecked {
				box = lipgloss.NewStyle().Foreground(green).Render("[x]") + " "
			}
			r.inline.WriteString(box)
		}
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) heading(h *ast.Heading) {
	s := ansi.Strip(r.inline.String())
	r.inline.Reset()
	if s == "" {
		return
	}
	st := lipgloss.NewStyle().Bold(true).Foreground(textColor)
	if h.Level <= 2 {
		st = st.Foreground(blue)
	}
	if h.Level == 1 {
		st = st.Underline(true)
	}
	r.blank()
	r.write(r.prefixed(ansi.Wrap(st.Render(s), max(r.width-ansi.StringWidth(r.prefix), 10), wrapBreakpoints)))
	r.newline()
	r.blank()
}

func (r *mdRenderer) code(n ast.Node) {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.source))
	}
	var lang string
	if fc, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fc.Language(r.source))
	}

	r.blank()
	for _, l := range strings.Split(highlight(strings.TrimRight(b.String(), "\n"), lang), "\n") {
		r.write(r.prefixed("  " + l))
		r.newline()
	}
	r.blank()
}

// highlight colors code with chroma when the block names a language,
// otherwise it is dimmed
func highlight(code, lang string) string {
	dim := func() string {
		st := lipgloss.NewStyle().Foreground(mutedColor)
		lines := strings.Split(code, "\n")
		for i, l := range lines {
			lines[i] = st.Render(l)
		}
		return strings.Join(lines, "\n")
	}
	if lang == "" {
		return dim()
	}
	var buf strings.Builder
	if err := quick.Highlight(&buf, code, lang, "terminal256", "monokai"); err != nil {
		return dim()
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *mdRenderer) listItem(entering bool) {
	if len(r.lists) == 0 {
		return
	}
	top := &r.lists[len(r.lists)-1]
	if entering {
		bullet := "• "
		if top.ordered {
			bullet = fmt.Sprintf("%d. ", top.counter)
			top.counter++
		}
		r.bullet = r.prefix + bullet
		r.prefix += strings.Repeat(" ", ansi.StringWidth(bullet))
		return
	}

	r.prefix = r.prefix[:len(r.prefix)-indentWidth(top)]
	if top.tight {
		r.newline()
	} else {
		r.blank()
	}
}

// indentWidth is the continuation indent pushed by the current item
func indentWidth(l *listState) int {
	if !l.ordered {
		return 2
	}
	// counter was advanced on entry
	return len(fmt.Sprintf("%d. ", l.counter-1))
}
