// Package content supplies the tab bodies shown by the demo page: the
// built-in mockup tabs, tabs loaded from a TOML manifest with markdown
// bodies, and a watcher that reloads the manifest when it changes.
package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"tabswitch/internal/domain"
)

// Palette entries adapt to the terminal background
var (
	textColor  = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f3f4f6"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	lineColor  = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	blue       = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	green      = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	purple     = lipgloss.AdaptiveColor{Light: "#9333ea", Dark: "#c084fc"}
	orange     = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	pink       = lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"}
	cyan       = lipgloss.AdaptiveColor{Light: "#0e7490", Dark: "#67e8f9"}
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lineColor).
			Padding(0, 1)
)

// Builtin returns the four demo tabs
func Builtin() []domain.TabDescriptor {
	return []domain.TabDescriptor{
		{ID: "dashboard", Label: "Dashboard", Icon: domain.IconHome, Content: domain.RenderFunc(dashboard)},
		{ID: "analytics", Label: "Analytics", Icon: domain.IconBarChart, Content: domain.RenderFunc(analytics)},
		{ID: "settings", Label: "Settings", Icon: domain.IconSettings, Content: domain.RenderFunc(settings)},
		{ID: "profile", Label: "Profile", Icon: domain.IconUser, Content: domain.RenderFunc(profile)},
	}
}

type stat struct {
	title  string
	value  string
	change string
	color  lipgloss.AdaptiveColor
}

func dashboard(width int) string {
	stats := []stat{
		{"Total Users", "12,543", "+5.2% from last month", blue},
		{"Revenue", "$48,567", "+12.8% from last month", green},
		{"Conversion", "3.24%", "+0.8% from last month", purple},
	}
	cards := make([]string, len(stats))
	for i, s := range stats {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(s.color).Render(s.title),
			lipgloss.NewStyle().Bold(true).Foreground(textColor).Render(s.value),
			lipgloss.NewStyle().Foreground(s.color).Render(s.change),
		)
		cards[i] = cardStyle.Render(body)
	}

	activity := []string{"New user registered", "Payment processed", "Report generated", "System backup completed"}
	rows := make([]row, len(activity))
	for i, a := range activity {
		rows[i] = row{
			left:  lipgloss.NewStyle().Foreground(blue).Render("●") + " " + a,
			right: fmt.Sprintf("%d min ago", i+1),
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		grid(cards, width, 3, 24),
		"",
		section("Recent Activity", width, listRows(rows, width-4)),
	)
}

type metric struct {
	label  string
	value  string
	change string
}

type source struct {
	name    string
	percent int
	color   string
}

func analytics(width int) string {
	metrics := []metric{
		{"Page Views", "125.4K", "+8.2%"},
		{"Sessions", "32.1K", "+15.3%"},
		{"Bounce Rate", "28.4%", "-2.1%"},
		{"Avg. Duration", "3m 42s", "+0.8%"},
	}
	cells := make([]string, len(metrics))
	for i, m := range metrics {
		cells[i] = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(orange).Render(m.value),
			m.label,
			lipgloss.NewStyle().Foreground(green).Render(m.change),
		)
	}

	sources := []source{
		{"Organic Search", 45, "#3b82f6"},
		{"Direct", 30, "#22c55e"},
		{"Social Media", 15, "#a855f7"},
		{"Referral", 10, "#f97316"},
	}
	const labelWidth = 16
	barWidth := max(width-4-labelWidth-6, 8)
	lines := make([]string, len(sources))
	for i, s := range sources {
		bar := progress.New(
			progress.WithSolidFill(s.color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(labelWidth).Render(s.name),
			bar.ViewAs(float64(s.percent)/100),
			lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%d%%", s.percent)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		section("Performance Metrics", width, grid(cells, width-4, 4, 16)),
		"",
		section("Traffic Sources", width, strings.Join(lines, "\n")),
	)
}

type setting struct {
	label       string
	description string
}

func settings(width int) string {
	general := []setting{
		{"Enable Notifications", "Receive email notifications for important updates"},
		{"Auto-save Changes", "Automatically save your work every 30 seconds"},
		{"Show Advanced Options", "Display advanced configuration options"},
		{"Enable Dark Mode", "Use dark theme across the application"},
	}
	inner := max(width-4, 10)
	toggle := lipgloss.NewStyle().Foreground(mutedColor).Render("(●   )")
	blocks := make([]string, len(general))
	for i, s := range general {
		text := lipgloss.NewStyle().Width(max(inner-lipgloss.Width(toggle)-2, 8)).Render(
			lipgloss.NewStyle().Bold(true).Render(s.label) + "\n" + mutedStyle.Render(s.description),
		)
		blocks[i] = lipgloss.JoinHorizontal(lipgloss.Top, text, "  ", toggle)
	}

	swatches := []struct {
		name string
		fill string
	}{
		{"Light", lipgloss.NewStyle().Foreground(lipgloss.Color("#f9fafb")).Render("████")},
		{"Dark", lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")).Render("████")},
		{"Auto", lipgloss.NewStyle().Foreground(lipgloss.Color("#f9fafb")).Render("██") +
			lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")).Render("██")},
	}
	themes := make([]string, len(swatches))
	for i, s := range swatches {
		themes[i] = lipgloss.JoinVertical(lipgloss.Center, s.fill, s.name)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		section("General Settings", width, strings.Join(blocks, "\n\n")),
		"",
		titled("Appearance", pink, width, grid(themes, inner, 3, 10)),
	)
}

type field struct {
	label string
	value string
}

func profile(width int) string {
	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#6366f1")).
		Padding(1, 2).
		Render("JD")
	who := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(cyan).Render("John Doe"),
		"john.doe@example.com",
		mutedStyle.Render("Member since March 2023"),
	)
	header := lipgloss.JoinHorizontal(lipgloss.Center, avatar, "   ", who)

	fields := []field{
		{"Full Name", "John Doe"},
		{"Email", "john.doe@example.com"},
		{"Phone", "+1 (555) 123-4567"},
		{"Location", "San Francisco, CA"},
		{"Timezone", "Pacific Standard Time"},
		{"Language", "English (US)"},
	}
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = mutedStyle.Render(f.label) + "\n" + lipgloss.NewStyle().Bold(true).Render(f.value)
	}

	recent := []row{
		{left: "Updated profile picture", right: "2 hours ago"},
		{left: "Changed email preferences", right: "1 day ago"},
		{left: "Logged in from new device", right: "3 days ago"},
		{left: "Updated security settings", right: "1 week ago"},
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		section("Account Details", width, grid(cells, width-4, 2, 24)),
		"",
		section("Recent Activity", width, listRows(recent, width-4)),
	)
}

// section is a titled card filling width
func section(title string, width int, body string) string {
	return titled(title, textColor, width, body)
}

func titled(title string, color lipgloss.AdaptiveColor, width int, body string) string {
	st := cardStyle
	if width > st.GetHorizontalFrameSize() {
		st = st.Width(width - st.GetHorizontalBorderSize())
	}
	return st.Render(headingStyle.Foreground(color).Render(title) + "\n\n" + body)
}

// grid lays cells out in up to cols columns, dropping columns until each is
// at least minWidth wide
func grid(cells []string, width, cols, minWidth int) string {
	for cols > 1 && width/cols < minWidth {
		cols--
	}
	colWidth := max(width/cols, 1)

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		line := make([]string, 0, end-start)
		for _, c := range cells[start:end] {
			line = append(line, lipgloss.NewStyle().Width(colWidth).Render(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return strings.Join(rows, "\n")
}

type row struct {
	left  string
	right string
}

// listRows renders label/value pairs with the value right-aligned
func listRows(rows []row, width int) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		right := mutedStyle.Render(r.right)
		gap := max(width-lipgloss.Width(r.left)-lipgloss.Width(right), 1)
		lines[i] = r.left + strings.Repeat(" ", gap) + right
	}
	return strings.Join(lines, "\n")
}
