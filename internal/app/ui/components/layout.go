package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"sewerlink/internal/config"
)

// Marker wraps s in a clickable zone named id
type Marker func(id, s string) string

// NoMark is a Marker that leaves the content untouched
func NoMark(_, s string) string { return s }

// Header describes the top bar of the console
type Header struct {
	Title       string
	BackVisible bool
	MenuVisible bool
	BackZone    string
	MenuZone    string
	Mark        Marker
}

// RenderLine renders a horizontal line of the specified width
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders: [←] ── <title> ────────── [⋮]
func RenderHeader(width int, h Header) string {
	mark := h.Mark
	if mark == nil {
		mark = NoMark
	}

	left := ""
	if h.BackVisible {
		left = mark(h.BackZone, IconStyle.Render(IconBack)) + " "
	}

	right := ""
	if h.MenuVisible {
		right = " " + mark(h.MenuZone, IconStyle.Render(IconMenu))
	}

	fixed := lipgloss.Width(left) + lipgloss.Width(right) + HeaderFixedChars

	title := Truncate(h.Title, width-fixed-MinSeparatorWidth)
	separatorWidth := width - fixed - lipgloss.Width(title)

	if separatorWidth < MinSeparatorWidth {
		separatorWidth = MinSeparatorWidth
	}

	return HeaderStyle.Render(left + RenderLine(2) + " " + TitleStyle.Render(title) + " " + RenderLine(separatorWidth) + right)
}

// Footer describes the bottom bar of the console
type Footer struct {
	Help  string
	Tip   string
	Stats string
}

// RenderFooter renders the version line, help text and an optional tip
func RenderFooter(width int, f Footer) string {
	info := "v" + config.Version
	if f.Stats != "" {
		info = StatsStyle.Render(f.Stats) + "  " + info
	}

	separatorWidth := width - lipgloss.Width(info) - FooterFixedChars
	if separatorWidth < MinSeparatorWidth {
		separatorWidth = MinSeparatorWidth
	}

	lines := []string{
		RenderLine(separatorWidth) + " " + info + " " + RenderLine(1),
		HelpStyle.Render(f.Help),
	}

	if f.Tip != "" {
		lines = append(lines, HelpStyle.Render(f.Tip))
	}

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderContent wraps a screen body with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// RenderButton renders an action button in its enabled, focused or disabled form
func RenderButton(label string, enabled, focused bool) string {
	text := "[ " + label + " ]"

	switch {
	case !enabled:
		return DisabledButtonStyle.Render(text)
	case focused:
		return FocusedButtonStyle.Render(text)
	default:
		return ButtonStyle.Render(text)
	}
}

// Truncate shortens s to fit maxWidth cells, marking the cut with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	return truncate.StringWithTail(s, uint(maxWidth), "…") // #nosec G115 -- maxWidth is positive
}

// Wrap word-wraps s to width cells
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	return wordwrap.String(s, width)
}

// ContentWidth returns the usable body width for a terminal width
func ContentWidth(width int) int {
	if width <= 0 {
		width = DefaultWidth
	}

	w := width - CardPadding
	if w < MinContentWidth {
		return MinContentWidth
	}

	return w
}
