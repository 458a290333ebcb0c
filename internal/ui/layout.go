package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/view"
)

// Layout manages the terminal frame: header, content, tab bar and
// status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	TabBarHeight    int
	StatusBarHeight int

	Styles theme.Styles
}

// NewLayout creates a Layout with the given terminal dimensions.
// The bars each default to one line.
func NewLayout(width, height int, styles theme.Styles) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		TabBarHeight:    1,
		StatusBarHeight: 1,
		Styles:          styles,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height left for the active screen.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.TabBarHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderHeader renders the top bar with a title on the left and the
// session badge on the right.
func (l Layout) RenderHeader(title string, badge string) string {
	style := l.Styles.Header
	titleRendered := style.Render(title)
	badgeRendered := style.Align(lipgloss.Right).Render(badge)

	gap := max(l.Width-lipgloss.Width(titleRendered)-lipgloss.Width(badgeRendered), 0)
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, titleRendered, filler, badgeRendered)
}

// RenderTabs renders the navigation bar, numbering each tab with the key
// that jumps to it.
func (l Layout) RenderTabs(tabs []view.Tab, active string) string {
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := string(rune('1'+i)) + " " + t.Title
		if t.Screen == active {
			parts = append(parts, l.Styles.ActiveTab.Render(label))
			continue
		}
		parts = append(parts, l.Styles.Tab.Render(label))
	}
	return lipgloss.NewStyle().
		MaxWidth(l.Width).
		Render(strings.Join(parts, " "))
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	style := l.Styles.StatusBar
	rendered := style.Render(hints)

	gap := max(l.Width-lipgloss.Width(rendered), 0)
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, tab bar and status bar. Content is padded to
// the content height so the bars stay pinned.
func (l Layout) RenderWithFrame(header, content, tabs, statusBar string) string {
	body := lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, tabs, statusBar)
}
