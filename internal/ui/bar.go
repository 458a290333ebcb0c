package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Percent rounds a 0..1 rate to a whole percentage.
func Percent(rate float64) int {
	return int(rate*100 + 0.5)
}

// Bar draws a static progress bar of the given width. The percentage is
// left to the caller.
func Bar(rate float64, width int, fill, empty lipgloss.Color) string {
	p := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	p.EmptyColor = string(empty)
	return p.ViewAs(min(max(rate, 0), 1))
}
