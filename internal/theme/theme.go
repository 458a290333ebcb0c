package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/watch"
)

// Palette is the set of colors a theme renders with.
type Palette struct {
	Bg       lipgloss.Color
	Surface  lipgloss.Color
	Surface2 lipgloss.Color
	Border   lipgloss.Color
	Hairline lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Primary  lipgloss.Color
	Chevron  lipgloss.Color
	White    lipgloss.Color
}

// Dark is the default palette.
var Dark = Palette{
	Bg:       "#0B1220",
	Surface:  "#0F1B2E",
	Surface2: "#172233",
	Border:   "#3A4352",
	Hairline: "#2A3342",
	Text:     "#FFFFFF",
	Muted:    "#9CA3AF",
	Primary:  "#4F46E5",
	Chevron:  "#5E6470",
	White:    "#FFFFFF",
}

// Light is the palette used when dark mode is off.
var Light = Palette{
	Bg:       "#F5F7FB",
	Surface:  "#FFFFFF",
	Surface2: "#EEF0F4",
	Border:   "#D5D8DF",
	Hairline: "#DCDFE5",
	Text:     "#0F172A",
	Muted:    "#5F6675",
	Primary:  "#4F46E5",
	Chevron:  "#6F7480",
	White:    "#FFFFFF",
}

// Accent colors shared by both palettes.
var (
	ColorAmber = lipgloss.Color("#F59E0B")
	ColorBlue  = lipgloss.Color("#3B82F6")
	ColorGreen = lipgloss.Color("#10B981")
	ColorRed   = lipgloss.Color("#EF4444")
)

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Palette Palette

	// Header is used for the top bar and screen titles.
	Header lipgloss.Style

	// StatusBar is used for the bottom key hint bar.
	StatusBar lipgloss.Style

	// Panel wraps cards and detail content.
	Panel lipgloss.Style

	ListItem     lipgloss.Style
	SelectedItem lipgloss.Style

	Title lipgloss.Style
	Muted lipgloss.Style
	Help  lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.White).
			Background(p.Primary).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface2).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		ListItem: lipgloss.NewStyle().
			PaddingLeft(2),
		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.Primary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Primary),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.White).
			Background(p.Primary).
			Padding(0, 1),
	}
}

// StatusStyle returns a color-coded badge style for a task status.
func StatusStyle(status model.TaskStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.StatusPending:
		return base.Foreground(ColorAmber)
	case model.StatusInProgress:
		return base.Foreground(ColorBlue)
	case model.StatusDone:
		return base.Foreground(ColorGreen)
	default:
		return base
	}
}

// PriorityStyle returns a color-coded style for a task priority.
func PriorityStyle(priority model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorAmber)
	case model.PriorityLow:
		return base.Foreground(ColorGreen)
	default:
		return base
	}
}

// Store holds the dark/light flag. The palette and styles are derived
// from it.
type Store struct {
	mu        sync.RWMutex
	dark      bool
	listeners watch.Listeners
}

// NewStore creates a theme store.
func NewStore(dark bool) *Store {
	return &Store{dark: dark}
}

// IsDark reports whether dark mode is on.
func (s *Store) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Palette returns the palette for the current mode.
func (s *Store) Palette() Palette {
	if s.IsDark() {
		return Dark
	}
	return Light
}

// Styles returns the style set for the current mode.
func (s *Store) Styles() Styles {
	return NewStyles(s.Palette())
}

// Toggle flips between dark and light.
func (s *Store) Toggle() {
	s.mu.Lock()
	s.dark = !s.dark
	s.mu.Unlock()
	s.listeners.Notify()
}

// SetDark sets the mode explicitly.
func (s *Store) SetDark(dark bool) {
	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()
	s.listeners.Notify()
}

// Subscribe registers fn to run after every change.
func (s *Store) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}
