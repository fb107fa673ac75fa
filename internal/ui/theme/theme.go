package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named set of UI colors.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default clinical night palette.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#60A5FA"), // Sky blue
	Secondary: lipgloss.Color("#2DD4BF"), // Teal
	Accent:    lipgloss.Color("#A78BFA"), // Violet
	Success:   lipgloss.Color("#4ADE80"), // Green
	Warning:   lipgloss.Color("#FBBF24"), // Amber
	Error:     lipgloss.Color("#F87171"), // Red
	Text:      lipgloss.Color("#E2E8F0"), // Slate 200
	TextDim:   lipgloss.Color("#94A3B8"), // Slate 400
	Bg:        lipgloss.Color("#0F172A"), // Slate 900
	BgCard:    lipgloss.Color("#1E293B"), // Slate 800
	Border:    lipgloss.Color("#334155"), // Slate 700
}

// Light mirrors Dark for bright terminals.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#2563EB"), // Blue 600
	Secondary: lipgloss.Color("#0D9488"), // Teal 600
	Accent:    lipgloss.Color("#7C3AED"), // Violet 600
	Success:   lipgloss.Color("#16A34A"), // Green 600
	Warning:   lipgloss.Color("#D97706"), // Amber 600
	Error:     lipgloss.Color("#DC2626"), // Red 600
	Text:      lipgloss.Color("#1E293B"), // Slate 800
	TextDim:   lipgloss.Color("#64748B"), // Slate 500
	Bg:        lipgloss.Color("#F8FAFC"), // Slate 50
	BgCard:    lipgloss.Color("#E2E8F0"), // Slate 200
	Border:    lipgloss.Color("#CBD5E1"), // Slate 300
}

// Active colors. Apply rewrites them along with every style below.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Answered   lipgloss.Style
	Invalid    lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var current Palette

func init() {
	Apply(Dark)
}

// Current returns the active palette.
func Current() Palette {
	return current
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return current.Name == Dark.Name
}

// Toggle switches between the dark and light palettes and returns the new one.
func Toggle() Palette {
	if IsDark() {
		Apply(Light)
	} else {
		Apply(Dark)
	}
	return current
}

// Set applies the palette with the given name.
func Set(name string) error {
	switch name {
	case Dark.Name:
		Apply(Dark)
	case Light.Name:
		Apply(Light)
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

// Apply makes p the active palette.
func Apply(p Palette) {
	current = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Answered = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Bg).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
