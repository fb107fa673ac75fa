package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// Badge renders a small colored pill, e.g. a specialty label.
func Badge(label string, fg color.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Padding(0, 1).
		Render(label)
}

// InlineBadge renders a borderless bracketed label for single-line layouts.
func InlineBadge(label string, fg color.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Render("[" + label + "]")
}

// SpecialtyColor picks the badge color for a specialty name.
func SpecialtyColor(specialty string) color.Color {
	switch specialty {
	case "Cardiology":
		return theme.Error
	case "Dermatology":
		return theme.Warning
	case "Neurology", "Psychiatry":
		return theme.Accent
	case "Orthopedics", "Pediatrics", "Gynecology":
		return theme.Secondary
	default:
		return theme.Primary
	}
}

// StatusColor picks the badge color for a case status.
func StatusColor(status string) color.Color {
	switch status {
	case "ACCEPTED":
		return theme.Success
	case "REJECTED":
		return theme.Error
	default:
		return theme.Warning
	}
}
