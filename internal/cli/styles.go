// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// GreenColor marks a return that is ready for review.
	GreenColor = lipgloss.Color("#6BCB77")
	// AmberColor marks a return that needs attention.
	AmberColor = lipgloss.Color("#FFD93D")
	// RedColor marks a return with significant gaps.
	RedColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// GreenStyle formats ready indicators.
	GreenStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	// AmberStyle formats needs-attention indicators.
	AmberStyle = lipgloss.NewStyle().
			Foreground(AmberColor)

	// RedStyle formats significant-gap indicators.
	RedStyle = lipgloss.NewStyle().
			Foreground(RedColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	CompleteIcon = "✓"
	PartialIcon  = "◐"
	MissingIcon  = "✗"
	DocIcon      = "📄"
	BulbIcon     = "💡"
	WarnIcon     = "⚠️"
)

// ColorStyle returns the lipgloss style for a traffic-light status.
func ColorStyle(status model.ColorStatus) lipgloss.Style {
	switch status {
	case model.ColorGreen:
		return GreenStyle
	case model.ColorAmber:
		return AmberStyle
	default:
		return RedStyle
	}
}

// StatusIcon returns the icon for a checklist item status.
func StatusIcon(status model.ItemStatus) string {
	switch status {
	case model.StatusComplete:
		return GreenStyle.Render(CompleteIcon)
	case model.StatusPartial:
		return AmberStyle.Render(PartialIcon)
	case model.StatusMissing:
		return RedStyle.Render(MissingIcon)
	default:
		return SubtleStyle.Render("-")
	}
}
