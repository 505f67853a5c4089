package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorGood    = lipgloss.Color("#00D75F") // green
	ColorFair    = lipgloss.Color("#FFD700") // yellow
	ColorPoor    = lipgloss.Color("#FF5F5F") // red
	ColorTimeout = lipgloss.Color("#870000") // dark red

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4B4")
	ColorTextMuted     = lipgloss.Color("#585858")
	ColorAccent        = lipgloss.Color("#00AFFF")
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	SubheaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	TargetNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LatencyStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	StaleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	BlankCellStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// BlankGlyph is rendered for timeline columns with no sample.
const BlankGlyph = "·"

// TierColor returns the display color for a tier.
func TierColor(t Tier) lipgloss.Color {
	switch t {
	case TierGood:
		return ColorGood
	case TierFair:
		return ColorFair
	case TierPoor:
		return ColorPoor
	default:
		return ColorTimeout
	}
}

// TierStyle returns a style with the tier's foreground color.
func TierStyle(t Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(t))
}
