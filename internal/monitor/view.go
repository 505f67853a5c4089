package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for _, st := range m.Statuses() {
		b.WriteString(m.renderRow(st))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("pingdeck")

	if !m.probed {
		waiting := SubheaderStyle.Render(
			fmt.Sprintf(" | %d targets | waiting for first probe ", len(m.Statuses())))
		return HeaderStyle.Render(title+waiting) + m.spin.View()
	}

	lastUpdate := m.SecondsSinceUpdate()
	var updateText string
	switch lastUpdate {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}

	stats := SubheaderStyle.Render(fmt.Sprintf(" | %d targets | %d healthy | updated %s",
		len(m.Statuses()), m.HealthyCount(), updateText))

	return HeaderStyle.Render(title + stats)
}

// renderRow renders one target: status glyph, name, latency, staleness
// marker, and the colored timeline.
func (m Model) renderRow(st Status) string {
	glyph := TierStyle(st.Tier).Render(st.Tier.Glyph())
	name := TargetNameStyle.Render(padName(st.Name, 16))

	var latency string
	if st.HasLatency {
		latency = LatencyStyle.Render(padLatency(FormatLatency(st.Latency)))
	} else if st.UpdatedAt.IsZero() {
		latency = StaleStyle.Render(padLatency("--"))
	} else {
		latency = TierStyle(TierTimeout).Render(padLatency("TIMEOUT"))
	}

	stale := ""
	if !st.UpdatedAt.IsZero() {
		age := time.Since(st.UpdatedAt)
		if age > StaleAfter {
			stale = StaleStyle.Render(fmt.Sprintf(" (%ds ago)", int(age.Seconds())))
		}
	}

	timeline := m.renderTimeline(st.History)
	span := StaleStyle.Render(fmt.Sprintf(" [%s]", FormatWindow(m.window)))

	return fmt.Sprintf("%s %s %s %s%s%s", glyph, name, latency, timeline, span, stale)
}

// renderTimeline colors each cell of the bucketed history.
func (m Model) renderTimeline(samples []Sample) string {
	cells := Timeline(samples, m.graphWidth, m.window, time.Now())

	var b strings.Builder
	for _, c := range cells {
		if !c.Filled {
			b.WriteString(BlankCellStyle.Render(BlankGlyph))
			continue
		}
		b.WriteString(TierStyle(c.Tier).Render(c.Tier.Glyph()))
	}
	return b.String()
}

// renderLegend renders the tier key.
func (m Model) renderLegend() string {
	parts := []string{
		TierStyle(TierGood).Render(GlyphGood) + LegendStyle.Render(" <50ms"),
		TierStyle(TierFair).Render(GlyphFair) + LegendStyle.Render(" <150ms"),
		TierStyle(TierPoor).Render(GlyphPoor) + LegendStyle.Render(" <500ms"),
		TierStyle(TierTimeout).Render(GlyphTimeout) + LegendStyle.Render(" timeout"),
	}
	return LegendStyle.Render("  ") + strings.Join(parts, LegendStyle.Render("   "))
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("pingdeck help"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"q / ctrl+c", "quit"},
		{"?", "toggle this help"},
		{"esc", "close help"},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			TargetNameStyle.Render(padName(r[0], 12)),
			SubheaderStyle.Render(r[1])))
	}

	b.WriteString("\n")
	b.WriteString(SubheaderStyle.Render(fmt.Sprintf(
		"Each row buckets the last %s into %d columns; the newest tier in a bucket wins.",
		FormatWindow(m.window), m.graphWidth)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n")

	return b.String()
}

// FormatLatency formats a round-trip time for display.
func FormatLatency(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// FormatWindow formats the retention window compactly, e.g. "10m".
func FormatWindow(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	if d >= time.Minute && d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// padName pads or truncates a label to a fixed display width.
func padName(name string, width int) string {
	runes := []rune(name)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return name + strings.Repeat(" ", width-len(runes))
}

// padLatency right-aligns the latency column.
func padLatency(s string) string {
	const width = 7
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
