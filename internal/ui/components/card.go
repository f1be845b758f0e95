package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for lesson content.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// CardStat is one headline figure on an application card.
type CardStat struct {
	Label string
	Value string
}

// ApplicationCard renders a real-world application card for the
// transfer screen: title, body text, stat rows, and a viewed marker.
func ApplicationCard(title, description string, stats []CardStat, viewed, selected bool, cw int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		titleStyle = titleStyle.Foreground(theme.Primary)
	}
	mark := "○"
	if viewed {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	b.WriteString(mark + " " + titleStyle.Render(title) + "\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw - 6).
		Render(description))
	b.WriteString("\n")

	for _, s := range stats {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+s.Label+": ") +
			theme.MetricValue.Render(s.Value) + "\n")
	}

	borderColor := theme.Border
	if selected {
		borderColor = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}

// ContentCard wraps prose content in a rounded-border card.
func ContentCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
