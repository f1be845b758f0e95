package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/ui/theme"
)

const bannerFull = `     ██╗ ██████╗ ██╗   ██╗██╗     ███████╗
     ██║██╔═══██╗██║   ██║██║     ██╔════╝
     ██║██║   ██║██║   ██║██║     █████╗
██   ██║██║   ██║██║   ██║██║     ██╔══╝
╚█████╔╝╚██████╔╝╚██████╔╝███████╗███████╗
 ╚════╝  ╚═════╝  ╚════╝  ╚══════╝╚══════╝`

const bannerCompact = "J · O · U · L · E"

const tagline = "Tiny physics lessons, straight from the lab bench"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header and footer.
	termHeight := height + 8
	compact := termHeight < 30 || width < 60

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, theme.Subtitle.Width(cw).Render(tagline))
	}
	sections = append(sections, renderProgressBar(h.passedCount, h.topicCount, cw))
	if h.updateNote != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(h.updateNote))
	}
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderBanner returns the block-letter title or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := bannerFull
	if compact {
		text = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderProgressBar shows how many topics have been passed.
func renderProgressBar(passed, total, cw int) string {
	line := fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("⚡ %d/%d PASSED", passed, total)),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d topics on the bench", total)),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}
