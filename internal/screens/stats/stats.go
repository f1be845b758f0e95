package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/screen"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
	"github.com/npradeep/joule/internal/ui/layout"
	"github.com/npradeep/joule/internal/ui/theme"
)

type topicStats struct {
	Topic    topic.Topic
	Stats    store.TopicQuizStats
	Attempts []store.QuizAttemptRecord
}

type statsLoadedMsg struct {
	Topics []topicStats
	Err    error
}

// StatsScreen shows quiz history and best scores per topic.
type StatsScreen struct {
	registry  *topic.Registry
	eventRepo store.EventRepo

	topics   []topicStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen over the full topic registry.
func New(registry *topic.Registry, eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{
		registry:  registry,
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var out []topicStats
		for _, tp := range s.registry.All() {
			st, err := s.eventRepo.QuizStats(ctx, tp.ID)
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			attempts, err := s.eventRepo.QueryQuizAttempts(ctx, store.QueryOpts{
				TopicID: tp.ID,
				Limit:   10,
			})
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			out = append(out, topicStats{Topic: tp, Stats: st, Attempts: attempts})
		}
		return statsLoadedMsg{Topics: out}
	}
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Attempts"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.topics = msg.Topics
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.topics)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ts := range s.topics {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		status := lipgloss.NewStyle().Foreground(theme.TextDim).Render("not attempted")
		if ts.Stats.Attempts > 0 {
			mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			if ts.Stats.Passed {
				mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			}
			status = fmt.Sprintf("%s  best %d/10  %d attempt%s",
				mark, ts.Stats.BestScore, ts.Stats.Attempts, plural(ts.Stats.Attempts))
		}

		line := fmt.Sprintf("%s%-28s %s", prefix, ts.Topic.Title, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if len(ts.Attempts) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No quiz attempts yet")))
				b.WriteString("\n")
			}
			for _, a := range ts.Attempts {
				verdict := lipgloss.NewStyle().Foreground(theme.Error).Render("fail")
				if a.Passed {
					verdict = lipgloss.NewStyle().Foreground(theme.Success).Render("pass")
				}
				attemptLine := fmt.Sprintf("    %s  %d/%d  %s",
					a.Timestamp.Format("Jan 02 15:04"), a.Score, a.Total, verdict)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(attemptLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
