package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/predict"
	"github.com/npradeep/joule/internal/topic"
	"github.com/npradeep/joule/internal/ui/components"
	"github.com/npradeep/joule/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	cw := components.ContentWidth(width)

	var body string
	switch s.mod.Phase() {
	case phase.Hook:
		body = s.renderProse(s.mod.Topic().Hook, cw)
	case phase.Predict, phase.TwistPredict:
		body = s.renderPredict(cw)
	case phase.Play, phase.TwistPlay:
		body = s.renderPlay(cw, height)
	case phase.Review:
		body = s.renderReview(s.mod.Topic().Review, s.mod.Topic().Predict, s.mod.Prediction(), cw)
	case phase.TwistReview:
		body = s.renderReview(s.mod.Topic().TwistReview, s.mod.Topic().TwistPredict, s.mod.TwistPrediction(), cw)
	case phase.Transfer:
		body = s.renderTransfer(cw)
	case phase.Test:
		body = s.renderTest(cw)
	case phase.Mastery:
		body = s.renderMastery(cw)
	}

	header := theme.Title.Width(cw).Render(s.mod.PhaseLabel())
	block := header + "\n\n" + body
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderProse shows a text-only phase inside a card.
func (s *LessonScreen) renderProse(text string, cw int) string {
	card := components.ContentCard(text, cw)
	hint := theme.Hint.Width(cw).Align(lipgloss.Center).Render("Press Enter to continue")
	return card + "\n\n" + hint
}

func (s *LessonScreen) renderPredict(cw int) string {
	c := *s.activeChoice()
	var b strings.Builder
	b.WriteString(components.ContentCard(c.View(), cw))

	if s.activePrediction().HasAnswered() {
		b.WriteString("\n\n")
		if c.IsCorrect() {
			b.WriteString(theme.Correct.Width(cw).Align(lipgloss.Center).Render("Good instinct. Let's see it in action."))
		} else {
			b.WriteString(theme.Incorrect.Width(cw).Align(lipgloss.Center).Render("Hold that thought. The simulation will show you."))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("Press Enter to continue"))
	}
	return b.String()
}

func (s *LessonScreen) renderPlay(cw, height int) string {
	tp := s.mod.Topic()
	hint := tp.PlayHint
	if s.mod.Phase() == phase.TwistPlay {
		hint = tp.TwistPlayHint
	}

	var b strings.Builder
	b.WriteString(theme.Body.Width(cw).Render(hint))
	b.WriteString("\n\n")

	for i := range s.sliders {
		b.WriteString(s.sliders[i].View(cw))
		b.WriteString("\n")
	}
	if s.editingParam {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Set " + s.sliders[s.sliderIdx].Spec.Label + ": "))
		b.WriteString(s.paramInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderMetrics(cw))

	if s.spark != nil && s.spark.Len() > 1 {
		chartHeight := 6
		if height < 28 {
			chartHeight = 4
		}
		b.WriteString("\n")
		b.WriteString(s.spark.View(cw, chartHeight))
	}

	return b.String()
}

// renderMetrics shows the kernel's derived quantities, with the alert
// label when the kernel raises one.
func (s *LessonScreen) renderMetrics(cw int) string {
	st := s.mod.Status()

	var rows []string
	for _, m := range st.Metrics {
		rows = append(rows,
			theme.MetricUnit.Render(m.Label+"  ")+
				theme.MetricValue.Render(fmt.Sprintf("%.2f", m.Value))+
				theme.MetricUnit.Render(" "+m.Unit))
	}
	block := strings.Join(rows, "\n")
	if st.Alert {
		block += "\n\n" + theme.Alert.Render("▲ "+st.AlertLabel)
	}
	return components.ContentCard(block, cw)
}

func (s *LessonScreen) renderReview(text string, spec topic.Prediction, tr *predict.Tracker, cw int) string {
	var b strings.Builder

	if tr.HasAnswered() {
		verdict := theme.Incorrect.Render("Your guess missed")
		if tr.IsCorrect(spec.CorrectID) {
			verdict = theme.Correct.Render("Your guess was right")
		}
		b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(verdict))
		b.WriteString("\n\n")
	}

	b.WriteString(components.ContentCard(text, cw))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("Press Enter to continue"))
	return b.String()
}

func (s *LessonScreen) renderTransfer(cw int) string {
	tp := s.mod.Topic()
	g := s.mod.Gallery()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render("Where this shows up in the real world"))
	b.WriteString("\n")
	read := components.NewProgressBar("Read", float64(g.ViewedCount())/float64(len(tp.Applications)), true, cw)
	b.WriteString(read.View())
	b.WriteString("\n\n")

	for i, app := range tp.Applications {
		stats := make([]components.CardStat, len(app.Stats))
		for j, st := range app.Stats {
			stats[j] = components.CardStat{Label: st.Label, Value: st.Value}
		}
		b.WriteString(components.ApplicationCard(
			app.Title, app.Description, stats,
			g.IsViewed(i), i == s.cardIdx, cw))
		b.WriteString("\n")
	}

	if g.IsComplete(len(tp.Applications)) {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Width(cw).Align(lipgloss.Center).Render("All read — press N for the quiz"))
	}
	return b.String()
}

func (s *LessonScreen) renderTest(cw int) string {
	q := s.mod.Quiz()
	questions := s.mod.Topic().Questions
	question := questions[s.qIdx]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("Question %d of %d  ·  %d answered",
			s.qIdx+1, len(questions), q.AnsweredCount())))
	b.WriteString("\n\n")

	var card strings.Builder
	if question.Scenario != "" {
		card.WriteString(theme.Hint.Render(question.Scenario))
		card.WriteString("\n\n")
	}
	card.WriteString(theme.Body.Bold(true).Render(question.Prompt))
	card.WriteString("\n\n")

	answered := q.Answer(s.qIdx)
	correctID := question.CorrectID()
	for i, opt := range question.Options {
		prefix := "  "
		if !q.Submitted() && i == s.optIdx {
			prefix = "▸ "
		}
		marker := " "
		if opt.ID == answered {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, strings.ToUpper(opt.ID), opt.Label)

		var style lipgloss.Style
		switch {
		case q.Submitted() && opt.ID == correctID:
			style = theme.Correct
		case q.Submitted() && opt.ID == answered:
			style = theme.Incorrect
		case q.Submitted():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == s.optIdx:
			style = theme.Selected
		case opt.ID == answered:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		card.WriteString(style.Render(line))
		card.WriteString("\n")
	}

	if q.Submitted() && question.Explanation != "" {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Render(question.Explanation))
	}

	b.WriteString(components.ContentCard(strings.TrimRight(card.String(), "\n"), cw))
	b.WriteString("\n\n")

	switch {
	case q.Submitted():
		verdict := theme.Incorrect
		word := "Not yet"
		if q.Passed() {
			verdict = theme.Correct
			word = "Passed"
		}
		b.WriteString(verdict.Width(cw).Align(lipgloss.Center).Render(
			fmt.Sprintf("%s — %d/%d (need %d)", word, q.Score(), len(questions), q.PassThreshold())))
	case q.AllAnswered():
		b.WriteString(theme.Selected.Width(cw).Align(lipgloss.Center).Render("All answered — press S to submit"))
	default:
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("Enter records your answer"))
	}
	return b.String()
}

func (s *LessonScreen) renderMastery(cw int) string {
	q := s.mod.Quiz()
	tp := s.mod.Topic()

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("★ " + tp.Title + " ★"))
	b.WriteString("\n\n")

	var lines []string
	lines = append(lines, fmt.Sprintf("Quiz score      %d/%d", q.Score(), len(tp.Questions)))
	firstRight := "no"
	if s.mod.Prediction().IsCorrect(tp.Predict.CorrectID) {
		firstRight = "yes"
	}
	twistRight := "no"
	if s.mod.TwistPrediction().IsCorrect(tp.TwistPredict.CorrectID) {
		twistRight = "yes"
	}
	lines = append(lines, "First prediction  "+firstRight)
	lines = append(lines, "Twist prediction  "+twistRight)
	b.WriteString(components.ContentCard(strings.Join(lines, "\n"), cw))
	b.WriteString("\n\n")

	b.WriteString(theme.Correct.Width(cw).Align(lipgloss.Center).Render("Lesson complete"))
	b.WriteString("\n\n")
	done := components.NewButton("Return home", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, done.View()))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this lesson?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}
