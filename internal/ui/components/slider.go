package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/kernel"
	"github.com/npradeep/joule/internal/ui/theme"
)

// Slider adjusts one kernel parameter with the arrow keys. The value is
// always clamped to the declared range; left/right move by one step.
type Slider struct {
	Spec    kernel.ParamSpec
	Value   float64
	Focused bool
}

// NewSlider creates a slider positioned at the parameter's current value.
func NewSlider(spec kernel.ParamSpec, value float64) Slider {
	return Slider{Spec: spec, Value: spec.Clamp(value)}
}

// Update handles left/right adjustment. It reports whether the value
// changed so the caller can push it into the kernel.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	if !s.Focused {
		return s, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	prev := s.Value
	switch kmsg.String() {
	case "left", "h":
		s.Value = s.Spec.Clamp(s.Value - s.Spec.Step)
	case "right", "l":
		s.Value = s.Spec.Clamp(s.Value + s.Spec.Step)
	case "home":
		s.Value = s.Spec.Min
	case "end":
		s.Value = s.Spec.Max
	}
	return s, s.Value != prev
}

// View renders the labelled slider track.
func (s Slider) View(width int) string {
	label := s.Spec.Label
	if s.Spec.Unit != "" {
		label += " (" + s.Spec.Unit + ")"
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		labelStyle = theme.Selected
	}

	trackWidth := width - 16
	if trackWidth < 10 {
		trackWidth = 10
	}

	span := s.Spec.Max - s.Spec.Min
	frac := 0.0
	if span > 0 {
		frac = (s.Value - s.Spec.Min) / span
	}
	knob := int(frac * float64(trackWidth-1))

	var track strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == knob {
			track.WriteString("●")
		} else {
			track.WriteString("─")
		}
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.Border)
	if s.Focused {
		trackStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	}

	value := theme.MetricValue.Render(formatParam(s.Value))

	return labelStyle.Render(label) + "\n  " +
		trackStyle.Render(track.String()) + "  " + value
}

// formatParam drops trailing zeros so sliders read naturally.
func formatParam(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
