package components

import (
	"github.com/guptarohit/asciigraph"

	"github.com/npradeep/joule/internal/ui/theme"
)

const sparklineCapacity = 120

// Sparkline keeps a rolling window of samples from one simulation metric
// and plots it as a small line chart.
type Sparkline struct {
	Label   string
	samples []float64
}

// NewSparkline creates an empty chart for the named metric.
func NewSparkline(label string) *Sparkline {
	return &Sparkline{
		Label:   label,
		samples: make([]float64, 0, sparklineCapacity),
	}
}

// Push appends a sample, dropping the oldest once the window is full.
func (s *Sparkline) Push(v float64) {
	if len(s.samples) >= sparklineCapacity {
		copy(s.samples, s.samples[1:])
		s.samples = s.samples[:len(s.samples)-1]
	}
	s.samples = append(s.samples, v)
}

// Reset clears the window, typically on kernel reset.
func (s *Sparkline) Reset() {
	s.samples = s.samples[:0]
}

// Len reports how many samples the window holds.
func (s *Sparkline) Len() int { return len(s.samples) }

// View plots the window. With fewer than two samples there is nothing
// worth charting and it returns an empty string.
func (s *Sparkline) View(width, height int) string {
	if len(s.samples) < 2 {
		return ""
	}
	if height < 3 {
		height = 3
	}
	plotWidth := width - 10
	if plotWidth < 20 {
		plotWidth = 20
	}

	plot := asciigraph.Plot(s.samples,
		asciigraph.Width(plotWidth),
		asciigraph.Height(height),
		asciigraph.Caption(s.Label),
	)
	return theme.Subtitle.Render(plot)
}
