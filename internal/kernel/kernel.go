// Package kernel holds the per-topic numeric models driving the play
// phases. A kernel is advanced by a host-owned timer while the module is
// simulating and is otherwise inert; it never schedules anything itself.
package kernel

import (
	"math"
	"time"
)

// ParamSpec declares one user-adjustable control input.
type ParamSpec struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Initial float64
}

// Clamp returns v forced into the parameter's range.
func (p ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.Initial
	}
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Metric is one render-ready derived quantity.
type Metric struct {
	Name  string
	Label string
	Unit  string
	Value float64
}

// Status is a pure snapshot derived from parameters and internal state.
// It is recomputed on demand and never cached by callers.
type Status struct {
	Metrics    []Metric
	Alert      bool
	AlertLabel string
}

// Metric returns the named metric value.
func (s Status) Metric(name string) (float64, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

// finite reports whether every metric in s holds a usable number.
func (s Status) finite() bool {
	for _, m := range s.Metrics {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return false
		}
	}
	return true
}

// Kernel is the capability interface shared by all topic models.
type Kernel interface {
	// Specs returns the declared control inputs, in display order.
	Specs() []ParamSpec

	// SetParam clamps value to the declared range and stores it.
	// Unknown names are ignored.
	SetParam(name string, value float64)

	// Param returns the current value of a control input, or 0 for an
	// unknown name.
	Param(name string) float64

	// Tick advances internal state by dtMs milliseconds of simulated time.
	Tick(dtMs float64)

	// Status derives the render-ready snapshot. The result is always
	// finite; when a guard fails the last good snapshot is returned.
	Status() Status

	// Reset restores initial state and parameter values.
	Reset()

	// TickInterval is the period the host should drive Tick at.
	// Zero means the kernel is stateless and needs no timer.
	TickInterval() time.Duration
}

// Numeric floors shared by the kernels. Divisions and logarithms are the
// two places a slider at its extreme can take a formula out of range.
const (
	minDenominator = 1e-9
	minLogArg      = 1e-6
)

// safeDiv divides with a floored denominator.
func safeDiv(num, den float64) float64 {
	if den < minDenominator && den > -minDenominator {
		if den < 0 {
			den = -minDenominator
		} else {
			den = minDenominator
		}
	}
	return num / den
}

// safeLog10 floors its argument above zero before taking the log.
func safeLog10(v float64) float64 {
	if v < minLogArg {
		v = minLogArg
	}
	return math.Log10(v)
}

// guard returns next when all its metrics are finite, otherwise last.
// Kernels call this on every Status derivation so a failed floor can
// never leak NaN or Inf to the host.
func guard(next Status, last Status) Status {
	if next.finite() {
		return next
	}
	return last
}

// paramSet is the common storage for declared parameters.
type paramSet struct {
	specs  []ParamSpec
	values map[string]float64
}

func newParamSet(specs []ParamSpec) paramSet {
	ps := paramSet{specs: specs, values: make(map[string]float64, len(specs))}
	for _, s := range specs {
		ps.values[s.Name] = s.Initial
	}
	return ps
}

func (ps paramSet) set(name string, v float64) {
	for _, s := range ps.specs {
		if s.Name == name {
			ps.values[name] = s.Clamp(v)
			return
		}
	}
}

func (ps paramSet) get(name string) float64 {
	return ps.values[name]
}

func (ps paramSet) reset() {
	for _, s := range ps.specs {
		ps.values[s.Name] = s.Initial
	}
}

func (ps paramSet) specList() []ParamSpec {
	out := make([]ParamSpec, len(ps.specs))
	copy(out, ps.specs)
	return out
}
