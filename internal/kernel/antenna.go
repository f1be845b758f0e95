package kernel

import (
	"math"
	"time"
)

// Antenna model constants.
const (
	speedOfLight = 299792458.0 // m/s

	// beamwidthK is the usual parabolic-dish approximation constant:
	// HPBW ≈ k / (D/λ) degrees.
	beamwidthK = 70.0
)

// Antenna models a parabolic aperture: gain and beamwidth from diameter,
// frequency and efficiency, plus a sinc²-pattern value at an off-axis
// angle. The model is stateless per tick; every quantity is derived
// directly from the parameters.
type Antenna struct {
	params paramSet
	last   Status
}

// NewAntenna creates the aperture/gain kernel with default parameters.
func NewAntenna() *Antenna {
	k := &Antenna{
		params: newParamSet([]ParamSpec{
			{Name: "diameter_m", Label: "Dish diameter", Unit: "m", Min: 0.5, Max: 30, Step: 0.5, Initial: 3},
			{Name: "frequency_ghz", Label: "Frequency", Unit: "GHz", Min: 1, Max: 30, Step: 1, Initial: 10},
			{Name: "efficiency", Label: "Aperture efficiency", Unit: "", Min: 0.4, Max: 0.8, Step: 0.05, Initial: 0.6},
			{Name: "offaxis_deg", Label: "Off-axis angle", Unit: "°", Min: 0, Max: 10, Step: 0.25, Initial: 0},
		}),
	}
	k.last = k.derive()
	return k
}

func (k *Antenna) Specs() []ParamSpec             { return k.params.specList() }
func (k *Antenna) SetParam(name string, v float64) { k.params.set(name, v) }
func (k *Antenna) Param(name string) float64       { return k.params.get(name) }

// Tick is a no-op; the kernel has no continuous state.
func (k *Antenna) Tick(dtMs float64) {}

// TickInterval returns zero: the host needs no timer for this kernel.
func (k *Antenna) TickInterval() time.Duration { return 0 }

func (k *Antenna) derive() Status {
	diameter := k.params.get("diameter_m")
	freqHz := k.params.get("frequency_ghz") * 1e9
	efficiency := k.params.get("efficiency")
	offAxisDeg := k.params.get("offaxis_deg")

	wavelength := safeDiv(speedOfLight, freqHz)
	dOverLambda := safeDiv(diameter, wavelength)

	gainLinear := math.Pi * dOverLambda * math.Pi * dOverLambda * efficiency
	gainDbi := 10 * safeLog10(gainLinear)
	beamwidthDeg := safeDiv(beamwidthK, dOverLambda)

	// Normalized sinc² pattern at the off-axis angle. The argument is
	// floored so the on-axis case stays at exactly 0 dB and the log never
	// sees zero.
	u := math.Pi * dOverLambda * math.Sin(offAxisDeg*math.Pi/180)
	pattern := 1.0
	if math.Abs(u) > minDenominator {
		s := math.Sin(u) / u
		pattern = s * s
	}
	patternDb := 10 * safeLog10(pattern)

	offBeam := offAxisDeg > beamwidthDeg/2

	return Status{
		Metrics: []Metric{
			{Name: "wavelength_cm", Label: "Wavelength", Unit: "cm", Value: wavelength * 100},
			{Name: "d_over_lambda", Label: "Diameter in wavelengths", Unit: "λ", Value: dOverLambda},
			{Name: "gain_dbi", Label: "Gain", Unit: "dBi", Value: gainDbi},
			{Name: "beamwidth_deg", Label: "Beamwidth", Unit: "°", Value: beamwidthDeg},
			{Name: "pattern_db", Label: "Off-axis level", Unit: "dB", Value: patternDb},
		},
		Alert:      offBeam,
		AlertLabel: "OFF BEAM",
	}
}

func (k *Antenna) Status() Status {
	s := guard(k.derive(), k.last)
	k.last = s
	return s
}

func (k *Antenna) Reset() {
	k.params.reset()
	k.last = k.derive()
}
