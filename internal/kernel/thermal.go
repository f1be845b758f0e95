package kernel

import (
	"time"
)

// Thermal model constants. The smoothing factor and hysteresis margin are
// tuned topic literals; they are part of the observable behavior and must
// not be re-derived.
const (
	thermalTickInterval = 50 * time.Millisecond

	ambientC          = 25.0
	criticalC         = 110.0
	throttleThreshold = 95.0
	hysteresisMargin  = 10.0
	smoothingFactor   = 0.05

	// power = voltage^2 * clock * (workload/100) * dynamicScale + static
	dynamicScale      = 17.0
	staticBaselineW   = 5.0
	leakagePerDegree  = 0.1
	nominalVoltage    = 1.25
	referenceCapacity = 100.0

	clockFloorGHz = 1.0
	voltageFloor  = 0.9

	clockDecay   = 0.95
	voltageDecay = 0.98
)

// Thermal models a processor package heating under load. Temperature
// exponentially approaches a target set by dissipated power and cooling
// capacity; a hysteretic throttle state machine sits on top, bleeding
// clock and voltage down while hot.
type Thermal struct {
	params paramSet

	temperatureC float64
	clockGHz     float64
	voltage      float64
	throttling   bool
	last         Status
}

// NewThermal creates the thermal-feedback kernel with default parameters.
func NewThermal() *Thermal {
	k := &Thermal{
		params: newParamSet([]ParamSpec{
			{Name: "workload", Label: "Workload", Unit: "%", Min: 0, Max: 100, Step: 5, Initial: 50},
			{Name: "cooling_capacity", Label: "Cooling capacity", Unit: "W", Min: 10, Max: 200, Step: 10, Initial: 100},
			{Name: "clock_ghz", Label: "Clock speed", Unit: "GHz", Min: 1.0, Max: 5.0, Step: 0.2, Initial: 3.0},
		}),
	}
	k.resetState()
	k.last = k.derive()
	return k
}

func (k *Thermal) resetState() {
	k.temperatureC = ambientC
	k.clockGHz = k.params.get("clock_ghz")
	k.voltage = nominalVoltage
	k.throttling = false
}

func (k *Thermal) Specs() []ParamSpec             { return k.params.specList() }
func (k *Thermal) Param(name string) float64       { return k.params.get(name) }
func (k *Thermal) TickInterval() time.Duration     { return thermalTickInterval }

func (k *Thermal) SetParam(name string, v float64) {
	k.params.set(name, v)
}

// IsThrottling reports the hysteretic throttle state.
func (k *Thermal) IsThrottling() bool {
	return k.throttling
}

// Temperature returns the current package temperature in Celsius.
func (k *Thermal) Temperature() float64 {
	return k.temperatureC
}

// power computes dissipation at the current effective clock and voltage.
// Static leakage grows with temperature.
func (k *Thermal) power() float64 {
	workload := k.params.get("workload")
	dynamic := k.voltage * k.voltage * k.clockGHz * (workload / 100.0) * dynamicScale
	static := staticBaselineW + leakagePerDegree*(k.temperatureC-ambientC)
	return dynamic + static
}

// Tick advances the thermal state by one step. The smoothing factor is
// calibrated to the fixed tick period, so dtMs is unused.
func (k *Thermal) Tick(dtMs float64) {
	// Hysteresis: enter throttling at the threshold, leave only below
	// threshold minus the margin. Inside the dead-band the state holds,
	// preventing oscillation.
	if k.temperatureC >= throttleThreshold {
		k.throttling = true
	} else if k.temperatureC < throttleThreshold-hysteresisMargin {
		k.throttling = false
	}

	commanded := k.params.get("clock_ghz")
	if k.throttling {
		k.clockGHz *= clockDecay
		if k.clockGHz < clockFloorGHz {
			k.clockGHz = clockFloorGHz
		}
		k.voltage *= voltageDecay
		if k.voltage < voltageFloor {
			k.voltage = voltageFloor
		}
	} else {
		// Recover toward the commanded operating point at the same
		// smoothing rate the temperature uses.
		k.clockGHz += (commanded - k.clockGHz) * smoothingFactor
		k.voltage += (nominalVoltage - k.voltage) * smoothingFactor
	}

	cooling := k.params.get("cooling_capacity")
	thermalResistance := safeDiv(1.0, cooling/referenceCapacity)
	targetC := ambientC + k.power()*thermalResistance

	k.temperatureC += (targetC - k.temperatureC) * smoothingFactor
	if k.temperatureC > criticalC {
		k.temperatureC = criticalC
	}
	if k.temperatureC < ambientC {
		k.temperatureC = ambientC
	}
}

func (k *Thermal) derive() Status {
	cooling := k.params.get("cooling_capacity")
	thermalResistance := safeDiv(1.0, cooling/referenceCapacity)
	targetC := ambientC + k.power()*thermalResistance
	if targetC > criticalC {
		targetC = criticalC
	}

	return Status{
		Metrics: []Metric{
			{Name: "temperature_c", Label: "Temperature", Unit: "°C", Value: k.temperatureC},
			{Name: "power_w", Label: "Power draw", Unit: "W", Value: k.power()},
			{Name: "clock_ghz", Label: "Effective clock", Unit: "GHz", Value: k.clockGHz},
			{Name: "voltage_v", Label: "Core voltage", Unit: "V", Value: k.voltage},
			{Name: "target_c", Label: "Equilibrium temp", Unit: "°C", Value: targetC},
		},
		Alert:      k.throttling,
		AlertLabel: "THROTTLING",
	}
}

func (k *Thermal) Status() Status {
	s := guard(k.derive(), k.last)
	k.last = s
	return s
}

func (k *Thermal) Reset() {
	k.params.reset()
	k.resetState()
	k.last = k.derive()
}
