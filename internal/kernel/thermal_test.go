package kernel

import (
	"math"
	"testing"
)

func tickFor(k *Thermal, simulatedMs float64) {
	steps := int(simulatedMs / 50)
	for i := 0; i < steps; i++ {
		k.Tick(50)
	}
}

func TestThermal_StartsAtAmbient(t *testing.T) {
	k := NewThermal()
	if k.Temperature() != ambientC {
		t.Errorf("initial temperature = %.1f, want %.1f", k.Temperature(), ambientC)
	}
	if k.IsThrottling() {
		t.Error("should not throttle at ambient")
	}
}

func TestThermal_HeavyLoadPoorCoolingHitsCeiling(t *testing.T) {
	k := NewThermal()
	k.SetParam("workload", 100)
	k.SetParam("cooling_capacity", 10)

	tickFor(k, 5000)

	if got := k.Temperature(); got != criticalC {
		t.Errorf("temperature after 5s = %.1f, want clamped at %.1f", got, criticalC)
	}
	if !k.IsThrottling() {
		t.Error("expected throttling at the critical ceiling")
	}
	st := k.Status()
	if !st.Alert || st.AlertLabel != "THROTTLING" {
		t.Errorf("status alert = %v %q, want THROTTLING", st.Alert, st.AlertLabel)
	}
}

func TestThermal_HysteresisNoFlapping(t *testing.T) {
	k := NewThermal()
	k.temperatureC = throttleThreshold // at the threshold: enter throttling
	k.Tick(50)
	if !k.IsThrottling() {
		t.Fatal("expected throttling at threshold")
	}

	// Dip below the threshold but stay inside the dead-band: state holds.
	k.temperatureC = throttleThreshold - hysteresisMargin/2
	k.Tick(50)
	if !k.IsThrottling() {
		t.Error("throttling dropped inside the dead-band")
	}

	// Only below threshold - margin does it release.
	k.temperatureC = throttleThreshold - hysteresisMargin - 1
	k.Tick(50)
	if k.IsThrottling() {
		t.Error("throttling held below the dead-band")
	}
}

func TestThermal_ThrottlingDecaysClockAndVoltage(t *testing.T) {
	k := NewThermal()
	k.SetParam("workload", 100)
	k.SetParam("cooling_capacity", 10)

	tickFor(k, 10000)

	clock, _ := k.Status().Metric("clock_ghz")
	voltage, _ := k.Status().Metric("voltage_v")
	if clock != clockFloorGHz {
		t.Errorf("clock = %.3f GHz, want decayed to floor %.1f", clock, clockFloorGHz)
	}
	if voltage != voltageFloor {
		t.Errorf("voltage = %.3f V, want decayed to floor %.2f", voltage, voltageFloor)
	}
}

func TestThermal_LightLoadConvergesBelowThreshold(t *testing.T) {
	k := NewThermal()
	k.SetParam("workload", 20)
	k.SetParam("cooling_capacity", 200)

	tickFor(k, 20000)

	if k.Temperature() >= throttleThreshold {
		t.Errorf("temperature = %.1f, want below throttle threshold", k.Temperature())
	}
	if k.IsThrottling() {
		t.Error("should not throttle under light load with strong cooling")
	}
}

func TestThermal_TemperatureApproachMonotonic(t *testing.T) {
	k := NewThermal()
	k.SetParam("workload", 100)

	// Stay within the pre-throttle window; once the throttle engages the
	// equilibrium itself falls.
	prev := k.Temperature()
	for i := 0; i < 25; i++ {
		k.Tick(50)
		cur := k.Temperature()
		if cur < prev-1e-9 {
			t.Fatalf("tick %d: temperature fell from %.3f to %.3f while heating", i, prev, cur)
		}
		prev = cur
	}
}

func TestThermal_StatusFiniteAtExtremes(t *testing.T) {
	k := NewThermal()
	k.SetParam("cooling_capacity", -5) // clamps to min
	tickFor(k, 1000)
	for _, m := range k.Status().Metrics {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			t.Errorf("metric %s not finite: %v", m.Name, m.Value)
		}
	}
}

func TestThermal_Reset(t *testing.T) {
	k := NewThermal()
	k.SetParam("workload", 100)
	tickFor(k, 3000)
	k.Reset()
	if k.Temperature() != ambientC {
		t.Errorf("temperature after reset = %.1f, want ambient", k.Temperature())
	}
	if k.IsThrottling() {
		t.Error("throttling after reset")
	}
	if k.Param("workload") != 50 {
		t.Errorf("workload after reset = %.0f, want 50", k.Param("workload"))
	}
}
