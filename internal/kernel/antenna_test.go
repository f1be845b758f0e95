package kernel

import (
	"math"
	"testing"
)

func TestAntenna_DoublingDiameterAddsSixDb(t *testing.T) {
	k := NewAntenna()
	k.SetParam("frequency_ghz", 10)

	k.SetParam("diameter_m", 2)
	g1, _ := k.Status().Metric("gain_dbi")

	k.SetParam("diameter_m", 4)
	g2, _ := k.Status().Metric("gain_dbi")

	if math.Abs((g2-g1)-6.02) > 0.05 {
		t.Errorf("doubling diameter added %.3f dB, want ≈6.02", g2-g1)
	}
}

func TestAntenna_GainFormula(t *testing.T) {
	k := NewAntenna()
	k.SetParam("diameter_m", 3)
	k.SetParam("frequency_ghz", 10)
	k.SetParam("efficiency", 0.6)

	wavelength := speedOfLight / 10e9
	want := 10 * math.Log10(math.Pow(math.Pi*3/wavelength, 2)*0.6)

	got, _ := k.Status().Metric("gain_dbi")
	if math.Abs(got-want) > 0.01 {
		t.Errorf("gain = %.3f dBi, want %.3f", got, want)
	}
}

func TestAntenna_BeamwidthNarrowsWithDiameter(t *testing.T) {
	k := NewAntenna()
	k.SetParam("diameter_m", 1)
	wide, _ := k.Status().Metric("beamwidth_deg")
	k.SetParam("diameter_m", 10)
	narrow, _ := k.Status().Metric("beamwidth_deg")
	if narrow >= wide {
		t.Errorf("beamwidth did not narrow: %.3f° -> %.3f°", wide, narrow)
	}
}

func TestAntenna_OnAxisPatternIsZeroDb(t *testing.T) {
	k := NewAntenna()
	k.SetParam("offaxis_deg", 0)
	p, _ := k.Status().Metric("pattern_db")
	if math.Abs(p) > 1e-9 {
		t.Errorf("on-axis pattern = %.6f dB, want 0", p)
	}
	if k.Status().Alert {
		t.Error("on-axis should not flag OFF BEAM")
	}
}

func TestAntenna_OffAxisBeyondHalfBeamwidthAlerts(t *testing.T) {
	k := NewAntenna()
	k.SetParam("diameter_m", 10)
	k.SetParam("frequency_ghz", 30)
	st := k.Status()
	bw, _ := st.Metric("beamwidth_deg")

	k.SetParam("offaxis_deg", bw) // well past half the beam
	st = k.Status()
	if !st.Alert || st.AlertLabel != "OFF BEAM" {
		t.Errorf("alert = %v %q, want OFF BEAM", st.Alert, st.AlertLabel)
	}
}

func TestAntenna_PatternNeverNaN(t *testing.T) {
	k := NewAntenna()
	// Sweep the whole off-axis range at an extreme aperture; nulls in the
	// sinc pattern must stay floored, never -Inf or NaN.
	k.SetParam("diameter_m", 30)
	k.SetParam("frequency_ghz", 30)
	for deg := 0.0; deg <= 10.0; deg += 0.05 {
		k.SetParam("offaxis_deg", deg)
		for _, m := range k.Status().Metrics {
			if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
				t.Fatalf("offaxis %.2f°: metric %s not finite: %v", deg, m.Name, m.Value)
			}
		}
	}
}

func TestAntenna_TickIsNoOp(t *testing.T) {
	k := NewAntenna()
	before, _ := k.Status().Metric("gain_dbi")
	k.Tick(50)
	after, _ := k.Status().Metric("gain_dbi")
	if before != after {
		t.Error("tick changed a stateless kernel")
	}
	if k.TickInterval() != 0 {
		t.Error("stateless kernel should request no timer")
	}
}
