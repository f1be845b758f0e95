package kernel

import (
	"math"
	"testing"
)

func TestSeek_RotationalLatency7200(t *testing.T) {
	k := NewSeek()
	k.SetParam("rpm", 7200)

	got, ok := k.Status().Metric("rotational_latency_ms")
	if !ok {
		t.Fatal("rotational_latency_ms metric missing")
	}
	if math.Abs(got-4.1667) > 0.01 {
		t.Errorf("rotational latency = %.4f ms, want ≈4.17", got)
	}
}

func TestSeek_SequentialAlwaysFasterThanRandom(t *testing.T) {
	for _, rpm := range []float64{5400, 7200, 10000, 15000} {
		k := NewSeek()
		k.SetParam("rpm", rpm)

		k.SetParam("sequential", 0)
		random, _ := k.Status().Metric("seek_ms")

		k.SetParam("sequential", 1)
		sequential, _ := k.Status().Metric("seek_ms")

		if sequential >= random {
			t.Errorf("rpm %.0f: sequential seek %.2f >= random seek %.2f", rpm, sequential, random)
		}
	}
}

func TestSeek_IOPSInverseOfAccessTime(t *testing.T) {
	k := NewSeek()
	k.SetParam("rpm", 15000)
	st := k.Status()
	access, _ := st.Metric("access_ms")
	iops, _ := st.Metric("iops")
	if math.Abs(iops-1000.0/access) > 0.01 {
		t.Errorf("iops = %.2f, want %.2f", iops, 1000.0/access)
	}
}

func TestSeek_HeadRampFixedStep(t *testing.T) {
	k := NewSeek()
	k.SetParam("target_track", 90) // start at 50, distance 40

	ticks := 0
	for k.Seeking() && ticks < 100 {
		k.Tick(10)
		ticks++
	}
	if k.Seeking() {
		t.Fatal("head never settled")
	}
	// 40 units at a fixed 4-unit step, snapping inside the final unit.
	if ticks != 10 {
		t.Errorf("settled after %d ticks, want 10", ticks)
	}
	if k.HeadPos() != 90 {
		t.Errorf("head pos = %.1f, want 90", k.HeadPos())
	}
}

func TestSeek_HeadSettlesAtEveryDistance(t *testing.T) {
	// Distances that are not multiples of the step used to leave the head
	// straddling the target (50→60 bounced 58→62→58 forever); every
	// residue must now land exactly.
	for d := 1; d <= 20; d++ {
		k := NewSeek()
		target := 50 + float64(d)
		k.SetParam("target_track", target)

		ticks := 0
		for k.Seeking() && ticks < 50 {
			k.Tick(10)
			ticks++
		}
		if k.Seeking() {
			t.Errorf("distance %d: head never settled, pos=%.1f", d, k.HeadPos())
			continue
		}
		if k.HeadPos() != target {
			t.Errorf("distance %d: head pos = %.1f, want %.1f", d, k.HeadPos(), target)
		}
		want := int(math.Ceil(float64(d) / headStep))
		if ticks != want {
			t.Errorf("distance %d: settled after %d ticks, want %d", d, ticks, want)
		}
	}
}

func TestSeek_HeadSettlesAtFractionalTarget(t *testing.T) {
	// Exact numeric entry can command any in-range track, not just slider
	// multiples.
	k := NewSeek()
	k.SetParam("target_track", 52.5)

	ticks := 0
	for k.Seeking() && ticks < 50 {
		k.Tick(10)
		ticks++
	}
	if k.Seeking() {
		t.Fatalf("head never settled: pos=%.1f", k.HeadPos())
	}
	if k.HeadPos() != 52.5 {
		t.Errorf("head pos = %.2f, want 52.5", k.HeadPos())
	}
	if got := k.Status(); got.Alert {
		t.Error("SEEKING alert still latched after settling")
	}
}

func TestSeek_HeadStepIndependentOfDt(t *testing.T) {
	a := NewSeek()
	b := NewSeek()
	a.SetParam("target_track", 0)
	b.SetParam("target_track", 0)

	a.Tick(10)
	b.Tick(500) // larger dt must not move the head further

	if a.HeadPos() != b.HeadPos() {
		t.Errorf("head moved differently for different dt: %.1f vs %.1f", a.HeadPos(), b.HeadPos())
	}
}

func TestSeek_ParamClamping(t *testing.T) {
	k := NewSeek()
	k.SetParam("rpm", 1)
	if got := k.Param("rpm"); got != 5400 {
		t.Errorf("rpm clamped to %.0f, want 5400", got)
	}
	k.SetParam("rpm", 1e9)
	if got := k.Param("rpm"); got != 15000 {
		t.Errorf("rpm clamped to %.0f, want 15000", got)
	}
	k.SetParam("no_such_param", 42) // ignored, no panic
}

func TestSeek_StatusAlwaysFinite(t *testing.T) {
	k := NewSeek()
	k.SetParam("rpm", 0) // clamps to min; division guards hold regardless
	for _, m := range k.Status().Metrics {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			t.Errorf("metric %s is not finite: %v", m.Name, m.Value)
		}
	}
}

func TestSeek_Reset(t *testing.T) {
	k := NewSeek()
	k.SetParam("target_track", 100)
	for i := 0; i < 5; i++ {
		k.Tick(10)
	}
	k.Reset()
	if k.HeadPos() != 50 {
		t.Errorf("head pos after reset = %.1f, want 50", k.HeadPos())
	}
	if k.Param("rpm") != 7200 {
		t.Errorf("rpm after reset = %.0f, want 7200", k.Param("rpm"))
	}
}
