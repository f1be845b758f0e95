package kernel

import (
	"math"
	"time"
)

// Seek model constants.
const (
	seekTickInterval = 10 * time.Millisecond

	// headStep is the fixed per-tick head movement in track units. The
	// head ramps linearly toward its target and snaps once within one
	// step; settle time therefore depends on tick count, not distance.
	headStep = 4.0

	// sequentialSeekMs is the near-zero track-to-track seek used when the
	// workload is sequential.
	sequentialSeekMs = 0.5

	trackMin = 0.0
	trackMax = 100.0
)

// seekTimeMs maps spindle speed to a typical average random-seek time.
// Faster drives carry faster actuators, so seek time falls with rpm.
func seekTimeMs(rpm float64) float64 {
	switch {
	case rpm >= 15000:
		return 3.5
	case rpm >= 10000:
		return 4.7
	case rpm >= 7200:
		return 8.5
	default:
		return 12.0
	}
}

// Seek models disk access latency: rotational delay from spindle speed
// plus actuator seek time, with a discrete head position chasing a
// commanded target track.
type Seek struct {
	params paramSet

	headPos float64
	last    Status
}

// NewSeek creates the access-latency kernel with default parameters.
func NewSeek() *Seek {
	k := &Seek{
		params: newParamSet([]ParamSpec{
			{Name: "rpm", Label: "Spindle speed", Unit: "RPM", Min: 5400, Max: 15000, Step: 600, Initial: 7200},
			{Name: "sequential", Label: "Sequential workload", Unit: "", Min: 0, Max: 1, Step: 1, Initial: 0},
			{Name: "target_track", Label: "Target track", Unit: "", Min: trackMin, Max: trackMax, Step: 5, Initial: 50},
		}),
		headPos: 50,
	}
	k.last = k.derive()
	return k
}

func (k *Seek) Specs() []ParamSpec             { return k.params.specList() }
func (k *Seek) SetParam(name string, v float64) { k.params.set(name, v) }
func (k *Seek) Param(name string) float64       { return k.params.get(name) }
func (k *Seek) TickInterval() time.Duration     { return seekTickInterval }

// Tick steps the head toward the target track by a fixed amount,
// regardless of dt. This is a deliberate ramp, kept instead of a
// time-scaled approach so the head always settles within a small fixed
// number of ticks. The final partial step lands exactly on the target;
// stepping past it would leave the head straddling the target forever.
func (k *Seek) Tick(dtMs float64) {
	target := k.params.get("target_track")
	diff := target - k.headPos
	if math.Abs(diff) <= headStep {
		k.headPos = target
		return
	}
	if diff > 0 {
		k.headPos += headStep
	} else {
		k.headPos -= headStep
	}
}

// HeadPos returns the current head position in track units.
func (k *Seek) HeadPos() float64 {
	return k.headPos
}

// Seeking reports whether the head has not yet settled on its target.
func (k *Seek) Seeking() bool {
	return k.headPos != k.params.get("target_track")
}

func (k *Seek) derive() Status {
	rpm := k.params.get("rpm")
	sequential := k.params.get("sequential") >= 0.5

	// Half a revolution on average before the sector comes around:
	// (60/rpm)*1000/2.
	rotationalMs := safeDiv(30000.0, rpm)

	seekMs := seekTimeMs(rpm)
	if sequential {
		seekMs = sequentialSeekMs
	}

	accessMs := seekMs + rotationalMs
	iops := safeDiv(1000.0, accessMs)

	return Status{
		Metrics: []Metric{
			{Name: "rotational_latency_ms", Label: "Rotational latency", Unit: "ms", Value: rotationalMs},
			{Name: "seek_ms", Label: "Seek time", Unit: "ms", Value: seekMs},
			{Name: "access_ms", Label: "Total access time", Unit: "ms", Value: accessMs},
			{Name: "iops", Label: "Random IOPS", Unit: "", Value: iops},
			{Name: "head_pos", Label: "Head position", Unit: "trk", Value: k.headPos},
		},
		Alert:      k.Seeking(),
		AlertLabel: "SEEKING",
	}
}

func (k *Seek) Status() Status {
	s := guard(k.derive(), k.last)
	k.last = s
	return s
}

func (k *Seek) Reset() {
	k.params.reset()
	k.headPos = 50
	k.last = k.derive()
}
