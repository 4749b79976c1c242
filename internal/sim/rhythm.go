// Package sim implements the skiing simulation: the pole-push rhythm model,
// skier physics, procedural course spawning, collision rules, and the session
// state machine. It has no UI dependencies; callers inject a seeded RNG and
// supply monotonic timestamps, so every run is reproducible in tests.
package sim

import (
	"math"
	"time"

	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
)

// Rhythm quality bounds. Quality never leaves [QualityFloor, 1] and speed
// never drops below SpeedFloorFrac of the top speed, so the skier always
// moves forward.
const (
	QualityFloor   = 0.1
	SpeedFloorFrac = 0.2
)

// Beat classifies a pole push for HUD feedback.
type Beat int

const (
	BeatNone Beat = iota // same-side repeat or first push, no timing judgment
	BeatGood
	BeatBad
)

// Rhythm converts alternating left/right pushes plus timestamps into a
// quality scalar that drives skier speed. The tolerance window around the
// target interval shrinks as quality rises: holding top speed demands a
// tighter beat.
type Rhythm struct {
	cfg      config.RhythmConfig
	lastAt   time.Duration
	lastSide core.Side
	quality  float64
}

// NewRhythm creates a rhythm tracker at the quality floor.
func NewRhythm(cfg config.RhythmConfig) Rhythm {
	return Rhythm{cfg: cfg, quality: QualityFloor}
}

// Reset returns the tracker to its initial state.
func (r *Rhythm) Reset() {
	r.lastAt = 0
	r.lastSide = core.SideNone
	r.quality = QualityFloor
}

// Push records a directional input. Only an alternation (side differs from
// the previously recorded side) is judged against the target interval; a
// same-side repeat and the very first push just update the record.
func (r *Rhythm) Push(side core.Side, at time.Duration) Beat {
	prev := r.lastSide
	prevAt := r.lastAt
	r.lastSide = side
	r.lastAt = at

	if prev == core.SideNone || side == prev {
		return BeatNone
	}

	delta := at - prevAt
	target := msToDuration(r.cfg.TargetIntervalMs)
	tol := r.Tolerance()

	if delta >= target-tol && delta <= target+tol {
		r.quality = math.Min(1.0, r.quality+r.cfg.Gain)
		return BeatGood
	}
	r.quality = math.Max(QualityFloor, r.quality-r.cfg.Gain/2)
	return BeatBad
}

// Decay applies the passive per-tick quality loss once the player has stalled
// past the current acceptance window. Slower than the bad-beat penalty, but it
// guarantees a stalled skier's speed comes down.
func (r *Rhythm) Decay(now time.Duration) {
	window := msToDuration(r.cfg.TargetIntervalMs) + r.Tolerance()
	if now-r.lastAt <= window {
		return
	}
	r.quality = math.Max(QualityFloor, r.quality-r.cfg.DecayPerTick)
}

// Quality returns the current rhythm quality in [QualityFloor, 1].
func (r *Rhythm) Quality() float64 {
	return r.quality
}

// Tolerance returns the current acceptance window around the target interval.
func (r *Rhythm) Tolerance() time.Duration {
	base := msToDuration(r.cfg.BaseToleranceMs)
	min := msToDuration(r.cfg.MinToleranceMs)
	return base - time.Duration(float64(base-min)*r.quality)
}

// Speed derives the skier's horizontal speed from quality. Floored so
// forward motion never fully stops.
func (r *Rhythm) Speed(maxSpeed float64) float64 {
	return maxSpeed * math.Max(r.quality, SpeedFloorFrac)
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
