package sim

import (
	"testing"
	"time"

	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
)

func testRhythmConfig() config.RhythmConfig {
	return config.Default().Rhythm
}

func TestRhythmStartsAtFloor(t *testing.T) {
	r := NewRhythm(testRhythmConfig())

	if r.Quality() != QualityFloor {
		t.Errorf("initial quality = %v, expected %v", r.Quality(), QualityFloor)
	}
}

func TestRhythmFirstPushIsNotJudged(t *testing.T) {
	r := NewRhythm(testRhythmConfig())

	beat := r.Push(core.SideLeft, 0)
	if beat != BeatNone {
		t.Errorf("first push judged as %v, expected BeatNone", beat)
	}
	if r.Quality() != QualityFloor {
		t.Errorf("quality changed on first push: %v", r.Quality())
	}
}

func TestRhythmPerfectAlternationReachesCap(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)
	target := time.Duration(cfg.TargetIntervalMs) * time.Millisecond

	side := core.SideLeft
	at := time.Duration(0)
	r.Push(side, at)

	prev := r.Quality()
	for i := 0; i < 40; i++ {
		at += target
		if side == core.SideLeft {
			side = core.SideRight
		} else {
			side = core.SideLeft
		}

		beat := r.Push(side, at)
		if beat != BeatGood {
			t.Fatalf("perfect alternation %d judged %v, expected BeatGood", i, beat)
		}
		if r.Quality() < prev {
			t.Fatalf("quality fell from %v to %v on a good beat", prev, r.Quality())
		}
		if r.Quality() < 1.0 && r.Quality() <= prev {
			t.Fatalf("quality did not strictly increase below the cap: %v -> %v", prev, r.Quality())
		}
		prev = r.Quality()
	}

	if r.Quality() != 1.0 {
		t.Errorf("quality after sustained perfect rhythm = %v, expected cap 1.0", r.Quality())
	}
}

func TestRhythmSameSideRepeatsNeverChangeQuality(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	at := time.Duration(0)
	r.Push(core.SideLeft, at)
	for i := 0; i < 10; i++ {
		at += 350 * time.Millisecond
		beat := r.Push(core.SideLeft, at)
		if beat != BeatNone {
			t.Errorf("same-side push %d judged %v, expected BeatNone", i, beat)
		}
		if r.Quality() != QualityFloor {
			t.Errorf("same-side push %d changed quality to %v", i, r.Quality())
		}
	}
}

func TestRhythmBadBeatPenalty(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	// Build some quality first.
	at := time.Duration(0)
	r.Push(core.SideLeft, at)
	at += 350 * time.Millisecond
	r.Push(core.SideRight, at)
	before := r.Quality()

	// Wildly late alternation.
	at += 5 * time.Second
	beat := r.Push(core.SideLeft, at)
	if beat != BeatBad {
		t.Fatalf("late alternation judged %v, expected BeatBad", beat)
	}
	if r.Quality() >= before {
		t.Errorf("quality did not fall on a bad beat: %v -> %v", before, r.Quality())
	}
}

func TestRhythmQualityNeverLeavesBounds(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	// Hammer bad beats: quality must floor at 0.1, not go below.
	at := time.Duration(0)
	side := core.SideLeft
	for i := 0; i < 50; i++ {
		r.Push(side, at)
		if side == core.SideLeft {
			side = core.SideRight
		} else {
			side = core.SideLeft
		}
		at += 3 * time.Second
	}
	if r.Quality() < QualityFloor {
		t.Errorf("quality fell below floor: %v", r.Quality())
	}

	// Hammer good beats: quality must cap at 1.0.
	r.Reset()
	r.Push(core.SideLeft, 0)
	at = 0
	side = core.SideRight
	for i := 0; i < 100; i++ {
		at += 350 * time.Millisecond
		r.Push(side, at)
		if side == core.SideLeft {
			side = core.SideRight
		} else {
			side = core.SideLeft
		}
	}
	if r.Quality() > 1.0 {
		t.Errorf("quality exceeded cap: %v", r.Quality())
	}
}

func TestRhythmToleranceShrinksWithQuality(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	loose := r.Tolerance()

	r.Push(core.SideLeft, 0)
	at := time.Duration(0)
	side := core.SideRight
	for i := 0; i < 20; i++ {
		at += 350 * time.Millisecond
		r.Push(side, at)
		if side == core.SideLeft {
			side = core.SideRight
		} else {
			side = core.SideLeft
		}
	}

	tight := r.Tolerance()
	if tight >= loose {
		t.Errorf("tolerance did not shrink as quality rose: %v -> %v", loose, tight)
	}

	min := time.Duration(cfg.MinToleranceMs) * time.Millisecond
	if tight < min {
		t.Errorf("tolerance %v fell below the configured minimum %v", tight, min)
	}
}

func TestRhythmPassiveDecay(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	// Build quality, then stall.
	r.Push(core.SideLeft, 0)
	at := time.Duration(0)
	side := core.SideRight
	for i := 0; i < 10; i++ {
		at += 350 * time.Millisecond
		r.Push(side, at)
		if side == core.SideLeft {
			side = core.SideRight
		} else {
			side = core.SideLeft
		}
	}
	elevated := r.Quality()

	// Within the acceptance window: no decay yet.
	r.Decay(at + 100*time.Millisecond)
	if r.Quality() != elevated {
		t.Errorf("decay applied inside the acceptance window: %v -> %v", elevated, r.Quality())
	}

	// Well past it: decay ticks the quality down.
	now := at + 2*time.Second
	for i := 0; i < 60; i++ {
		r.Decay(now)
		now += 16 * time.Millisecond
	}
	if r.Quality() >= elevated {
		t.Errorf("stalled quality did not decay: %v -> %v", elevated, r.Quality())
	}

	// Decay forever: quality floors, never undershoots.
	for i := 0; i < 10000; i++ {
		r.Decay(now)
		now += 16 * time.Millisecond
	}
	if r.Quality() != QualityFloor {
		t.Errorf("long stall quality = %v, expected floor %v", r.Quality(), QualityFloor)
	}
}

func TestRhythmSpeedFloor(t *testing.T) {
	cfg := testRhythmConfig()
	r := NewRhythm(cfg)

	maxSpeed := 1.1
	speed := r.Speed(maxSpeed)
	if speed != maxSpeed*SpeedFloorFrac {
		t.Errorf("floored speed = %v, expected %v", speed, maxSpeed*SpeedFloorFrac)
	}
	if speed <= 0 {
		t.Error("speed must never reach zero")
	}
}
