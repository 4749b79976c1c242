package sim

import (
	"testing"

	"github.com/slopetap/slopetap/internal/config"
)

func fallenAtSkier(sk *Skier) Obstacle {
	cfg := config.Default().Obstacles
	return Obstacle{
		Kind:   ObstacleFallenSkier,
		X:      sk.X,
		Width:  cfg.FallenWidth,
		Height: cfg.FallenHeight,
	}
}

func bridgeAtSkier(sk *Skier, clearance float64) Obstacle {
	cfg := config.Default().Obstacles
	return Obstacle{
		Kind:      ObstacleBridge,
		X:         sk.X,
		Width:     cfg.BridgeWidth,
		Clearance: clearance,
	}
}

func TestFallenSkierHitsGroundedSkier(t *testing.T) {
	sk := testSkier()
	o := fallenAtSkier(&sk)

	if !collides(&sk, o) {
		t.Error("grounded skier overlapping a fallen skier should collide")
	}
}

func TestFallenSkierClearedByJump(t *testing.T) {
	sk := testSkier()
	sk.Jump()
	o := fallenAtSkier(&sk)

	if collides(&sk, o) {
		t.Error("jumping skier should clear a fallen skier")
	}
}

func TestFallenSkierNotClearedByDuck(t *testing.T) {
	sk := testSkier()
	sk.Duck()
	o := fallenAtSkier(&sk)

	if !collides(&sk, o) {
		t.Error("ducking gives no protection against a fallen skier")
	}
}

func TestFallenSkierOutOfRangeIsSafe(t *testing.T) {
	sk := testSkier()
	o := fallenAtSkier(&sk)
	o.X = sk.X + sk.Width + 50

	if collides(&sk, o) {
		t.Error("obstacle far ahead of the skier should not collide")
	}
}

func TestBridgeRequiresDuck(t *testing.T) {
	sk := testSkier()
	// Clearance below standing height but above the duck head point.
	o := bridgeAtSkier(&sk, sk.Height()-0.5)

	if !collides(&sk, o) {
		t.Error("standing skier under a low bridge should collide")
	}

	sk.Duck()
	if collides(&sk, o) {
		t.Error("ducking skier should clear this bridge")
	}
}

func TestBridgeNotClearedByJump(t *testing.T) {
	sk := testSkier()
	o := bridgeAtSkier(&sk, sk.Height()-0.5)

	sk.Jump()
	sk.Integrate() // rise into the deck
	if !collides(&sk, o) {
		t.Error("jumping into a bridge deck must collide")
	}
}

func TestBridgeHeadPointRule(t *testing.T) {
	sk := testSkier()
	sk.Duck()
	head := -sk.HeadY() // height of the head point above the ground

	tests := []struct {
		name      string
		clearance float64
		hit       bool
	}{
		{"clearance above head point", head + 0.5, false},
		{"clearance exactly at head point", head, true},
		{"clearance below head point", head - 0.3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := bridgeAtSkier(&sk, tc.clearance)
			if got := collides(&sk, o); got != tc.hit {
				t.Errorf("clearance %v: collides = %v, expected %v", tc.clearance, got, tc.hit)
			}
		})
	}
}

func TestBridgeTallClearanceIsSafeStanding(t *testing.T) {
	sk := testSkier()
	o := bridgeAtSkier(&sk, sk.Height()+1)

	if collides(&sk, o) {
		t.Error("bridge taller than the standing skier should be safe")
	}
}

func TestFirstHitShortCircuits(t *testing.T) {
	sk := testSkier()
	obstacles := []Obstacle{
		fallenAtSkier(&sk),
		bridgeAtSkier(&sk, 0.1), // would also hit
	}

	hit, ok := firstHit(&sk, obstacles)
	if !ok {
		t.Fatal("expected a collision")
	}
	if hit.Kind != ObstacleFallenSkier {
		t.Errorf("first hit = %v, expected the first obstacle in the set", hit.Kind)
	}
}
