package sim

import (
	"testing"

	"github.com/slopetap/slopetap/internal/config"
)

func testSkier() Skier {
	cfg := config.Default()
	return NewSkier(cfg.Skier, cfg.Physics)
}

func TestSkierJumpAndLanding(t *testing.T) {
	sk := testSkier()

	if !sk.Jump() {
		t.Fatal("jump from the ground should succeed")
	}
	if !sk.Jumping {
		t.Fatal("jumping flag not set")
	}
	if sk.VY >= 0 {
		t.Fatalf("jump velocity = %v, expected negative (up)", sk.VY)
	}

	// Integrate until landing; must terminate and clamp to the baseline.
	for i := 0; i < 200 && sk.Jumping; i++ {
		sk.Integrate()
		if sk.Jumping && sk.Y > 0 {
			t.Fatalf("airborne skier below the baseline: y=%v", sk.Y)
		}
	}

	if sk.Jumping {
		t.Fatal("skier never landed")
	}
	if sk.Y != 0 || sk.VY != 0 {
		t.Errorf("landing did not clamp state: y=%v vy=%v", sk.Y, sk.VY)
	}
}

func TestSkierNoDoubleJump(t *testing.T) {
	sk := testSkier()

	sk.Jump()
	vyAfterFirst := sk.VY
	sk.Integrate()

	if sk.Jump() {
		t.Error("double jump was allowed")
	}
	if sk.VY == vyAfterFirst {
		t.Error("integration should have changed velocity; test setup is wrong")
	}
}

func TestSkierDuckLifecycle(t *testing.T) {
	cfg := config.Default()
	sk := testSkier()

	normal := sk.Height()
	if !sk.Duck() {
		t.Fatal("duck from standing should succeed")
	}
	if sk.Height() != cfg.Skier.DuckHeight {
		t.Errorf("ducking height = %v, expected %v", sk.Height(), cfg.Skier.DuckHeight)
	}

	// The duck clears itself exactly duck_ticks later, with no further input.
	for i := 0; i < cfg.Skier.DuckTicks-1; i++ {
		sk.Integrate()
		if !sk.Ducking {
			t.Fatalf("duck cleared early at tick %d", i+1)
		}
	}
	sk.Integrate()
	if sk.Ducking {
		t.Error("duck did not auto-clear after duck_ticks")
	}
	if sk.Height() != normal {
		t.Errorf("height after duck = %v, expected %v", sk.Height(), normal)
	}
}

func TestSkierPoseExclusivity(t *testing.T) {
	sk := testSkier()

	// Duck blocks jump.
	sk.Duck()
	if sk.Jump() {
		t.Error("jump allowed while ducking")
	}

	// Jump blocks duck.
	sk = testSkier()
	sk.Jump()
	if sk.Duck() {
		t.Error("duck allowed while jumping")
	}
	if sk.Jumping && sk.Ducking {
		t.Error("both poses active at once")
	}
}

func TestSkierRepeatDuckIgnored(t *testing.T) {
	sk := testSkier()

	sk.Duck()
	for i := 0; i < 5; i++ {
		sk.Integrate()
	}
	remaining := sk.DuckLeft

	if sk.Duck() {
		t.Error("duck re-trigger was allowed mid-duck")
	}
	if sk.DuckLeft != remaining {
		t.Errorf("duck re-trigger reset the countdown: %d -> %d", remaining, sk.DuckLeft)
	}
}

func TestSkierBoundsFollowPose(t *testing.T) {
	sk := testSkier()

	standing := sk.Bounds()
	if standing.H != sk.Height() || standing.Bottom() != 0 {
		t.Errorf("standing bounds %+v do not sit on the baseline", standing)
	}

	sk.Duck()
	ducked := sk.Bounds()
	if ducked.H >= standing.H {
		t.Errorf("duck bounds height %v not reduced from %v", ducked.H, standing.H)
	}

	sk = testSkier()
	sk.Jump()
	sk.Integrate()
	airborne := sk.Bounds()
	if airborne.Bottom() >= 0 {
		t.Errorf("airborne bounds bottom = %v, expected above baseline", airborne.Bottom())
	}
}
