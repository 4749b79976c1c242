package sim

import (
	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
)

// Skier is the player avatar. Its horizontal position is fixed on screen;
// the world scrolls underneath. Y is the feet offset from the ground
// baseline: 0 on the ground, negative while airborne.
type Skier struct {
	X     float64
	Width float64

	Y     float64
	VY    float64
	Speed float64

	Jumping  bool
	Ducking  bool
	DuckLeft int

	// AnimPhase is cosmetic pose progress derived from speed. Collision and
	// rhythm logic never read it.
	AnimPhase float64

	height     float64
	duckHeight float64
	headOffset float64
	duckTicks  int

	gravity     float64
	jumpImpulse float64
}

// NewSkier builds a skier from config, standing at the ground baseline.
func NewSkier(cfg config.SkierConfig, phys config.PhysicsConfig) Skier {
	return Skier{
		X:           cfg.X,
		Width:       cfg.Width,
		height:      cfg.Height,
		duckHeight:  cfg.DuckHeight,
		headOffset:  cfg.HeadOffset,
		duckTicks:   cfg.DuckTicks,
		gravity:     phys.Gravity,
		jumpImpulse: phys.JumpImpulse,
	}
}

// Reset restores the standing pose at the ground baseline.
func (sk *Skier) Reset() {
	sk.Y = 0
	sk.VY = 0
	sk.Jumping = false
	sk.Ducking = false
	sk.DuckLeft = 0
	sk.AnimPhase = 0
}

// Jump launches the skier. Refused while already jumping or while ducking:
// at most one of the two poses is ever active.
func (sk *Skier) Jump() bool {
	if sk.Jumping || sk.Ducking {
		return false
	}
	sk.Jumping = true
	sk.VY = sk.jumpImpulse
	return true
}

// Duck tucks the skier for a fixed number of ticks, reducing collision
// height. Refused while jumping or already ducking.
func (sk *Skier) Duck() bool {
	if sk.Ducking || sk.Jumping {
		return false
	}
	sk.Ducking = true
	sk.DuckLeft = sk.duckTicks
	return true
}

// Integrate advances one tick of vertical motion and pose timers.
func (sk *Skier) Integrate() {
	if sk.Jumping {
		sk.Y += sk.VY
		sk.VY += sk.gravity
		if sk.Y >= 0 {
			sk.Y = 0
			sk.VY = 0
			sk.Jumping = false
		}
	}

	if sk.Ducking {
		sk.DuckLeft--
		if sk.DuckLeft <= 0 {
			sk.DuckLeft = 0
			sk.Ducking = false
		}
	}

	sk.AnimPhase += sk.Speed * 0.35
}

// Height returns the current collision height for the active pose.
func (sk *Skier) Height() float64 {
	if sk.Ducking {
		return sk.duckHeight
	}
	return sk.height
}

// HeadY returns the head point tested against bridge decks while ducking:
// a fixed small offset below the top of the duck pose.
func (sk *Skier) HeadY() float64 {
	return sk.Y - sk.duckHeight + sk.headOffset
}

// Bounds returns the collision rectangle for the current pose.
func (sk *Skier) Bounds() core.Rect {
	h := sk.Height()
	return core.NewRect(sk.X, sk.Y-h, sk.Width, h)
}
