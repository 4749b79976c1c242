package sim

import "github.com/slopetap/slopetap/internal/core"

// ObstacleKind tags the obstacle variant. Each kind has its own collision
// rule and its own escape pose: jump over a fallen skier, duck under a
// bridge.
type ObstacleKind int

const (
	ObstacleFallenSkier ObstacleKind = iota
	ObstacleBridge
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleFallenSkier:
		return "fallen_skier"
	case ObstacleBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// DeckSpectator is decorative: someone leaning on the bridge railing.
// Owned by its bridge and culled with it, never independently.
type DeckSpectator struct {
	Offset float64 // position along the span
	Phase  float64 // animation phase
}

// Obstacle is a course hazard scrolling toward the skier. X is its position
// on the scroll axis in viewport coordinates (skier-relative screen space);
// the world cursor remains the separate scoring metric. Only X, Width and
// Clearance affect collision; everything else is render-only.
type Obstacle struct {
	Kind  ObstacleKind
	X     float64
	Width float64

	// Fallen-skier fields.
	Height float64
	Pose   int     // sprawl sprite index
	Tilt   float64 // cosmetic ski angle

	// Bridge fields.
	Clearance float64 // gap height under the deck
	Crowd     []DeckSpectator
}

// GroundRect returns the ground-anchored collision rectangle for a
// fallen-skier obstacle.
func (o Obstacle) GroundRect() core.Rect {
	return core.NewRect(o.X, -o.Height, o.Width, o.Height)
}

// Span returns the horizontal extent used for bridge overlap tests.
func (o Obstacle) Span() core.Rect {
	return core.NewRect(o.X, 0, o.Width, 1)
}

// Spectator is one decorative crowd member.
type Spectator struct {
	BobPhase float64
	Flag     bool
}

// SpectatorGroup is a decorative cluster beside the piste. Groups sit at a
// large lateral offset out of the skier's travel lane, so they never collide;
// they exist solely for the renderer. Members share the group's lifecycle.
type SpectatorGroup struct {
	X          float64 // scroll-axis position, same coordinates as obstacles
	Side       core.Side
	LaneOffset float64 // rows away from the travel lane
	Members    []Spectator
	Campfire   bool
	Tent       bool
}
