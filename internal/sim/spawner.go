package sim

import (
	"math"
	"math/rand"

	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
)

// Spawner owns the active entity set: it is the only component that creates
// or removes obstacles and spectator groups. The collision engine reads the
// set, never mutates it.
type Spawner struct {
	cfg  *config.Config
	diff *config.DifficultyManager
	rng  *rand.Rand

	viewportW float64

	obstacles []Obstacle
	groups    []SpectatorGroup

	obstacleTimer int
	groupTimer    int
}

// NewSpawner creates a spawner with the given RNG. The RNG is injected so
// spawn sequences are reproducible under a fixed seed.
func NewSpawner(cfg *config.Config, diff *config.DifficultyManager, rng *rand.Rand, viewportW float64) *Spawner {
	return &Spawner{
		cfg:       cfg,
		diff:      diff,
		rng:       rng,
		viewportW: viewportW,
		obstacles: make([]Obstacle, 0, 8),
		groups:    make([]SpectatorGroup, 0, 8),
	}
}

// Reset clears all entities and spawn timers.
func (sp *Spawner) Reset() {
	sp.obstacles = sp.obstacles[:0]
	sp.groups = sp.groups[:0]
	sp.obstacleTimer = 0
	sp.groupTimer = 0
}

// SetViewportWidth updates the spawn frontier after a resize.
func (sp *Spawner) SetViewportWidth(w float64) {
	sp.viewportW = w
}

// Advance runs one tick of the scroll-and-spawn system: drift every entity
// left, cull what fell behind, and fire the two independent spawn timers.
// The drift rate scales with skier speed but is deliberately decoupled from
// the world-cursor distance metric used for scoring.
func (sp *Spawner) Advance(speed float64, score, ticks int) {
	drift := sp.cfg.World.BaseDrift + speed*sp.cfg.World.DriftFactor

	for i := range sp.obstacles {
		sp.obstacles[i].X -= drift
	}
	for i := range sp.groups {
		sp.groups[i].X -= drift
	}

	// Obstacles get a tight cull margin: they must survive long enough to be
	// collided with, but no longer. Spectator groups are decorative and get a
	// generous window so they never pop out mid-screen.
	kept := sp.obstacles[:0]
	for _, o := range sp.obstacles {
		if o.X+o.Width > -sp.cfg.World.ObstacleCullMargin {
			kept = append(kept, o)
		}
	}
	sp.obstacles = kept

	keptGroups := sp.groups[:0]
	for _, g := range sp.groups {
		if g.X > -sp.cfg.World.GroupCullMargin {
			keptGroups = append(keptGroups, g)
		}
	}
	sp.groups = keptGroups

	sp.obstacleTimer++
	if sp.obstacleTimer >= sp.diff.ObstacleInterval(sp.cfg.Obstacles.SpawnEveryTicks, score, ticks) {
		sp.obstacleTimer = 0
		sp.spawnObstacle()
	}

	sp.groupTimer++
	if sp.groupTimer >= sp.cfg.Spectators.SpawnEveryTicks {
		sp.groupTimer = 0
		sp.spawnGroup()
	}
}

// spawnObstacle places one obstacle past the visible frontier with a random
// forward offset. Variant choice is a weighted coin flip.
func (sp *Spawner) spawnObstacle() {
	oc := sp.cfg.Obstacles
	x := sp.viewportW + sp.rng.Float64()*oc.SpawnOffsetMax

	if sp.rng.Float64() < oc.BridgeChance {
		sp.obstacles = append(sp.obstacles, sp.makeBridge(x))
		return
	}
	sp.obstacles = append(sp.obstacles, sp.makeFallenSkier(x))
}

func (sp *Spawner) makeFallenSkier(x float64) Obstacle {
	oc := sp.cfg.Obstacles
	return Obstacle{
		Kind:   ObstacleFallenSkier,
		X:      x,
		Width:  oc.FallenWidth,
		Height: oc.FallenHeight,
		Pose:   sp.rng.Intn(oc.FallenPoses),
		Tilt:   (sp.rng.Float64()*2 - 1) * 0.6,
	}
}

func (sp *Spawner) makeBridge(x float64) Obstacle {
	oc := sp.cfg.Obstacles
	clearance := oc.BridgeMinClearance + sp.rng.Float64()*(oc.BridgeMaxClearance-oc.BridgeMinClearance)

	crowd := make([]DeckSpectator, sp.rng.Intn(oc.BridgeCrowdMax+1))
	for i := range crowd {
		crowd[i] = DeckSpectator{
			Offset: sp.rng.Float64() * oc.BridgeWidth,
			Phase:  sp.rng.Float64() * 2 * math.Pi,
		}
	}

	return Obstacle{
		Kind:      ObstacleBridge,
		X:         x,
		Width:     oc.BridgeWidth,
		Clearance: clearance,
		Crowd:     crowd,
	}
}

// spawnGroup places one decorative spectator cluster on a random side of the
// piste, well outside the travel lane.
func (sp *Spawner) spawnGroup() {
	sc := sp.cfg.Spectators
	x := sp.viewportW + sp.rng.Float64()*sp.cfg.Obstacles.SpawnOffsetMax

	side := core.SideLeft
	if sp.rng.Intn(2) == 1 {
		side = core.SideRight
	}

	count := sc.MinCount + sp.rng.Intn(sc.MaxCount-sc.MinCount+1)
	members := make([]Spectator, count)
	for i := range members {
		members[i] = Spectator{
			BobPhase: sp.rng.Float64() * 2 * math.Pi,
			Flag:     sp.rng.Float64() < 0.3,
		}
	}

	sp.groups = append(sp.groups, SpectatorGroup{
		X:          x,
		Side:       side,
		LaneOffset: sc.LaneOffsetMin + sp.rng.Float64()*(sc.LaneOffsetMax-sc.LaneOffsetMin),
		Members:    members,
		Campfire:   sp.rng.Float64() < sc.CampfireChance,
		Tent:       sp.rng.Float64() < sc.TentChance,
	})
}

// Obstacles returns the active obstacle set.
func (sp *Spawner) Obstacles() []Obstacle {
	return sp.obstacles
}

// Groups returns the active spectator groups.
func (sp *Spawner) Groups() []SpectatorGroup {
	return sp.groups
}
