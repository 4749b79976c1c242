package sim

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// scoreDivisor converts distance to score: floor(distance / 10).
const scoreDivisor = 10

// Session owns one run of the game: skier, rhythm state, world cursor and
// the active entity set. All mutation happens through Tick and the input
// commands; everything else is read-only. A Session is single-threaded by
// contract: the platform drives it from one goroutine.
type Session struct {
	cfg  config.Config
	diff *config.DifficultyManager
	rng  *rand.Rand

	phase  Phase
	tick   uint64
	now    time.Duration
	cursor float64

	rhythm  Rhythm
	skier   Skier
	spawner *Spawner

	lastBeat Beat // most recent push judgment, for HUD feedback
	endedBy  ObstacleKind
}

// NewSession validates the config and builds a fresh session in
// PhaseNotStarted. The RNG is injected for reproducible spawn sequences;
// viewportW is the visible course width in cells.
func NewSession(cfg config.Config, viewportW float64, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("sim: rng must not be nil")
	}

	s := &Session{
		cfg:    cfg,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		rng:    rng,
		rhythm: NewRhythm(cfg.Rhythm),
		skier:  NewSkier(cfg.Skier, cfg.Physics),
	}
	s.spawner = NewSpawner(&s.cfg, s.diff, rng, viewportW)
	return s, nil
}

// SetViewportWidth updates the spawn frontier after a terminal resize.
func (s *Session) SetViewportWidth(w float64) {
	s.spawner.SetViewportWidth(w)
}

// Start transitions NotStarted or Ended into Running with a full reset of
// skier, rhythm, cursor, entities and timers. now is the monotonic timestamp
// of the starting tick.
func (s *Session) Start(now time.Duration) {
	if s.phase == PhaseRunning {
		return
	}
	s.phase = PhaseRunning
	s.tick = 0
	s.now = now
	s.cursor = 0
	s.lastBeat = BeatNone
	s.rhythm.Reset()
	s.skier.Reset()
	s.skier.Speed = s.rhythm.Speed(s.maxSpeed())
	s.spawner.Reset()
}

// Dismiss acknowledges a finished run: Ended → NotStarted. Ignored in any
// other phase.
func (s *Session) Dismiss() {
	if s.phase != PhaseEnded {
		return
	}
	s.phase = PhaseNotStarted
}

// Push feeds one directional input with its arrival timestamp. Ignored
// outside Running. Speed is recomputed immediately after the judgment.
func (s *Session) Push(side core.Side, at time.Duration) Beat {
	if s.phase != PhaseRunning {
		return BeatNone
	}
	beat := s.rhythm.Push(side, at)
	if beat != BeatNone {
		s.lastBeat = beat
	}
	s.skier.Speed = s.rhythm.Speed(s.maxSpeed())
	return beat
}

// Jump triggers a jump. Ignored outside Running or in an invalid pose.
func (s *Session) Jump() bool {
	if s.phase != PhaseRunning {
		return false
	}
	return s.skier.Jump()
}

// Duck triggers a duck. Ignored outside Running or in an invalid pose.
func (s *Session) Duck() bool {
	if s.phase != PhaseRunning {
		return false
	}
	return s.skier.Duck()
}

// Tick advances the simulation by one frame in fixed component order:
// rhythm decay → skier physics → scroll/spawn → collision → phase. A no-op
// outside Running, so ended and unstarted sessions are frozen.
func (s *Session) Tick(now time.Duration) {
	if s.phase != PhaseRunning {
		return
	}
	s.tick++
	s.now = now

	s.rhythm.Decay(now)
	s.skier.Speed = s.rhythm.Speed(s.maxSpeed())

	s.skier.Integrate()

	advance := math.Max(s.skier.Speed, s.cfg.Physics.MinForward)
	s.cursor += advance
	s.spawner.Advance(s.skier.Speed, s.Score(), int(s.tick))

	if hit, ok := firstHit(&s.skier, s.spawner.Obstacles()); ok {
		s.endedBy = hit.Kind
		s.phase = PhaseEnded
	}
}

// maxSpeed is the difficulty-scaled top speed for the current run progress.
func (s *Session) maxSpeed() float64 {
	return s.diff.MaxSpeed(s.cfg.Physics.MaxSpeed, s.Score(), int(s.tick))
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score derives the integer score from distance traveled. Readable in every
// phase, including immediately after Ended.
func (s *Session) Score() int {
	return int(s.cursor / scoreDivisor)
}

// Distance returns the world cursor: total distance traveled in cells.
func (s *Session) Distance() float64 {
	return s.cursor
}

// Skier returns a copy of the skier state for rendering.
func (s *Session) Skier() Skier {
	return s.skier
}

// RhythmQuality returns the current rhythm quality in [0.1, 1.0].
func (s *Session) RhythmQuality() float64 {
	return s.rhythm.Quality()
}

// Tolerance returns the current rhythm acceptance window.
func (s *Session) Tolerance() time.Duration {
	return s.rhythm.Tolerance()
}

// LastBeat returns the most recent push judgment for HUD feedback.
func (s *Session) LastBeat() Beat {
	return s.lastBeat
}

// EndedBy returns the obstacle kind that ended the run. Meaningful only in
// PhaseEnded.
func (s *Session) EndedBy() ObstacleKind {
	return s.endedBy
}

// Obstacles returns the active obstacles. Callers must treat the slice as
// read-only; the spawner owns it.
func (s *Session) Obstacles() []Obstacle {
	return s.spawner.Obstacles()
}

// Groups returns the active spectator groups, read-only.
func (s *Session) Groups() []SpectatorGroup {
	return s.spawner.Groups()
}
