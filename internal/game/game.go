// Package game adapts the skiing simulation to the platform Game interface.
// The sim owns every gameplay rule; this package owns presentation concerns:
// the title and game-over screens, pause, beat feedback and the HUD.
package game

import (
	"math/rand"
	"time"

	"github.com/slopetap/slopetap/internal/config"
	"github.com/slopetap/slopetap/internal/core"
	"github.com/slopetap/slopetap/internal/sim"
)

// beatFlashTicks is how long the HUD beat verdict stays visible.
const beatFlashTicks = 18

// Game implements the Slopetap game on top of a sim.Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.Config
	session *sim.Session

	paused    bool
	ticks     int // presentation tick counter, drives ambient animation
	flash     int // remaining beat-flash ticks
	flashBeat sim.Beat
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Slopetap game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slopetap"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slopetap"
}

// Reset initializes or restarts the game on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := sim.NewSession(cfg, float64(runtime.ScreenW), rng)
	if err != nil {
		// A custom config that passed loading but fails validation falls
		// back to the embedded defaults, which always validate.
		g.cfg = config.Default()
		session, _ = sim.NewSession(g.cfg, float64(runtime.ScreenW), rng)
	}
	g.session = session

	g.paused = false
	g.ticks = 0
	g.flash = 0
	g.flashBeat = sim.BeatNone
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.Phase() == sim.PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	switch g.session.Phase() {
	case sim.PhaseNotStarted:
		if in.Has(core.ActionStart) {
			g.session.Start(in.Now)
			g.flash = 0
			g.flashBeat = sim.BeatNone
		}

	case sim.PhaseEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.session.Dismiss()
			g.session.Start(in.Now)
			g.flash = 0
			g.flashBeat = sim.BeatNone
		}

	case sim.PhaseRunning:
		// Pushes carry their own arrival timestamps; forwarding them in
		// arrival order gives the same judgments as immediate delivery.
		for _, p := range in.Pushes {
			if beat := g.session.Push(p.Side, p.At); beat != sim.BeatNone {
				g.flash = beatFlashTicks
				g.flashBeat = beat
			}
		}
		if in.Has(core.ActionJump) {
			g.session.Jump()
		}
		if in.Has(core.ActionDuck) {
			g.session.Duck()
		}
		g.session.Tick(in.Now)
	}

	if g.flash > 0 {
		g.flash--
		if g.flash == 0 {
			g.flashBeat = sim.BeatNone
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	state := core.GameState{
		Score:    g.session.Score(),
		Distance: g.session.Distance(),
		GameOver: phase == sim.PhaseEnded,
		Paused:   g.paused,
		Started:  phase != sim.PhaseNotStarted,
	}
	if phase == sim.PhaseEnded {
		state.EndedBy = g.session.EndedBy().String()
	}
	return state
}
