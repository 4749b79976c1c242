package game

import (
	"testing"
	"time"

	"github.com/slopetap/slopetap/internal/core"
	"github.com/slopetap/slopetap/internal/sim"
)

const testFrame = 16 * time.Millisecond

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frameAt(tick int) core.InputFrame {
	in := core.NewInputFrame()
	in.Now = time.Duration(tick) * testFrame
	return in
}

// startGame resets the game and presses start on the first frame.
func startGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(seed))

	in := frameAt(0)
	in.Set(core.ActionStart)
	result := g.Step(in)
	if !result.State.Started {
		t.Fatal("start action did not leave the title screen")
	}
	return g
}

func TestGameStartsOnTitleScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.State().Started {
		t.Error("fresh game should be on the title screen")
	}

	// Gameplay inputs do nothing before start.
	in := frameAt(0)
	in.Set(core.ActionJump)
	in.Push(core.SideLeft, 0)
	result := g.Step(in)

	if result.State.Started || result.State.Score != 0 {
		t.Error("gameplay input should not start a run")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		in := frameAt(tick)
		if tick == 0 {
			in.Set(core.ActionStart)
		}
		if tick > 0 && tick%22 == 0 {
			side := core.SideLeft
			if (tick/22)%2 == 1 {
				side = core.SideRight
			}
			in.Push(side, in.Now)
		}
		if tick%90 == 0 {
			in.Set(core.ActionJump)
		}
		return in
	}

	run := func() (core.GameState, int64) {
		g := New()
		g.Reset(testRuntime(777))
		var state core.GameState
		for tick := 0; tick < 400; tick++ {
			state = g.Step(script(tick)).State
			if state.GameOver {
				break
			}
		}
		return state, int64(state.Distance * 1000)
	}

	s1, d1 := run()
	s2, d2 := run()

	if s1.Score != s2.Score || s1.GameOver != s2.GameOver || d1 != d2 {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	g := startGame(t, 42)
	for tick := 1; tick < 50; tick++ {
		g.Step(frameAt(tick))
	}

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Started {
		t.Error("reset should return to the title screen")
	}
	if state.Score != 0 || state.Distance != 0 {
		t.Errorf("reset kept score %d / distance %v", state.Score, state.Distance)
	}
	if g.paused {
		t.Error("reset should clear the pause flag")
	}
	if g.ticks != 0 {
		t.Errorf("reset should clear the tick counter, got %d", g.ticks)
	}
}

func TestGamePause(t *testing.T) {
	g := startGame(t, 1)
	for tick := 1; tick < 20; tick++ {
		g.Step(frameAt(tick))
	}

	pause := frameAt(20)
	pause.Set(core.ActionPause)
	result := g.Step(pause)
	if !result.State.Paused {
		t.Fatal("game should be paused")
	}

	distBefore := g.State().Distance
	for tick := 21; tick < 40; tick++ {
		g.Step(frameAt(tick))
	}
	if g.State().Distance != distBefore {
		t.Error("distance advanced while paused")
	}

	unpause := frameAt(40)
	unpause.Set(core.ActionPause)
	if g.Step(unpause).State.Paused {
		t.Error("game should be unpaused")
	}

	g.Step(frameAt(41))
	if g.State().Distance <= distBefore {
		t.Error("distance should resume after unpause")
	}
}

func TestGamePushesBuildSpeed(t *testing.T) {
	g := startGame(t, 2)

	idleSpeed := g.session.Skier().Speed
	side := core.SideLeft
	for tick := 1; tick < 200; tick++ {
		in := frameAt(tick)
		if tick%22 == 0 {
			in.Push(side, in.Now)
			side = side.Other()
		}
		g.Step(in)
		if g.State().GameOver {
			t.Fatal("run ended during the warmup window")
		}
	}

	if q := g.session.RhythmQuality(); q <= sim.QualityFloor {
		t.Errorf("steady alternation left quality at the floor (%v)", q)
	}
	if got := g.session.Skier().Speed; got <= idleSpeed {
		t.Errorf("speed did not rise above idle: %v <= %v", got, idleSpeed)
	}
}

func TestGameEndsAndRestarts(t *testing.T) {
	g := startGame(t, 3)

	// An idle skier cannot duck or jump, so the course ends the run within
	// a few obstacle waves.
	var ended bool
	tick := 1
	for ; tick < 20000; tick++ {
		if g.Step(frameAt(tick)).State.GameOver {
			ended = true
			break
		}
	}
	if !ended {
		t.Fatal("idle run never ended")
	}

	finalScore := g.State().Score

	// Ticks after the end change nothing.
	for i := 0; i < 30; i++ {
		tick++
		g.Step(frameAt(tick))
	}
	if g.State().Score != finalScore {
		t.Error("score changed after the run ended")
	}

	tick++
	restart := frameAt(tick)
	restart.Set(core.ActionRestart)
	state := g.Step(restart).State

	if state.GameOver {
		t.Error("restart should clear the game-over state")
	}
	if !state.Started {
		t.Error("restart should begin a new run immediately")
	}
	if state.Score != 0 {
		t.Errorf("restart kept score %d", state.Score)
	}
}

func TestGameRenderTitle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	if len(str) == 0 {
		t.Fatal("render produced no output")
	}

	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("title screen should draw something")
	}
}

func TestGameRenderRun(t *testing.T) {
	g := startGame(t, 1)
	for tick := 1; tick < 300; tick++ {
		g.Step(frameAt(tick))
		if g.State().GameOver {
			break
		}
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	groundY := 24 - groundMargin
	if screen.Get(0, groundY) != GroundChar {
		t.Errorf("ground should be drawn at row %d, got %q", groundY, screen.Get(0, groundY))
	}
}
