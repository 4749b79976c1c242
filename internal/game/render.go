package game

import (
	"fmt"

	"github.com/slopetap/slopetap/internal/core"
	"github.com/slopetap/slopetap/internal/sim"
)

// Visual characters for rendering
const (
	GroundChar    = '═'
	SkierHead     = '◉'
	SkierBody     = '█'
	FallenBody    = '▓'
	BridgeDeck    = '═'
	BridgePier    = '║'
	SpectatorChar = '☺'
	FlagChar      = '⚑'
	CampfireChar  = '♨'
	TentChar      = '▲'
	MeterFull     = '█'
	MeterEmpty    = '·'
)

// groundMargin leaves rows under the ground line for the foreground
// spectator lane.
const groundMargin = 4

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - groundMargin

	// Background spectators first so the course overdraws them.
	for _, grp := range g.session.Groups() {
		g.drawGroup(dst, grp, groundY)
	}

	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, o := range g.session.Obstacles() {
		switch o.Kind {
		case sim.ObstacleFallenSkier:
			g.drawFallenSkier(dst, o, groundY)
		case sim.ObstacleBridge:
			g.drawBridge(dst, o, groundY)
		}
	}

	g.drawSkier(dst, groundY)
	g.drawHUD(dst)

	switch {
	case g.session.Phase() == sim.PhaseNotStarted:
		g.drawTitle(dst)
	case g.session.Phase() == sim.PhaseEnded:
		g.drawGameOver(dst)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawSkier renders the player sprite in its current pose. The sim keeps the
// skier's vertical position in course units with up negative; one unit maps
// to one screen row.
func (g *Game) drawSkier(dst *core.Screen, groundY int) {
	sk := g.session.Skier()
	x := int(sk.X)
	airRows := int(-sk.Y + 0.5)

	var sprite []string
	switch {
	case sk.Ducking:
		sprite = []string{
			" ◉▄",
			"═══",
		}
	case sk.Jumping:
		sprite = []string{
			" ◉ ",
			"╱█╲",
			" ══",
		}
	default:
		// Poles alternate with the stride so the skier looks like they are
		// actually pushing.
		poles := "╱█╲"
		if int(sk.AnimPhase)%2 == 1 {
			poles = "╲█╱"
		}
		sprite = []string{
			" ◉ ",
			poles,
			"═╨═",
		}
	}

	top := groundY - len(sprite) - airRows
	for dy, row := range sprite {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetColored(x+dx, top+dy, r, core.ColorBrightWhite)
			}
			dx++
		}
	}
}

// fallenSprites are the crash poses, all two rows tall. The ski angle comes
// from the tilt sign so identical poses still read slightly differently.
var fallenSprites = [][]string{
	{"╲  ╱", "▓▓▓▓"},
	{" ╳  ", "▓▓▓▓"},
	{"  ╱╲", "▓▓▓▓"},
}

func (g *Game) drawFallenSkier(dst *core.Screen, o sim.Obstacle, groundY int) {
	sprite := fallenSprites[o.Pose%len(fallenSprites)]
	x := int(o.X)
	top := groundY - len(sprite)

	for dy, row := range sprite {
		dx := 0
		for _, r := range row {
			if r == '╱' || r == '╲' {
				if o.Tilt < 0 {
					r = '╲'
				} else {
					r = '╱'
				}
			}
			if r != ' ' {
				dst.SetColored(x+dx, top+dy, r, core.ColorYellow)
			}
			dx++
		}
	}
}

func (g *Game) drawBridge(dst *core.Screen, o sim.Obstacle, groundY int) {
	x := int(o.X)
	w := int(o.Width)
	deckY := groundY - int(o.Clearance+0.999)

	for dx := 0; dx < w; dx++ {
		dst.SetColored(x+dx, deckY, BridgeDeck, core.ColorGray)
	}
	for y := deckY + 1; y < groundY; y++ {
		dst.SetColored(x, y, BridgePier, core.ColorGray)
		dst.SetColored(x+w-1, y, BridgePier, core.ColorGray)
	}

	// Onlookers leaning over the railing.
	for _, c := range o.Crowd {
		cx := x + int(c.Offset)
		if cx >= x+w {
			cx = x + w - 1
		}
		dst.SetColored(cx, deckY-1, SpectatorChar, core.ColorCyan)
	}
}

// drawGroup renders a roadside spectator cluster. Left-side groups stand on
// the ground line in the background; right-side groups fill the foreground
// rows under it, pushed out by their lane offset.
func (g *Game) drawGroup(dst *core.Screen, grp sim.SpectatorGroup, groundY int) {
	x := int(grp.X)
	row := groundY - 1
	if grp.Side == core.SideRight {
		row = groundY + 1 + int(grp.LaneOffset)/3
		if row >= dst.Height() {
			row = dst.Height() - 1
		}
	}

	for i, m := range grp.Members {
		mx := x + i*2
		body := SpectatorChar
		if (g.ticks/8+int(m.BobPhase*3)+i)%2 == 1 {
			body = '☻'
		}
		dst.SetColored(mx, row, body, core.ColorCyan)
		if m.Flag {
			dst.SetColored(mx, row-1, FlagChar, core.ColorRed)
		}
	}

	if grp.Campfire {
		dst.SetColored(x-2, row, CampfireChar, core.ColorOrange)
	}
	if grp.Tent {
		tx := x + len(grp.Members)*2 + 1
		dst.SetColored(tx, row, TentChar, core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	sk := g.session.Skier()

	status := fmt.Sprintf(" Score: %d   Dist: %dm ", g.session.Score(), int(g.session.Distance()))
	dst.DrawText(2, 0, status)

	speedText := fmt.Sprintf(" Spd: %.2f ", sk.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	g.drawRhythmMeter(dst, 2, 1)

	if g.flash > 0 {
		switch g.flashBeat {
		case sim.BeatGood:
			dst.DrawTextColored(26, 1, "ON BEAT!", core.ColorGreen)
		case sim.BeatBad:
			dst.DrawTextColored(26, 1, "OFF BEAT", core.ColorRed)
		}
	}
}

// drawRhythmMeter renders the quality bar. Color tracks how close the player
// is to full rhythm.
func (g *Game) drawRhythmMeter(dst *core.Screen, x, y int) {
	q := g.session.RhythmQuality()

	color := core.ColorRed
	switch {
	case q > 0.7:
		color = core.ColorGreen
	case q > 0.4:
		color = core.ColorYellow
	}

	const cells = 10
	filled := int(q*cells + 0.5)

	dst.DrawText(x, y, "Rhythm [")
	for i := 0; i < cells; i++ {
		r := MeterEmpty
		if i < filled {
			r = MeterFull
		}
		dst.SetColored(x+8+i, y, r, color)
	}
	dst.DrawText(x+8+cells, y, "]")
}

func (g *Game) drawTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-4, "S L O P E T A P")
	dst.DrawTextCentered(h/2-2, "Alternate ←/→ in rhythm to build speed")
	dst.DrawTextCentered(h/2-1, "Space jumps fallen skiers, ↓ ducks under bridges")
	dst.DrawTextCentered(h/2+1, "Press Enter to start")
}

func (g *Game) drawGameOver(dst *core.Screen) {
	cause := "You wiped out"
	switch g.session.EndedBy() {
	case sim.ObstacleFallenSkier:
		cause = "You tripped over a fallen skier"
	case sim.ObstacleBridge:
		cause = "You slammed into a bridge"
	}
	sub := fmt.Sprintf("%s  |  Score: %d  |  R to restart", cause, g.session.Score())
	g.drawCenteredMessage(dst, "WIPEOUT", sub)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
