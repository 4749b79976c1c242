package sim

// firstHit scans the active obstacles and reports whether any of them ends
// the run this tick. The scan short-circuits on the first hit: the session
// transitions to Ended and the remaining obstacles are irrelevant.
func firstHit(sk *Skier, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if collides(sk, o) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// collides applies the variant-specific rule. The asymmetry is the game:
// jumping clears a fallen skier but never a bridge; ducking clears a bridge
// (if the clearance allows) but never a fallen skier.
func collides(sk *Skier, o Obstacle) bool {
	switch o.Kind {
	case ObstacleFallenSkier:
		if sk.Jumping {
			return false
		}
		return sk.Bounds().Intersects(o.GroundRect())

	case ObstacleBridge:
		if !sk.Bounds().OverlapsX(o.Span()) {
			return false
		}
		deck := -o.Clearance // underside of the deck; the span extends upward
		if sk.Ducking {
			// Only the head point is tested while ducking. A low-clearance
			// bridge can still catch a ducked skier.
			return sk.HeadY() <= deck
		}
		top := sk.Y - sk.Height()
		return top <= deck

	default:
		return false
	}
}
