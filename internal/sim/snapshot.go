package sim

// Snapshot captures the observable session state for determinism tests.
// Floats are scaled to integers so snapshots compare exactly.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	CursorMil int64 // distance * 1000
	QualityK  int   // rhythm quality * 1000
	SpeedMil  int64 // skier speed * 1000
	SkierYMil int64
	Jumping   bool
	Ducking   bool
	Obstacles int
	Groups    int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Score:     s.Score(),
		CursorMil: int64(s.cursor * 1000),
		QualityK:  int(s.rhythm.Quality() * 1000),
		SpeedMil:  int64(s.skier.Speed * 1000),
		SkierYMil: int64(s.skier.Y * 1000),
		Jumping:   s.skier.Jumping,
		Ducking:   s.skier.Ducking,
		Obstacles: len(s.spawner.Obstacles()),
		Groups:    len(s.spawner.Groups()),
	}
}
