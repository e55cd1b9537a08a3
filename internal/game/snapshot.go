package game

// ShapeView is a read-only copy of a live shape for rendering.
type ShapeView struct {
	X     int
	Y     float64
	Size  int
	Color ShapeColor
	Kind  ShapeKind
}

// Snapshot captures the complete observable game state for rendering,
// determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Phase      Phase
	Paused     bool
	Score      int
	Lives      int
	HighScore  int
	FallSpeed  float64
	SpawnEvery int
	Shapes     []ShapeView
	SlotColors [3]ShapeColor // Zone colors in display order, left to right
	Active     ShapeColor    // Color of the middle (matching) slot
}

// Snapshot returns the current game snapshot. The shape list is copied;
// callers cannot mutate the live set through it.
func (g *Game) Snapshot() Snapshot {
	mode := "classic"
	if g.mode == ModeRelaxed {
		mode = "relaxed"
	}

	shapes := make([]ShapeView, len(g.shapes))
	for i, s := range g.shapes {
		shapes[i] = ShapeView{X: s.X, Y: s.Y, Size: s.Size, Color: s.Color, Kind: s.Kind}
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       mode,
		Phase:      g.phase,
		Paused:     g.paused,
		Score:      g.score,
		Lives:      g.lives,
		HighScore:  g.highScore,
		FallSpeed:  g.fallSpeed,
		SpawnEvery: g.spawnEvery,
		Shapes:     shapes,
		SlotColors: [3]ShapeColor{g.zones.SlotColor(0), g.zones.SlotColor(1), g.zones.SlotColor(2)},
		Active:     g.zones.ActiveColor(),
	}
}
