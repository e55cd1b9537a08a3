// Package game implements the Color Dash simulation core.
// Colored shapes fall from the top of the playfield; the player rotates a
// set of three collector zones so the shape's color matches the middle
// (active) zone when the shape arrives. The core is pure and tick-driven:
// no wall clock, no I/O, no terminal knowledge.
package game

import (
	"fmt"
	"math/rand"

	"github.com/colordash/colordash/internal/config"
	"github.com/colordash/colordash/internal/core"
	"github.com/colordash/colordash/internal/registry"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode selects how shapes that escape the playfield are treated.
type Mode int

const (
	// ModeClassic counts a shape that falls past the zones as a miss.
	ModeClassic Mode = iota
	// ModeRelaxed lets escaped shapes vanish without a life penalty.
	ModeRelaxed
)

// HUD occupies the top rows; the playfield starts below it.
const hudHeight = 2

// Package-level config plumbing set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config file path.
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
	default:
		difficultyPreset = ""
	}
}

// Game implements the Color Dash simulation.
type Game struct {
	mode    Mode
	cfg     config.ColorDashConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase  Phase
	paused bool
	tick   uint64

	zones  ZoneSet
	shapes []Shape

	score         int
	lives         int
	fallSpeed     float64
	spawnEvery    int
	lastSpawnTick uint64

	highScore int

	// Layout (computed from screen size)
	fieldW     int // Playfield width in cells
	fieldH     int // Playfield height in cells, below the HUD
	zoneRowY   int // Playfield row occupied by the collector zones
	zoneStartX int // Left edge of the three-zone band
	tooSmall   bool
}

// New creates a classic-mode Color Dash game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewRelaxed creates a relaxed-mode game where escaped shapes cost nothing.
func NewRelaxed() *Game {
	return &Game{mode: ModeRelaxed}
}

func init() {
	registry.Register("colordash", func() registry.Game {
		return New()
	})
	registry.Register("colordash_relaxed", func() registry.Game {
		return NewRelaxed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRelaxed {
		return "colordash_relaxed"
	}
	return "colordash"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRelaxed {
		return "Color Dash (Relaxed)"
	}
	return "Color Dash"
}

// Reset initializes the game and shows the title screen.
// The high score survives resets; it belongs to the player, not the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	gameCfg, err := config.Load(configPath)
	if err != nil {
		gameCfg = config.DefaultColorDashConfig()
	}
	config.ApplyPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg

	g.tick = 0
	g.phase = PhaseTitle
	g.paused = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.shapes = nil
	g.zones = NewZoneSet(g.cfg.Zones.Rotation)
	g.fallSpeed = g.cfg.Shapes.BaseSpeed
	g.spawnEvery = g.cfg.Spawner.BaseIntervalTicks
	g.lastSpawnTick = 0

	g.layout()
}

// layout computes playfield dimensions from the screen size.
func (g *Game) layout() {
	g.fieldW = g.runtime.ScreenW
	g.fieldH = g.runtime.ScreenH - hudHeight
	g.zoneRowY = g.fieldH - g.cfg.Zones.BottomMargin - 1
	g.zoneStartX = (g.fieldW - 3*g.cfg.Zones.Width) / 2

	requiredW := 3*g.cfg.Zones.Width + 2
	requiredH := hudHeight + g.cfg.Zones.BottomMargin + 8
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH
}

// SetHighScore seeds the session's known high score, typically loaded from
// the score store once at program start.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// HighScore returns the best score known to this game instance.
func (g *Game) HighScore() int {
	return g.highScore
}

// startSession performs the Title -> Playing transition: a full reset of all
// session state, identical regardless of how the previous session ended.
func (g *Game) startSession() {
	g.phase = PhasePlaying
	g.paused = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.shapes = g.shapes[:0]
	g.zones = NewZoneSet(g.cfg.Zones.Rotation)
	g.fallSpeed = g.cfg.Shapes.BaseSpeed
	g.spawnEvery = g.cfg.Spawner.BaseIntervalTicks
	g.lastSpawnTick = g.tick
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseTitle:
		// Any input starts a session
		if in.Any() && !in.Has(core.ActionQuit) {
			g.startSession()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.phase = PhaseTitle
		}
		return core.StepResult{State: g.State()}
	}

	// PhasePlaying from here on
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.zones.RotateLeft()
	}
	if in.Has(core.ActionRight) {
		g.zones.RotateRight()
	}

	g.spawnShapes()
	g.advanceShapes()
	events := g.resolveShapes()

	if g.lives == 0 {
		g.finishSession()
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// spawnShapes emits a new shape once the spawn interval has elapsed on the
// tick clock. The new shape inherits the session's current fall speed.
func (g *Game) spawnShapes() {
	if g.tick-g.lastSpawnTick < uint64(g.spawnEvery) {
		return
	}
	g.shapes = append(g.shapes, newShape(g.rng, g.fieldW, g.cfg.Shapes.Size, g.fallSpeed))
	g.lastSpawnTick = g.tick
}

// advanceShapes moves every live shape down by its own speed.
func (g *Game) advanceShapes() {
	for i := range g.shapes {
		g.shapes[i].Y += g.shapes[i].Speed
	}
}

// resolveShapes decides the outcome of every shape that reached the zone row
// or left the playfield this tick, and keeps the survivors. The off-screen
// test runs before the zone-row test, so a shape that is fully below the
// field is always an escape, never a late arrival.
func (g *Game) resolveShapes() []core.Event {
	var events []core.Event

	survivors := g.shapes[:0]
	for _, s := range g.shapes {
		switch {
		case s.Offscreen(g.fieldH):
			// Never caught. Classic mode treats an unaddressed shape
			// as a failure, not a no-op; relaxed mode lets it go.
			if g.mode == ModeClassic {
				g.loseLife()
				events = append(events, core.EventMiss)
			}

		case s.BottomEdge() >= float64(g.zoneRowY) && g.overZones(s):
			if s.Color == g.zones.ActiveColor() {
				g.score++
				events = append(events, core.EventMatch)
				g.maybeSpeedUp()
			} else {
				g.loseLife()
				events = append(events, core.EventMiss)
			}

		default:
			survivors = append(survivors, s)
		}
	}
	g.shapes = survivors

	return events
}

// overZones reports whether the shape's horizontal extent overlaps the
// three-zone band. Classic mode catches on color alone, anywhere along the
// zone row; relaxed mode requires actual overlap, so shapes falling beside
// the zones pass behind them and escape.
func (g *Game) overZones(s Shape) bool {
	if g.mode == ModeClassic {
		return true
	}
	bandEnd := g.zoneStartX + 3*g.cfg.Zones.Width
	return s.X+s.Size >= g.zoneStartX && s.X-s.Size < bandEnd
}

// maybeSpeedUp raises the difficulty when the score crosses a multiple of
// the speed-up interval. Shapes already in flight keep their speed.
func (g *Game) maybeSpeedUp() {
	every := g.cfg.Gameplay.SpeedUpEvery
	if every <= 0 || g.score%every != 0 {
		return
	}
	g.fallSpeed += g.cfg.Gameplay.SpeedUpAmount
	g.spawnEvery = core.Max(g.cfg.Spawner.MinIntervalTicks, g.spawnEvery-g.cfg.Spawner.IntervalStepTicks)
}

// loseLife removes a life, stopping at zero.
func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

// finishSession performs the Playing -> GameOver transition and records a
// new high score if this session beat it.
func (g *Game) finishSession() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.phase = PhaseGameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d phase=%s score=%d lives=%d shapes=%d speed=%.3f every=%d",
		g.tick, g.phase, g.score, g.lives, len(g.shapes), g.fallSpeed, g.spawnEvery)
}
