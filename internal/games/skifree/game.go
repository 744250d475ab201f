// Package skifree implements a downhill skiing arcade game: the skier steers
// between discrete headings on a scrolling, procedurally generated slope,
// crashes into trees, jumps off bumps and ramps, and performs timed tricks.
package skifree

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-skifree/internal/config"
	"github.com/vovakirdan/tui-skifree/internal/core"
	"github.com/vovakirdan/tui-skifree/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "skifree"

var (
	gameConfig = config.DefaultSkiFreeConfig()
	logger     = log.Default()
)

// SetConfig sets the configuration used by new games.
func SetConfig(cfg config.SkiFreeConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts a Sim to the platform's game interface.
type Game struct {
	sim          *Sim
	runtime      core.RuntimeConfig
	cfg          config.SkiFreeConfig
	log          *log.Logger
	runID        string
	paused       bool
	showHitboxes bool
}

// New creates a new SkiFree game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SkiFree"
}

// Reset starts a new run on a course generated from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.cfg = gameConfig
	g.sim = NewSim(runtime.Seed)
	g.runID = uuid.NewString()
	g.log = logger.With("run", g.runID)
	g.paused = false
	g.showHitboxes = g.cfg.Display.ShowHitboxes

	g.log.Debug("run started", "seed", runtime.Seed, "objects", g.sim.World().Len())
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// RunID identifies the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Step applies the frame's input in arrival order and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range g.sim.Tick() {
		g.logEvent(ev)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
		return
	case core.ActionToggleHitbox:
		g.showHitboxes = !g.showHitboxes
		return
	}
	if g.paused {
		return
	}

	p := g.sim.Player()
	switch a {
	case core.ActionSteerLeft:
		p.SteerLeft()
	case core.ActionSteerRight:
		p.SteerRight()
	case core.ActionReleaseLeft:
		p.ReleaseLeft()
	case core.ActionReleaseRight:
		p.ReleaseRight()
	case core.ActionTrick1:
		g.trick(Trick1)
	case core.ActionTrick2:
		g.trick(Trick2)
	case core.ActionFlip:
		g.trick(Flip)
	}
}

func (g *Game) trick(t TrickKind) {
	remaining := g.sim.Player().State().Frames
	if g.sim.AttemptTrick(t) {
		g.log.Debug("trick started", "trick", t, "airborne", remaining,
			"required", t.RequiredFrames(), "clean", g.sim.Player().State().Success)
	}
}

func (g *Game) logEvent(ev Event) {
	switch ev.Kind {
	case EventCollision:
		g.log.Debug("collision", "object", ev.Hit.Kind, "behavior", ev.Hit.Behavior, "state", ev.NewState)
	case EventFlyover:
		g.log.Debug("flyover", "object", ev.Hit.Kind, "points", ev.Points)
	case EventTrickLanded:
		g.log.Debug("trick landed", "trick", ev.Trick, "points", ev.Points)
	case EventTrickFailed:
		g.log.Debug("trick failed", "trick", ev.Trick, "state", ev.NewState)
	}
}

// ElapsedSeconds is the run time derived from simulated ticks.
func (g *Game) ElapsedSeconds() float64 {
	return float64(g.sim.Ticks()) / float64(g.runtime.TickRate)
}

// State returns the current game state. A run never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Paused:   g.paused,
		RunID:    g.runID,
		Distance: g.sim.DistanceMetres(),
		Style:    g.sim.Style(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
