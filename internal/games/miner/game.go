// Package miner adapts the grid mining world to the terminal platform.
// It gates and debounces input, turns it into world actions, animates the
// resulting effects and draws the frame into a core.Screen.
package miner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

// Layout rows above and below the grid.
const (
	hudRow    = 0
	buttonRow = 1
	skyRow    = 2
	boardTop  = 3
	// MinScreenH is the smallest height that fits HUD, sky, grid and footer.
	MinScreenH = boardTop + world.GridSize + 1
)

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for the mining world.
type Game struct {
	state    world.State
	rng      *rand.Rand
	runtime  core.RuntimeConfig
	cfg      config.MinerConfig
	animator *Animator
	dig      *Debouncer
	tick     uint64

	screenTooSmall bool
}

// New creates a new miner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "miner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Miner"
}

// Reset loads the config and starts a fresh, not yet started run.
// The first world is generated from runtime.Seed so it matches
// `miner preview` for the same seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, source, err := config.LoadMiner(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "error", err)
		cfg = config.DefaultMinerConfig()
		source = config.SourceBuiltin
	}
	logger.Debug("config loaded", "source", source)
	g.reset(runtime, cfg)
}

// ResetWithConfig is Reset with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.MinerConfig) {
	g.reset(runtime, cfg)
}

func (g *Game) reset(runtime core.RuntimeConfig, cfg config.MinerConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = world.NewState(runtime.Seed)
	g.animator = NewAnimator(cfg.Effects)
	g.dig = NewDebouncer(CooldownTicks(cfg.Controls.DigCooldownMS, runtime.TickRate))
	g.tick = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	logger.Debug("world generated", "seed", runtime.Seed, "blocks", g.state.Grid.Count())
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW() || h < MinScreenH
}

// MinSize returns the smallest screen the game can be played on.
func (g *Game) MinSize() (w, h int) {
	return g.minScreenW(), MinScreenH
}

func (g *Game) minScreenW() int {
	return world.GridSize * g.cfg.Display.CellWidth
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.animator.Update(1 / float32(g.runtime.TickRate))

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.apply(world.ResetAction(g.rng.Int63()))
		g.animator.Clear()
		g.dig.Reset()
		logger.Debug("run reset", "blocks", g.state.Grid.Count())
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionConfirm) && !g.state.Started:
		g.apply(world.StartAction())
		logger.Debug("run started")
	case in.Has(core.ActionPause) && g.state.Started:
		g.apply(world.PauseAction())
		logger.Debug("pause toggled", "paused", g.state.Paused)
	}

	if !g.state.Started || g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.apply(world.MoveAction(world.Up))
	case in.Has(core.ActionDown):
		g.apply(world.MoveAction(world.Down))
	case in.Has(core.ActionLeft):
		g.apply(world.MoveAction(world.Left))
	case in.Has(core.ActionRight):
		g.apply(world.MoveAction(world.Right))
	}

	if in.Has(core.ActionDig) && g.dig.Try(g.tick) {
		g.apply(world.DigAction(g.state.Facing()))
	}

	return core.StepResult{State: g.State()}
}

// apply runs one world action and hands its effects to the animator.
func (g *Game) apply(a world.Action) {
	next, effects := world.Reduce(g.state, a)
	for _, e := range effects {
		if e.Kind == world.EffectBreak {
			logger.Debug("block cleared",
				"block", e.Block, "pos", e.To, "money", next.Player.Money)
		}
	}
	g.state = next
	g.animator.Play(effects)
}

// ButtonAt returns the action of the on-screen button at (x, y), if any.
func (g *Game) ButtonAt(x, y int) core.Action {
	if g.screenTooSmall {
		return core.ActionNone
	}
	label, rect := g.button()
	if !rect.Contains(x, y) {
		return core.ActionNone
	}
	if label == startLabel {
		return core.ActionConfirm
	}
	return core.ActionPause
}

// World returns the current world state.
func (g *Game) World() world.State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.state.Player.Money,
		Started: g.state.Started,
		Paused:  g.state.Paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("miner", func() registry.Game {
		return New()
	})
}
