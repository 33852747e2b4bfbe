// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI and the TUI
// can look them up by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold no terminal state; the platform maps keys to actions,
// runs the tick loop and paints the screen buffer.
type Game interface {
	// ID returns a unique identifier used on the command line (e.g. "miner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current run status.
	State() core.GameState
}

// Resizer is implemented by games that follow terminal resizes without
// restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// MinSizer is implemented by games that need a minimum screen size.
type MinSizer interface {
	MinSize() (w, h int)
}

// Clicker is implemented by games with on-screen buttons.
type Clicker interface {
	// ButtonAt returns the action bound to the button at (x, y),
	// or core.ActionNone.
	ButtonAt(x, y int) core.Action
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
