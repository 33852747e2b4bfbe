package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// State is the whole game: world, player and run flags.
// It is a plain value; Reduce never mutates its input.
type State struct {
	Player  Player
	Grid    Grid
	Started bool
	Paused  bool
}

// NewState builds the initial state of a run with a world generated from seed.
func NewState(seed int64) State {
	return State{
		Player: NewPlayer(),
		Grid:   Generate(rand.New(rand.NewSource(seed))),
	}
}

// Facing returns the cell one step from the player in its facing direction.
// The result may lie outside the grid.
func (s State) Facing() Position {
	return s.Player.Pos.Add(s.Player.Facing.Delta())
}

// ActionKind selects the reducer operation.
type ActionKind int

const (
	ActMove ActionKind = iota
	ActDig
	ActStart
	ActPause
	ActReset
)

func (k ActionKind) String() string {
	switch k {
	case ActMove:
		return "move"
	case ActDig:
		return "dig"
	case ActStart:
		return "start"
	case ActPause:
		return "pause"
	case ActReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Action is a single mutation request.
type Action struct {
	Kind   ActionKind
	Dir    Direction // ActMove
	Target Position  // ActDig
	Seed   int64     // ActReset
}

// MoveAction moves the player one cell towards dir.
func MoveAction(dir Direction) Action { return Action{Kind: ActMove, Dir: dir} }

// DigAction hits the block at target once.
func DigAction(target Position) Action { return Action{Kind: ActDig, Target: target} }

// StartAction starts the run.
func StartAction() Action { return Action{Kind: ActStart} }

// PauseAction toggles pause.
func PauseAction() Action { return Action{Kind: ActPause} }

// ResetAction replaces the world with one generated from seed.
func ResetAction(seed int64) Action { return Action{Kind: ActReset, Seed: seed} }

// Reduce applies a to s and returns the new state and the visual effects
// of the transition.
func Reduce(s State, a Action) (State, []Effect) {
	switch a.Kind {
	case ActMove:
		return move(s, a.Dir)
	case ActDig:
		return dig(s, a.Target)
	case ActStart:
		s.Started = true
		s.Paused = false
		return s, nil
	case ActPause:
		if s.Started {
			s.Paused = !s.Paused
		}
		return s, nil
	case ActReset:
		return NewState(a.Seed), nil
	default:
		return s, nil
	}
}

// move turns the player and steps one cell, clamping each axis to the grid.
func move(s State, dir Direction) (State, []Effect) {
	from := s.Player.Pos
	to := from.Add(dir.Delta())
	to.X = core.Clamp(to.X, 0, GridSize-1)
	to.Y = core.Clamp(to.Y, 0, GridSize-1)

	s.Player.Facing = dir
	s.Player.Pos = to

	if to == from {
		return s, nil
	}
	return s, []Effect{{Kind: EffectMove, Target: PlayerTarget, From: from, To: to}}
}

// dig applies one pickaxe hit to the block at target.
func dig(s State, target Position) (State, []Effect) {
	b, ok := s.Grid.At(target)
	if !ok {
		return s, nil
	}

	b.Durability -= s.Player.PickaxePower
	if b.Durability <= 0 {
		s.Grid.clear(target)
		s.Player.Money += b.Value
		return s, []Effect{{Kind: EffectBreak, Target: BlockTarget(target), From: target, To: target, Block: b.Type}}
	}

	s.Grid.put(b)
	return s, []Effect{{Kind: EffectDig, Target: BlockTarget(target), From: target, To: target, Block: b.Type}}
}
