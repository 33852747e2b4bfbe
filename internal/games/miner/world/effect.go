package world

import "fmt"

// EffectKind names a visual transition emitted by the reducer.
type EffectKind int

const (
	EffectMove  EffectKind = iota // Player moved From -> To
	EffectDig                     // Block at To was hit but survived
	EffectBreak                   // Block at To was cleared
)

func (k EffectKind) String() string {
	switch k {
	case EffectMove:
		return "move"
	case EffectDig:
		return "dig"
	case EffectBreak:
		return "break"
	default:
		return "unknown"
	}
}

// TargetID names the thing an effect animates.
type TargetID string

// PlayerTarget is the target id of the player sprite.
const PlayerTarget TargetID = "player"

// BlockTarget returns the target id of the block at p.
func BlockTarget(p Position) TargetID {
	return TargetID(fmt.Sprintf("block:%d,%d", p.X, p.Y))
}

// Effect describes a state transition for the presentation layer.
// It carries no timing; the renderer decides durations and easing.
type Effect struct {
	Kind   EffectKind
	Target TargetID
	From   Position
	To     Position
	Block  BlockType // For dig and break effects
}
