package miner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

// track runs tweens one after another and keeps the latest value.
type track struct {
	steps   []*gween.Tween
	current int
	value   float32
}

func newTrack(begin float32, steps ...*gween.Tween) track {
	return track{steps: steps, value: begin}
}

// update advances the running step. Leftover time is not carried into the
// next step. Returns true once every step has finished.
func (tr *track) update(dt float32) bool {
	for tr.current < len(tr.steps) {
		v, finished := tr.steps[tr.current].Update(dt)
		tr.value = v
		if !finished {
			return false
		}
		tr.current++
		dt = 0
	}
	return true
}

// Animation is a running visual effect.
type Animation struct {
	Effect   world.Effect
	primary  track // move: progress 0→1, dig: scale 1→peak→1, break: alpha 1→0
	rise     track // break only: cells risen
	finished bool

	// Drawn player position when a move started, in fractional cells.
	startX, startY float64
}

// Debris is a fading block left behind by a break effect.
type Debris struct {
	Pos   world.Position
	Block world.BlockType
	Alpha float64 // 1 = fully visible
	Rise  float64 // Cells above Pos
}

// Animator interprets effect descriptors with tweens.
type Animator struct {
	cfg    config.EffectsConfig
	active []*Animation
}

// NewAnimator creates an animator using the given timings.
func NewAnimator(cfg config.EffectsConfig) *Animator {
	return &Animator{cfg: cfg}
}

// Play starts an animation for every effect. A new move replaces the
// running one.
func (a *Animator) Play(effects []world.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case world.EffectMove:
			// Continue from where the player is drawn, not from the cell it left.
			x, y := a.PlayerPosition(e.From)
			a.drop(world.PlayerTarget)
			a.active = append(a.active, &Animation{
				Effect:  e,
				primary: newTrack(0, gween.New(0, 1, float32(a.cfg.MoveDuration), ease.OutQuad)),
				startX:  x,
				startY:  y,
			})
		case world.EffectDig:
			a.drop(e.Target)
			peak := float32(a.cfg.DigScale)
			d := float32(a.cfg.DigDuration)
			a.active = append(a.active, &Animation{
				Effect: e,
				primary: newTrack(1,
					gween.New(1, peak, d, ease.Linear),
					gween.New(peak, 1, d, ease.Linear),
				),
			})
		case world.EffectBreak:
			a.drop(e.Target)
			d := float32(a.cfg.BreakDuration)
			a.active = append(a.active, &Animation{
				Effect:  e,
				primary: newTrack(1, gween.New(1, 0, d, ease.InQuad)),
				rise:    newTrack(0, gween.New(0, float32(a.cfg.BreakRise), d, ease.InQuad)),
			})
		}
	}
}

// drop removes running animations on target.
func (a *Animator) drop(target world.TargetID) {
	kept := a.active[:0]
	for _, anim := range a.active {
		if anim.Effect.Target != target {
			kept = append(kept, anim)
		}
	}
	a.active = kept
}

// Update advances all animations by dt seconds and discards finished ones.
func (a *Animator) Update(dt float32) {
	kept := a.active[:0]
	for _, anim := range a.active {
		done := anim.primary.update(dt)
		if len(anim.rise.steps) > 0 {
			done = anim.rise.update(dt) && done
		}
		anim.finished = done
		if !done {
			kept = append(kept, anim)
		}
	}
	a.active = kept
}

// Clear stops every animation.
func (a *Animator) Clear() {
	a.active = nil
}

// Active returns the number of running animations.
func (a *Animator) Active() int {
	return len(a.active)
}

// PlayerPosition returns where to draw the player, in fractional cells.
func (a *Animator) PlayerPosition(at world.Position) (x, y float64) {
	for _, anim := range a.active {
		if anim.Effect.Kind != world.EffectMove {
			continue
		}
		t := float64(anim.primary.value)
		to := anim.Effect.To
		return lerp(anim.startX, to.X, t), lerp(anim.startY, to.Y, t)
	}
	return float64(at.X), float64(at.Y)
}

// Pulse returns the dig highlight strength at p in [0, 1].
func (a *Animator) Pulse(p world.Position) float64 {
	span := a.cfg.DigScale - 1
	if span <= 0 {
		return 0
	}
	target := world.BlockTarget(p)
	for _, anim := range a.active {
		if anim.Effect.Kind == world.EffectDig && anim.Effect.Target == target {
			return core.ClampF((float64(anim.primary.value)-1)/span, 0, 1)
		}
	}
	return 0
}

// Debris returns the fading remains of recently broken blocks.
func (a *Animator) Debris() []Debris {
	var out []Debris
	for _, anim := range a.active {
		if anim.Effect.Kind != world.EffectBreak {
			continue
		}
		out = append(out, Debris{
			Pos:   anim.Effect.To,
			Block: anim.Effect.Block,
			Alpha: float64(anim.primary.value),
			Rise:  float64(anim.rise.value),
		})
	}
	return out
}

func lerp(from float64, to int, t float64) float64 {
	return from + (float64(to)-from)*t
}
