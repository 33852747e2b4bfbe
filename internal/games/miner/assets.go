package miner

import (
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

// Asset is the terminal rendition of a named visual.
type Asset struct {
	Glyph rune
	Color core.Color
}

// Asset returns the configured visual for name, or '?' when it is unknown.
func (g *Game) Asset(name string) Asset {
	a, ok := g.cfg.Assets[name]
	if !ok {
		return Asset{Glyph: '?'}
	}
	return Asset{Glyph: a.Rune(), Color: a.ColorValue()}
}

// BlockAsset returns the visual of a block type.
func (g *Game) BlockAsset(t world.BlockType) Asset {
	return g.Asset(t.String())
}

// shadeRune picks a lighter glyph for blocks with little durability left.
func shadeRune(full rune, durability int) rune {
	ratio := float64(durability) / world.MaxDurability
	switch {
	case ratio >= 1:
		return full
	case ratio >= 0.6:
		return '▓'
	case ratio >= 0.4:
		return '▒'
	default:
		return '░'
	}
}

// fadeRune picks a glyph for debris at the given opacity. Zero means invisible.
func fadeRune(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '▓'
	case alpha > 0.33:
		return '▒'
	case alpha > 0:
		return '░'
	default:
		return 0
	}
}

// facingRune is the arrow drawn next to the player.
func facingRune(d world.Direction) rune {
	switch d {
	case world.Up:
		return '^'
	case world.Left:
		return '<'
	case world.Right:
		return '>'
	default:
		return 'v'
	}
}
