package miner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

// Button labels
const (
	startLabel  = "[ Start ]"
	pauseLabel  = "[ Pause ]"
	resumeLabel = "[ Resume ]"
)

// FooterHint is shown under the grid.
const FooterHint = "Use Arrow Keys or WASD to move • Space to dig"

// cloudColumns are cloud positions within one sky period, in characters.
var cloudColumns = []int{3, 11, 24, 31}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		drawCenteredMessage(dst, "Terminal too small",
			fmt.Sprintf("Need at least %dx%d", g.minScreenW(), MinScreenH))
		return
	}

	g.drawHUD(dst)
	g.drawButton(dst)
	g.drawSky(dst)
	g.drawBoard(dst)
	g.drawDebris(dst)
	g.drawPlayer(dst)

	dst.DrawTextCentered(boardTop+world.GridSize, FooterHint)

	switch {
	case !g.state.Started:
		drawCenteredMessage(dst, "MINER", "Press Enter or click Start")
	case g.state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) boardX() int {
	return (g.runtime.ScreenW - g.minScreenW()) / 2
}

// HUD returns the status line.
func (g *Game) HUD() string {
	p := g.state.Player
	return fmt.Sprintf("Money: $%d  Health: %d  Pick Power: %d", p.Money, p.Health, p.PickaxePower)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.HUD()
	x := (dst.Width() - len([]rune(hud))) / 2
	dst.DrawTextColor(x, hudRow, hud, core.ColorBrightYellow)
}

// button returns the label and screen area of the run control button.
func (g *Game) button() (string, core.Rect) {
	label := startLabel
	if g.state.Started {
		label = pauseLabel
		if g.state.Paused {
			label = resumeLabel
		}
	}
	w := len(label)
	return label, core.NewRect((g.runtime.ScreenW-w)/2, buttonRow, w, 1)
}

func (g *Game) drawButton(dst *core.Screen) {
	label, r := g.button()
	dst.DrawTextColor(r.X, r.Y, label, core.ColorBrightGreen)
}

// drawSky draws the cloud row, scrolled against the player's x for parallax.
func (g *Game) drawSky(dst *core.Screen) {
	if !g.cfg.Display.ShowClouds {
		return
	}
	cloud := g.Asset("clouds")
	width := g.minScreenW()
	px, _ := g.animator.PlayerPosition(g.state.Player.Pos)
	shift := int(math.Round(px * g.cfg.Display.CloudDrift * float64(g.cfg.Display.CellWidth)))
	x0 := g.boardX()
	for _, col := range cloudColumns {
		x := ((col-shift)%width + width) % width
		dst.SetColor(x0+x, skyRow, cloud.Glyph, cloud.Color)
	}
}

func (g *Game) drawBoard(dst *core.Screen) {
	cw := g.cfg.Display.CellWidth
	x0 := g.boardX()
	bg := g.Asset("background")

	for y := range world.GridSize {
		for x := range world.GridSize {
			sx, sy := x0+x*cw, boardTop+y
			p := world.Pos(x, y)
			b, ok := g.state.Grid.At(p)
			if !ok {
				dst.SetColor(sx, sy, bg.Glyph, bg.Color)
				continue
			}

			a := g.BlockAsset(b.Type)
			r := a.Glyph
			if g.cfg.Display.ShadeBlocks {
				r = shadeRune(a.Glyph, b.Durability)
			}
			c := a.Color
			if g.animator.Pulse(p) > 0.5 {
				c = core.ColorBrightWhite
			}
			for i := range cw {
				dst.SetColor(sx+i, sy, r, c)
			}
		}
	}
}

func (g *Game) drawDebris(dst *core.Screen) {
	cw := g.cfg.Display.CellWidth
	x0 := g.boardX()
	for _, d := range g.animator.Debris() {
		r := fadeRune(d.Alpha)
		if r == 0 {
			continue
		}
		y := d.Pos.Y - int(math.Round(d.Rise))
		if y < 0 {
			continue
		}
		c := g.BlockAsset(d.Block).Color
		for i := range cw {
			dst.SetColor(x0+d.Pos.X*cw+i, boardTop+y, r, c)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	cw := g.cfg.Display.CellWidth
	p := g.state.Player
	a := g.Asset("player")

	px, py := g.animator.PlayerPosition(p.Pos)
	sx := g.boardX() + int(math.Round(px*float64(cw)))
	sy := boardTop + int(math.Round(py))

	if cw == 1 {
		dst.SetColor(sx, sy, a.Glyph, a.Color)
		return
	}
	arrow := facingRune(p.Facing)
	if p.Facing == world.Left {
		dst.SetColor(sx, sy, arrow, a.Color)
		dst.SetColor(sx+1, sy, a.Glyph, a.Color)
		return
	}
	dst.SetColor(sx, sy, a.Glyph, a.Color)
	dst.SetColor(sx+1, sy, arrow, a.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-tw)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}
