package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

// Renderer paints screen buffers with lipgloss styles.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds styles for r. A nil r uses the default renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, code := range palette {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return &Renderer{styles: styles}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
