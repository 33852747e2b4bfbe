package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

func TestPreviewText(t *testing.T) {
	state := world.NewState(42)
	lines := strings.Split(strings.TrimSuffix(previewText(state), "\n"), "\n")

	if len(lines) != world.GridSize {
		t.Fatalf("got %d lines, want %d", len(lines), world.GridSize)
	}
	for y, line := range lines {
		if len([]rune(line)) != world.GridSize {
			t.Errorf("line %d has %d cells", y, len([]rune(line)))
		}
		if y < 5 && line != strings.Repeat("d", world.GridSize) {
			t.Errorf("shallow line %d = %q, want all dirt", y, line)
		}
	}
}

func TestPreviewDeterministic(t *testing.T) {
	if previewText(world.NewState(7)) != previewText(world.NewState(7)) {
		t.Error("same seed should print the same world")
	}
}

func TestPreviewScreen(t *testing.T) {
	cfg := config.DefaultMinerConfig()
	screen := previewScreen(world.NewState(1), cfg)

	if screen.Width() != world.GridSize*cfg.Display.CellWidth || screen.Height() != world.GridSize {
		t.Fatalf("screen = %dx%d", screen.Width(), screen.Height())
	}
	if got := screen.GetCell(0, 0).Rune; got != '█' {
		t.Errorf("dirt glyph = %q", got)
	}
}
