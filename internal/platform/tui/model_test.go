package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

func newTestModel(t *testing.T) (Model, *miner.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := miner.New()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m := NewModel(g, cfg, nil)
	m.Init()
	return m, g
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestKeysDriveGame(t *testing.T) {
	m, g := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if !m.State().Started {
		t.Fatal("enter should start the run")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{})
	if got, want := g.World().Player.Pos, world.Pos(11, 0); got != want {
		t.Errorf("player at %v, want %v", got, want)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeySpace}, TickMsg{})
	if got := g.World().Player.Money; got != 1 {
		t.Errorf("money = %d, want 1 after digging dirt", got)
	}
}

func TestInputClearedEachTick(t *testing.T) {
	m, g := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{}, TickMsg{})

	if got, want := g.World().Player.Pos, world.Pos(11, 0); got != want {
		t.Errorf("one key press should move once, player at %v", got)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestMouseClickStartButton(t *testing.T) {
	m, g := newTestModel(t)

	var bx, by int
	found := false
	for y := 0; y < 3 && !found; y++ {
		for x := 0; x < 80; x++ {
			if g.ButtonAt(x, y) == core.ActionConfirm {
				bx, by, found = x, y, true
				break
			}
		}
	}
	if !found {
		t.Fatal("no start button on screen")
	}

	click := tea.MouseMsg{X: bx, Y: by, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, click, TickMsg{})
	if !m.State().Started {
		t.Fatal("clicking Start should start the run")
	}

	m = send(t, m, click, TickMsg{})
	if !m.State().Paused {
		t.Error("clicking Pause should pause the run")
	}

	release := tea.MouseMsg{X: bx, Y: by, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m = send(t, m, release, TickMsg{})
	if !m.State().Paused {
		t.Error("mouse release should be ignored")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, tea.KeyMsg{Type: tea.KeySpace}, TickMsg{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, TickMsg{})

	if !m.State().Started {
		t.Error("resize should not restart the run")
	}
	if got := g.World().Player.Money; got != 1 {
		t.Errorf("money = %d after resize, want 1", got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestHelpToggleReservesRow(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m = send(t, m, runeKey('?'))
	if m.screen.Height() != 29 {
		t.Errorf("screen height with help = %d, want 29", m.screen.Height())
	}
	if !strings.Contains(m.View(), "dig") {
		t.Error("help bar should list the dig binding")
	}

	m = send(t, m, runeKey('?'))
	if m.screen.Height() != 30 {
		t.Errorf("screen height without help = %d, want 30", m.screen.Height())
	}
}

func TestHelpOverlaysFooterAtMinimumHeight(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: miner.MinScreenH})

	m = send(t, m, runeKey('?'))
	if m.screen.Height() != miner.MinScreenH {
		t.Errorf("screen height with help = %d, want %d", m.screen.Height(), miner.MinScreenH)
	}

	view := m.View()
	if strings.Contains(view, "Terminal too small") {
		t.Error("help should not push the game below its minimum size")
	}
	lines := strings.Split(view, "\n")
	if len(lines) != miner.MinScreenH {
		t.Errorf("view has %d lines, want %d", len(lines), miner.MinScreenH)
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "dig") || strings.Contains(last, miner.FooterHint) {
		t.Errorf("last line should be the help bar, got %q", last)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if !m.State().Started {
		t.Error("game should stay playable with help shown")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q, want empty", v)
	}
}

func TestScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(os.Getenv("HOME"), ".miner", "screenshots") {
		t.Errorf("screenshot written to %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Money: $0") {
		t.Error("screenshot should contain the HUD")
	}
}
