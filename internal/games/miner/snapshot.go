package miner

import "github.com/vovakirdan/tui-miner/internal/games/miner/world"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Money        int
	Health       int
	PickaxePower int
	PlayerX      int
	PlayerY      int
	Facing       world.Direction
	Started      bool
	Paused       bool
	Blocks       int

	// Row-major cells: 0 for empty, else (type+1)*10 + durability
	CellData []int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	cells := make([]int, world.GridSize*world.GridSize)
	s.Grid.Each(func(b world.Block) {
		cells[b.Pos.Y*world.GridSize+b.Pos.X] = (int(b.Type)+1)*10 + b.Durability
	})

	return Snapshot{
		Tick:         g.tick,
		Money:        s.Player.Money,
		Health:       s.Player.Health,
		PickaxePower: s.Player.PickaxePower,
		PlayerX:      s.Player.Pos.X,
		PlayerY:      s.Player.Pos.Y,
		Facing:       s.Player.Facing,
		Started:      s.Started,
		Paused:       s.Paused,
		Blocks:       s.Grid.Count(),
		CellData:     cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Money)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickaxePower) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)       //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Started)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Blocks) //#nosec G115 -- hash computation

	for _, v := range snap.CellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
