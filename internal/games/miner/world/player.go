package world

// Initial player stats.
const (
	InitialHealth       = 100
	InitialPickaxePower = 1
)

// InitialPosition is where every run starts: top row, centered.
var InitialPosition = Position{X: GridSize / 2, Y: 0}

// Player is the miner. Money and PickaxePower never decrease.
type Player struct {
	Pos          Position
	Facing       Direction
	Health       int
	Money        int
	PickaxePower int
}

// NewPlayer returns a player with the initial stats.
func NewPlayer() Player {
	return Player{
		Pos:          InitialPosition,
		Facing:       Down,
		Health:       InitialHealth,
		Money:        0,
		PickaxePower: InitialPickaxePower,
	}
}
