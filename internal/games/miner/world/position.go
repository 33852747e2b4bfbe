package world

import "fmt"

// GridSize is the width and height of the world in cells.
const GridSize = 20

// Position is a cell coordinate. Y is the depth (row index).
type Position struct {
	X, Y int
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// InBounds reports whether p lies inside the grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the player's facing.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit step for the direction.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{Y: -1}
	case Down:
		return Position{Y: 1}
	case Left:
		return Position{X: -1}
	case Right:
		return Position{X: 1}
	default:
		return Position{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
