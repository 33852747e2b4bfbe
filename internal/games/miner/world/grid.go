package world

// slot is one grid cell; present is false once the block is cleared.
type slot struct {
	block   Block
	present bool
}

// Grid is the fixed-size world, indexed [y][x]. It is an array so copying
// a Grid copies every cell.
type Grid struct {
	cells [GridSize][GridSize]slot
}

// At returns the block at p. The second result is false when the cell is
// cleared or p is outside the grid.
func (g *Grid) At(p Position) (Block, bool) {
	if !p.InBounds() {
		return Block{}, false
	}
	s := g.cells[p.Y][p.X]
	return s.block, s.present
}

// Has reports whether a block exists at p.
func (g *Grid) Has(p Position) bool {
	_, ok := g.At(p)
	return ok
}

// put stores b at its own position. Blocks with no durability are not stored.
func (g *Grid) put(b Block) {
	if !b.Pos.InBounds() || b.Durability <= 0 {
		return
	}
	g.cells[b.Pos.Y][b.Pos.X] = slot{block: b, present: true}
}

// clear empties the cell at p.
func (g *Grid) clear(p Position) {
	if !p.InBounds() {
		return
	}
	g.cells[p.Y][p.X] = slot{}
}

// Count returns the number of blocks remaining.
func (g *Grid) Count() int {
	n := 0
	for y := range GridSize {
		for x := range GridSize {
			if g.cells[y][x].present {
				n++
			}
		}
	}
	return n
}

// Each calls fn for every remaining block in row-major order.
func (g *Grid) Each(fn func(Block)) {
	for y := range GridSize {
		for x := range GridSize {
			if s := g.cells[y][x]; s.present {
				fn(s.block)
			}
		}
	}
}
