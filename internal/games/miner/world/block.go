// Package world holds the mining game's rules: the block and player models,
// the depth-weighted world generator and the pure state reducer.
// It has no terminal dependencies; the miner package draws it.
package world

// BlockType identifies the material of a block.
type BlockType int

const (
	Dirt BlockType = iota
	Stone
	Iron
	Gold
	Diamond
)

// BlockTypes lists every block type, shallowest first.
var BlockTypes = []BlockType{Dirt, Stone, Iron, Gold, Diamond}

// blockProperties holds the fixed durability and value per type.
var blockProperties = [...]struct {
	durability int
	value      int
}{
	Dirt:    {durability: 1, value: 1},
	Stone:   {durability: 2, value: 2},
	Iron:    {durability: 3, value: 5},
	Gold:    {durability: 4, value: 10},
	Diamond: {durability: 5, value: 20},
}

// MaxDurability is the durability of the hardest block type.
const MaxDurability = 5

// Durability returns the starting durability of a fresh block of this type.
func (t BlockType) Durability() int {
	if !t.Valid() {
		return 0
	}
	return blockProperties[t].durability
}

// Value returns the money awarded for clearing a block of this type.
func (t BlockType) Value() int {
	if !t.Valid() {
		return 0
	}
	return blockProperties[t].value
}

// Valid reports whether t is one of the defined block types.
func (t BlockType) Valid() bool {
	return t >= Dirt && t <= Diamond
}

// String returns the asset name of the block type.
func (t BlockType) String() string {
	switch t {
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	case Iron:
		return "iron"
	case Gold:
		return "gold"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// Block is a diggable cell. It only exists while Durability > 0.
type Block struct {
	Type       BlockType
	Pos        Position
	Durability int // Remaining hits at pickaxe power 1
	Value      int // Money awarded when cleared
}

// NewBlock creates a full-durability block of the given type.
func NewBlock(t BlockType, pos Position) Block {
	return Block{
		Type:       t,
		Pos:        pos,
		Durability: t.Durability(),
		Value:      t.Value(),
	}
}
