package world

import "math/rand"

// threshold maps a cumulative roll bound to the block type chosen below it.
type threshold struct {
	below float64
	typ   BlockType
}

// band is one depth range of the generation table.
type band struct {
	fromDepth  int
	thresholds []threshold
}

// generationTable is ordered by depth. The last threshold of each band is
// the fallback for rolls above every bound. The deepest band's fallback is
// stone, which duplicates its first entry.
var generationTable = []band{
	{fromDepth: 0, thresholds: []threshold{
		{1, Dirt},
	}},
	{fromDepth: 5, thresholds: []threshold{
		{0.8, Dirt},
		{1, Stone},
	}},
	{fromDepth: 10, thresholds: []threshold{
		{0.6, Stone},
		{0.8, Iron},
		{1, Dirt},
	}},
	{fromDepth: 15, thresholds: []threshold{
		{0.4, Stone},
		{0.6, Iron},
		{0.8, Gold},
		{0.95, Diamond},
		{1, Stone},
	}},
}

// bandFor returns the table band covering depth.
func bandFor(depth int) band {
	b := generationTable[0]
	for _, candidate := range generationTable {
		if depth >= candidate.fromDepth {
			b = candidate
		}
	}
	return b
}

// BlockTypeAt picks the block type for a cell at the given depth from a
// uniform roll in [0, 1).
func BlockTypeAt(depth int, roll float64) BlockType {
	thresholds := bandFor(depth).thresholds
	for _, th := range thresholds {
		if roll < th.below {
			return th.typ
		}
	}
	return thresholds[len(thresholds)-1].typ
}

// Share is one row of the generation table: a block type and the
// probability of the roll range that selects it.
type Share struct {
	Type        BlockType
	Probability float64
}

// Distribution returns the generation table row for a depth, in roll order.
// A type may appear more than once.
func Distribution(depth int) []Share {
	thresholds := bandFor(depth).thresholds
	shares := make([]Share, 0, len(thresholds))
	prev := 0.0
	for _, th := range thresholds {
		shares = append(shares, Share{Type: th.typ, Probability: th.below - prev})
		prev = th.below
	}
	return shares
}

// BandStarts returns the first depth of every generation band.
func BandStarts() []int {
	starts := make([]int, len(generationTable))
	for i, b := range generationTable {
		starts[i] = b.fromDepth
	}
	return starts
}

// Generate fills a fresh grid, drawing one roll per cell in row-major order.
func Generate(rng *rand.Rand) Grid {
	var g Grid
	for y := range GridSize {
		for x := range GridSize {
			t := BlockTypeAt(y, rng.Float64())
			g.put(NewBlock(t, Pos(x, y)))
		}
	}
	return g
}
