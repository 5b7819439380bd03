package mines

// MineProbability is the chance that a freshly generated cell holds a mine.
const MineProbability = 0.2

// Sampler is a source of uniform samples in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type Sampler interface {
	Float64() float64
}

type Cell struct {
	Mined   bool
	Exposed bool
	Flagged bool
	// MineCount is only meaningful once the cell is exposed and not mined.
	MineCount int
}

// NewCell draws a hidden cell that is mined with probability p.
func NewCell(p float64, r Sampler) Cell {
	return Cell{Mined: p > 0 && r.Float64() <= p}
}

// State is the cell as the player is allowed to see it.
func (c Cell) State() CellState {
	switch {
	case c.Exposed && c.Mined:
		return Mine
	case c.Exposed:
		return CellState(c.MineCount)
	case c.Flagged:
		return Flagged
	default:
		return Hidden
	}
}
