package mines

import (
	"hash/maphash"
	"math/rand/v2"
	"sync"
)

type Board struct {
	Geometry
	Cells []Cell
}

// NewBoard samples every cell of g independently, in row-major order.
func NewBoard(g Geometry, p float64, r Sampler) *Board {
	cells := make([]Cell, g.Len())
	for i := range cells {
		cells[i] = NewCell(p, r)
	}
	return &Board{Geometry: g, Cells: cells}
}

type lockedSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

var rnd = &lockedSampler{
	rnd: rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	)),
}

// GenerateBoard returns a fresh default-sized board with mines placed at
// [MineProbability]. It is safe for concurrent use.
func GenerateBoard() *Board {
	return NewBoard(DefaultGeometry, MineProbability, rnd)
}

// Cell returns a copy of cell i.
//
// panics [IndexError]
func (b *Board) Cell(i int) Cell {
	b.mustIndex(i)
	return b.Cells[i]
}

// Grid renders the board as the player sees it.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.Cells))
	for i, c := range b.Cells {
		grid[i] = c.State()
	}
	return grid
}

// Exposed counts exposed cells.
func (b *Board) Exposed() (n int) {
	for _, c := range b.Cells {
		if c.Exposed {
			n++
		}
	}
	return
}

func (b *Board) GameOver() bool {
	for _, c := range b.Cells {
		if c.Exposed && c.Mined {
			return true
		}
	}
	return false
}
