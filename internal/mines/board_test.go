package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stream replays fixed samples, cycling when exhausted.
type stream struct {
	samples []float64
	n       int
}

func (s *stream) Float64() float64 {
	v := s.samples[s.n%len(s.samples)]
	s.n++
	return v
}

func boardWithMines(g Geometry, mines ...int) *Board {
	b := NewBoard(g, 0, nil)
	for _, i := range mines {
		b.Cells[i].Mined = true
	}
	return b
}

func TestNewCell(t *testing.T) {
	assert.Equal(t, Cell{Mined: true}, NewCell(0.2, &stream{samples: []float64{0.2}}))
	assert.Equal(t, Cell{Mined: true}, NewCell(0.2, &stream{samples: []float64{0}}))
	assert.Equal(t, Cell{}, NewCell(0.2, &stream{samples: []float64{0.2000001}}))
	assert.Equal(t, Cell{}, NewCell(0, &stream{samples: []float64{0}}))
	assert.Equal(t, Cell{Mined: true}, NewCell(1, &stream{samples: []float64{0.9999}}))
}

func TestNewBoardRowMajor(t *testing.T) {
	g := Geometry{Width: 3, Height: 2}
	b := NewBoard(g, 0.5, &stream{samples: []float64{0.1, 0.9, 0.9, 0.9, 0.9, 0.4}})
	require.Len(t, b.Cells, 6)
	mined := []bool{}
	for _, c := range b.Cells {
		mined = append(mined, c.Mined)
		assert.False(t, c.Exposed)
		assert.False(t, c.Flagged)
		assert.Zero(t, c.MineCount)
	}
	assert.Equal(t, []bool{true, false, false, false, false, true}, mined)
}

func TestGenerateBoard(t *testing.T) {
	b := GenerateBoard()
	require.Len(t, b.Cells, Width*Height)
	assert.Equal(t, DefaultGeometry, b.Geometry)
	assert.False(t, b.GameOver())
	assert.Zero(t, b.Exposed())
}

func TestMineDensity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	mined := 0
	const boards = 50
	for range boards {
		b := NewBoard(DefaultGeometry, MineProbability, r)
		for _, c := range b.Cells {
			if c.Mined {
				mined++
			}
		}
	}
	ratio := float64(mined) / float64(boards*Width*Height)
	assert.InDelta(t, MineProbability, ratio, 0.01)
}

func TestCellState(t *testing.T) {
	assert.Equal(t, Hidden, Cell{}.State())
	assert.Equal(t, Hidden, Cell{Mined: true}.State())
	assert.Equal(t, Flagged, Cell{Flagged: true, Mined: true}.State())
	assert.Equal(t, CellState(3), Cell{Exposed: true, MineCount: 3}.State())
	assert.Equal(t, Mine, Cell{Exposed: true, Mined: true}.State())
}

func TestGridToString(t *testing.T) {
	b := boardWithMines(Geometry{Width: 3, Height: 2}, 0)
	b.Cells[1].Exposed = true
	b.Cells[1].MineCount = 1
	b.Cells[5].Flagged = true
	assert.Equal(t, "  1   \n    F \n", b.Grid().ToString(3))
}

func TestGridToStringWidth(t *testing.T) {
	g := Grid{0, 1, 2, 3, 4, 5, 6}
	assert.Equal(t, "0 1 2 \n3 4 5 \n", g.ToString(3))
	assert.Equal(t, "", g.ToString(0))
	assert.Equal(t, "", g.ToString(-1))
	assert.Equal(t, "", Grid{}.ToString(3))
}

func TestBoardCellOutOfRange(t *testing.T) {
	b := boardWithMines(Geometry{Width: 2, Height: 2})
	assert.Panics(t, func() { b.Cell(4) })
	assert.NotPanics(t, func() { b.Cell(3) })
}
