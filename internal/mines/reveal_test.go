package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

var small = Geometry{Width: 3, Height: 3}

func exposed(b *Board) (out []int) {
	for i, c := range b.Cells {
		if c.Exposed {
			out = append(out, i)
		}
	}
	return
}

func clone(b *Board) *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Geometry: b.Geometry, Cells: cells}
}

// revealRecursive is the textbook recursive flood fill the worklist version
// must agree with.
func revealRecursive(b *Board, pos int) {
	cell := &b.Cells[pos]
	if cell.Exposed || cell.Flagged {
		return
	}
	if cell.Mined {
		b.ExposeAllMines()
		return
	}
	neighbors := b.Neighbors(pos)
	cell.Exposed = true
	cell.MineCount = b.CountMinesAmong(neighbors)
	if cell.MineCount == 0 {
		for _, j := range neighbors {
			revealRecursive(b, j)
		}
	}
}

func assertInvariants(t *testing.T, b *Board) {
	t.Helper()
	require.Len(t, b.Cells, b.Len())
	for i, c := range b.Cells {
		assert.False(t, c.Exposed && c.Flagged, "cell %d exposed and flagged", i)
		if c.Exposed && !c.Mined {
			assert.Equal(t, b.CountMinesAmong(b.Neighbors(i)), c.MineCount, "cell %d", i)
		}
	}
}

func TestCountMinesAmong(t *testing.T) {
	b := boardWithMines(small, 0, 4, 8)
	assert.Equal(t, 2, b.CountMinesAmong(b.Neighbors(1)))
	assert.Equal(t, 3, b.CountMinesAmong([]int{0, 4, 8}))
	assert.Equal(t, 0, b.CountMinesAmong(nil))
}

func TestExposeAllMines(t *testing.T) {
	b := boardWithMines(small, 2, 6)
	b.ExposeAllMines()
	assert.Equal(t, []int{2, 6}, exposed(b))
	before := clone(b)
	b.ExposeAllMines()
	assert.Equal(t, before, b)
}

func TestExposeAllMinesKeepsFlags(t *testing.T) {
	b := boardWithMines(small, 2, 6)
	b.Cells[6].Flagged = true
	b.ExposeAllMines()
	assert.Equal(t, []int{2}, exposed(b))
	assert.True(t, b.Cells[6].Flagged)
	assertInvariants(t, b)
}

func TestRevealFloodsEmptyBoard(t *testing.T) {
	b := boardWithMines(small)
	b.Reveal(4)
	for i, c := range b.Cells {
		assert.Equal(t, Cell{Exposed: true}, c, "cell %d", i)
	}
	assert.False(t, b.GameOver())
}

func TestRevealBoundedFlood(t *testing.T) {
	b := boardWithMines(small, 0)
	b.Reveal(8)
	assert.False(t, b.Cells[0].Exposed)
	for _, i := range []int{1, 3, 4} {
		assert.True(t, b.Cells[i].Exposed, "cell %d", i)
		assert.Equal(t, 1, b.Cells[i].MineCount, "cell %d", i)
	}
	for _, i := range []int{2, 5, 6, 7, 8} {
		assert.True(t, b.Cells[i].Exposed, "cell %d", i)
		assert.Equal(t, 0, b.Cells[i].MineCount, "cell %d", i)
	}
	assert.False(t, b.GameOver())
}

func TestRevealStopsAtFlag(t *testing.T) {
	b := boardWithMines(small)
	b.Cells[4].Flagged = true
	b.Reveal(0)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, exposed(b))
	assert.True(t, b.Cells[4].Flagged)
	assertInvariants(t, b)
}

func TestRevealFlagWall(t *testing.T) {
	// A full column of flags splits a 5x3 empty board in two.
	g := Geometry{Width: 5, Height: 3}
	b := boardWithMines(g)
	for y := range 3 {
		b.Cells[g.Index(2, y)].Flagged = true
	}
	b.Reveal(0)
	for i, c := range b.Cells {
		x, _ := g.Point(i)
		assert.Equal(t, x < 2, c.Exposed, "cell %d", i)
	}
}

func TestRevealSettledIsNoop(t *testing.T) {
	b := boardWithMines(small, 0)
	b.Reveal(2)
	b.Cells[6].Flagged = true
	before := clone(b)
	b.Reveal(2)
	b.Reveal(6)
	assert.Equal(t, before, b)
}

func TestRevealMine(t *testing.T) {
	b := boardWithMines(small, 0, 8)
	b.Reveal(4)
	assert.Equal(t, []int{4}, exposed(b))
	assert.Equal(t, 2, b.Cells[4].MineCount)

	b.Reveal(0)
	assert.Equal(t, []int{0, 4, 8}, exposed(b))
	assert.True(t, b.GameOver())
}

func TestRevealNumberedCellDoesNotFlood(t *testing.T) {
	b := boardWithMines(small, 2)
	b.Reveal(1)
	assert.Equal(t, []int{1}, exposed(b))
	assert.Equal(t, 1, b.Cells[1].MineCount)
}

func TestRevealNoMines(t *testing.T) {
	b := NewBoard(DefaultGeometry, 0, nil)
	b.Reveal(Width*Height/2 + 7)
	assert.Equal(t, Width*Height, b.Exposed())
	for _, c := range b.Cells {
		assert.Zero(t, c.MineCount)
	}
	assert.False(t, b.GameOver())
}

func TestRevealAllMines(t *testing.T) {
	b := NewBoard(DefaultGeometry, 1, rand.New(rand.NewPCG(1, 2)))
	b.Reveal(123)
	assert.Equal(t, Width*Height, b.Exposed())
	assert.True(t, b.GameOver())
}

func TestRevealOutOfRange(t *testing.T) {
	b := boardWithMines(small)
	assert.PanicsWithValue(t, IndexError{Index: 9, Len: 9}, func() { b.Reveal(9) })
}

func TestRevealMatchesRecursive(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, p := range []float64{0.05, 0.1, 0.2, 0.35} {
		for range 20 {
			b := NewBoard(DefaultGeometry, p, r)
			for range 40 {
				i := r.IntN(b.Len())
				b.Cells[i].Flagged = !b.Cells[i].Flagged
			}
			for range 10 {
				pos := r.IntN(b.Len())
				want := clone(b)
				revealRecursive(want, pos)
				b.Reveal(pos)
				require.Equal(t, want, b, "p=%v pos=%d", p, pos)
				assertInvariants(t, b)
				if b.GameOver() {
					break
				}
			}
		}
	}
}
