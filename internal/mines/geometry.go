package mines

const (
	Width  = 40
	Height = 30
)

// DefaultGeometry is the board shape used for every game the server hosts.
var DefaultGeometry = Geometry{Width: Width, Height: Height}

// Geometry maps between row-major cell indices and (x, y) coordinates on a
// Width x Height rectangle.
type Geometry struct {
	Width, Height int
}

func (g Geometry) Len() int {
	return g.Width * g.Height
}

func (g Geometry) Index(x, y int) int {
	return y*g.Width + x
}

func (g Geometry) Point(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

func (g Geometry) ValidatePoint(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

func (g Geometry) ValidIndex(i int) bool {
	return 0 <= i && i < g.Len()
}

// panics [IndexError]
func (g Geometry) mustIndex(i int) {
	if !g.ValidIndex(i) {
		panic(IndexError{Index: i, Len: g.Len()})
	}
}

// Neighbors returns the in-bounds Moore neighbourhood of cell i ordered
// NW, N, NE, W, E, SW, S, SE.
//
// panics [IndexError]
func (g Geometry) Neighbors(i int) []int {
	g.mustIndex(i)
	x, y := g.Point(i)
	neighbors := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.ValidatePoint(x+dx, y+dy) {
				neighbors = append(neighbors, g.Index(x+dx, y+dy))
			}
		}
	}
	return neighbors
}
