package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Action int8

const (
	Reset Action = iota
	LeftPick
	RightPick
)

func (a Action) String() string {
	switch a {
	case Reset:
		return "reset"
	case LeftPick:
		return "left_pick"
	case RightPick:
		return "right_pick"
	default:
		return fmt.Sprintf("Action(%d)", int8(a))
	}
}

// Intent is a single player interaction. Pos is ignored for [Reset].
type Intent struct {
	Action Action
	Pos    int
}

func ResetIntent() Intent        { return Intent{Action: Reset} }
func LeftPickAt(pos int) Intent  { return Intent{Action: LeftPick, Pos: pos} }
func RightPickAt(pos int) Intent { return Intent{Action: RightPick, Pos: pos} }

// Controller owns the board of a single game and is the only thing that
// mutates it. It is not safe for concurrent use.
type Controller struct {
	board    *Board
	generate func() *Board
}

type Option func(*Controller)

// WithGenerator replaces [GenerateBoard] as the source of fresh boards.
func WithGenerator(generate func() *Board) Option {
	return func(c *Controller) {
		c.generate = generate
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{generate: GenerateBoard}
	for _, opt := range opts {
		opt(c)
	}
	c.board = c.generate()
	return c
}

// Apply dispatches in and reports whether the board may have changed and
// should be rendered again. Once the game is over only [Reset] has any
// effect.
//
// panics [IndexError]
func (c *Controller) Apply(in Intent) bool {
	switch in.Action {
	case Reset:
		c.board = c.generate()
		return true
	case LeftPick:
		c.board.mustIndex(in.Pos)
		if c.board.GameOver() {
			return false
		}
		c.board.Reveal(in.Pos)
		return true
	case RightPick:
		c.board.mustIndex(in.Pos)
		if c.board.GameOver() || c.board.Cells[in.Pos].Exposed {
			return false
		}
		c.board.Cells[in.Pos].Flagged = !c.board.Cells[in.Pos].Flagged
		return true
	default:
		panic(fmt.Sprintf("mines: unknown action %v", in.Action))
	}
}

func (c *Controller) GameOver() bool {
	return c.board.GameOver()
}

// ReadCell returns a copy of cell i. Callers must not look at Mined unless
// the cell is exposed; [Controller.Grid] never leaks it.
//
// panics [IndexError]
func (c *Controller) ReadCell(i int) Cell {
	return c.board.Cell(i)
}

func (c *Controller) Grid() Grid {
	return c.board.Grid()
}

func (c *Controller) Geometry() Geometry {
	return c.board.Geometry
}

// Exposed counts exposed cells on the current board.
func (c *Controller) Exposed() int {
	return c.board.Exposed()
}
