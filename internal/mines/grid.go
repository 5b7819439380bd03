package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden  CellState = -2
	Flagged CellState = -1
	/*
	 * 0 to 8 mean the cell is exposed and carry its surrounding mine
	 * count.
	 */
	Mine CellState = 64
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return " "
	case s == Flagged:
		return "F"
	case s == Mine:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

// ToString lays g out in rows of width cells. A trailing partial row is
// dropped; a non-positive width yields "".
func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
