package mines

import "github.com/sirupsen/logrus"

// CountMinesAmong counts mined cells among indices.
func (b *Board) CountMinesAmong(indices []int) (count int) {
	for _, i := range indices {
		if b.Cells[i].Mined {
			count++
		}
	}
	return
}

// ExposeAllMines exposes every mined cell that is not flagged. Flagged
// mines keep their flag so that a cell is never both exposed and flagged.
// This differs from the classic game, which also uncovers flagged mines on
// a loss; here a correctly flagged mine stays shown as a flag.
func (b *Board) ExposeAllMines() {
	for i := range b.Cells {
		if b.Cells[i].Mined && !b.Cells[i].Flagged {
			b.Cells[i].Exposed = true
		}
	}
}

// Reveal exposes cell pos the way a left click does. A mined cell exposes
// every mine on the board. A safe cell with no mined neighbours floods out
// to its neighbours until the region is bounded by numbered or flagged
// cells; flags are never exposed nor traversed.
//
// panics [IndexError]
func (b *Board) Reveal(pos int) {
	b.mustIndex(pos)

	todo := []int{pos}
	opened := 0
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		cell := &b.Cells[i]
		if cell.Exposed || cell.Flagged {
			continue
		}
		if cell.Mined {
			/*
			 * Only reachable on the first iteration: a cell is pushed
			 * from a neighbour with no mines around it.
			 */
			b.ExposeAllMines()
			Log.WithField("pos", pos).Debug("mine hit")
			return
		}

		neighbors := b.Neighbors(i)
		cell.Exposed = true
		cell.MineCount = b.CountMinesAmong(neighbors)
		opened++
		if cell.MineCount != 0 {
			continue
		}
		/*
		 * Push in reverse so neighbours are visited NW first, matching
		 * a depth-first walk over Neighbors order.
		 */
		for k := len(neighbors) - 1; k >= 0; k-- {
			j := neighbors[k]
			if !b.Cells[j].Exposed && !b.Cells[j].Flagged {
				todo = append(todo, j)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"pos":    pos,
		"opened": opened,
	}).Debug("revealed")
}
