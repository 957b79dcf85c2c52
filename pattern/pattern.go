// Package pattern decodes and applies Game of Life board configurations,
// either from the community-standard Run Length Encoded text format or
// from a structured JSON document.
package pattern

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
)

// Pattern is a decoded board configuration: a dense row-major 0/1 matrix
// together with its declared dimensions. A Pattern is immutable once
// produced and independent of any particular board.
type Pattern struct {
	Rows int
	Cols int
	Grid [][]uint8
}

// Apply writes the pattern onto the board: the board is cleared and every
// nonzero matrix entry sets the cell at the same (row, col) alive. The
// board is only mutated once the pattern is known to fit — a pattern with
// more rows than the board, or any row wider than the board, fails
// without side effects.
func (p *Pattern) Apply(b *model.Board) error {
	if len(p.Grid) > b.Rows() {
		return errors.Errorf("[Apply] configuration requires a larger board: %d pattern rows > %d board rows",
			len(p.Grid), b.Rows())
	}
	for i, row := range p.Grid {
		if len(row) > b.Cols() {
			return errors.Errorf("[Apply] configuration requires a larger board: pattern row %d has %d cols > %d board cols",
				i, len(row), b.Cols())
		}
	}

	b.Clear()
	for r, row := range p.Grid {
		for c, val := range row {
			if val != 0 {
				b.Set(r, c, true)
			}
		}
	}
	return nil
}
