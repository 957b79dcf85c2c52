package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Coord addresses a cell by board row and column.
type Coord struct {
	Row, Col int
}

// Board is a fixed-size dense grid of cells. rows and cols never change
// after construction; every coordinate in [0,rows) x [0,cols) maps to
// exactly one cell in the row-major backing slice.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard allocates a rows x cols board of dead cells. Zero dimensions
// produce a degenerate empty board rather than a panic.
func NewBoard(rows, cols int) *Board {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows in the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns in the board
func (b *Board) Cols() int {
	return b.cols
}

// Get returns the published state of the cell at (row, col).
// Out-of-bounds coordinates read as dead.
func (b *Board) Get(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return b.cells[row*b.cols+col].alive
}

// Set seeds the cell at (row, col) to alive (true) or dead (false).
// Out-of-bounds coordinates are ignored.
func (b *Board) Set(row, col int, alive bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.cells[row*b.cols+col].SetAlive(alive)
}

// InitializeRandom seeds every cell independently from the provided
// source: a cell starts alive iff its draw v satisfies v >= 1-density.
// Passing the source explicitly keeps seeding deterministic under test.
func (b *Board) InitializeRandom(rng *rand.Rand, density float64) {
	for i := range b.cells {
		b.cells[i].SetAlive(rng.Float64() >= 1-density)
	}
}

// Clear forces every cell to dead
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i].SetAlive(false)
	}
}

// countNeighbors counts alive cells adjacent to (row, col). Coordinates
// outside the board are absent rather than wrapped, so a corner cell
// sees at most 3 neighbours and an edge cell at most 5.
func (b *Board) countNeighbors(row, col int) int {
	var (
		minRow = max(0, row-1)
		maxRow = min(b.rows-1, row+1)
		minCol = max(0, col-1)
		maxCol = min(b.cols-1, col+1)
	)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if b.cells[r*b.cols+c].alive {
				count++
			}
		}
	}
	return count
}

// Advance performs one full generation transition in two phases. Phase
// one computes every cell's pending state from the previous generation's
// neighbour counts, partitioned by row across workers; phase two commits
// every pending state. The group wait between the phases is the barrier
// that keeps the whole rule evaluation on the previous generation — no
// cell may commit before every cell has updated.
func (b *Board) Advance() {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < b.cols; col++ {
					b.cells[row*b.cols+col].Update(b.countNeighbors(row, col))
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait is only the phase barrier.
	_ = eg.Wait()

	for i := range b.cells {
		b.cells[i].Commit()
	}
}

// AliveCount returns the total number of cells currently alive
func (b *Board) AliveCount() (count int) {
	for i := range b.cells {
		if b.cells[i].alive {
			count++
		}
	}
	return
}

// Cells yields every cell's coordinates and published state in
// row-major order. Each call starts a fresh pass over the board.
func (b *Board) Cells() iter.Seq2[Coord, bool] {
	return func(yield func(Coord, bool) bool) {
		for row := 0; row < b.rows; row++ {
			for col := 0; col < b.cols; col++ {
				if !yield(Coord{Row: row, Col: col}, b.cells[row*b.cols+col].alive) {
					return
				}
			}
		}
	}
}

// Hash returns an efficient MD5 hash of the current board state
func (b *Board) Hash() string {
	h := md5.New()
	for i := range b.cells {
		if b.cells[i].alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InjectRandomLife sets count random cells alive to break stagnation
func (b *Board) InjectRandomLife(rng *rand.Rand, count int) {
	if b.rows == 0 || b.cols == 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.Set(rng.Intn(b.rows), rng.Intn(b.cols), true)
	}
}

// AddGlider seeds a glider pattern with its top-left corner at (row, col)
func (b *Board) AddGlider(row, col int) {
	glider := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, gliderRow := range glider {
		for c, alive := range gliderRow {
			b.Set(row+r, col+c, alive)
		}
	}
}

// AddOscillator seeds a blinker oscillator at (row, col)
func (b *Board) AddOscillator(row, col int) {
	b.Set(row, col, true)
	b.Set(row, col+1, true)
	b.Set(row, col+2, true)
}
