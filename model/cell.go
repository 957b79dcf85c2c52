package model

import "github.com/sheikhrachel/conway/rules"

// Cell is a single automaton unit. alive is the published state that the
// rest of the system reads; pending holds the next generation's state and
// is only meaningful between an Update call and its matching Commit.
type Cell struct {
	alive   bool
	pending bool
}

// NewCell returns a dead cell with no pending state
func NewCell() Cell {
	return Cell{}
}

// Alive returns the published state of the cell
func (c *Cell) Alive() bool {
	return c.alive
}

// SetAlive seeds the published state directly, bypassing the
// update/commit cycle. Used for random seeding and pattern application.
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// Update computes and stores the pending next state from the number of
// alive neighbours observed this generation. The published state is left
// untouched so that other cells' neighbour counts still read the
// previous generation.
func (c *Cell) Update(aliveNeighbors int) {
	c.pending = rules.ApplyConwayRules(aliveNeighbors, c.alive)
}

// Commit latches the pending state into the published state and resets
// the pending state. It must only run once every cell on the board has
// had Update called for the same generation; committing earlier would
// leak next-generation values into neighbour counts.
func (c *Cell) Commit() {
	c.alive = c.pending
	c.pending = false
}
