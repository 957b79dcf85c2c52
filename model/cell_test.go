package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newAliveCell() Cell {
	c := NewCell()
	c.SetAlive(true)
	return c
}

func TestNewCellIsDead(t *testing.T) {
	c := NewCell()
	require.False(t, c.Alive())
	require.False(t, c.pending)
}

func TestCommitLatchesPendingState(t *testing.T) {
	c := NewCell()
	c.pending = true
	c.Commit()
	require.True(t, c.Alive())
	require.False(t, c.pending, "commit must reset the pending state")

	c.pending = false
	c.Commit()
	require.False(t, c.Alive())
}

func TestAliveCellSurvivesWithTwoOrThreeNeighbors(t *testing.T) {
	for _, neighbors := range []int{2, 3} {
		c := newAliveCell()
		c.Update(neighbors)
		require.True(t, c.pending, "alive cell with %d neighbors should survive", neighbors)
	}
}

func TestAliveCellDiesFromUnderpopulation(t *testing.T) {
	for _, neighbors := range []int{0, 1} {
		c := newAliveCell()
		c.Update(neighbors)
		require.False(t, c.pending, "alive cell with %d neighbors should die", neighbors)
	}
}

func TestAliveCellDiesFromOverpopulation(t *testing.T) {
	for _, neighbors := range []int{4, 5, 6, 7, 8} {
		c := newAliveCell()
		c.Update(neighbors)
		require.False(t, c.pending, "alive cell with %d neighbors should die", neighbors)
	}
}

func TestDeadCellReproducesOnlyWithThreeNeighbors(t *testing.T) {
	for _, neighbors := range []int{0, 1, 2, 4, 5, 6, 7, 8} {
		c := NewCell()
		c.Update(neighbors)
		require.False(t, c.pending, "dead cell with %d neighbors should stay dead", neighbors)
	}

	c := NewCell()
	c.Update(3)
	require.True(t, c.pending)
}

func TestUpdateDoesNotTouchPublishedState(t *testing.T) {
	c := newAliveCell()
	c.Update(8)
	require.True(t, c.Alive(), "published state must not change before commit")

	c.Commit()
	require.False(t, c.Alive())
}
