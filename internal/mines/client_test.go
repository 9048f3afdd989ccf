package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/mines/internal/grid"
)

func TestCycleFlag(t *testing.T) {
	s := NewClientState(3, 3)

	steps := []struct {
		want  CellView
		delta int
		flags int
	}{
		{FlaggedCell, -1, 1},
		{MarkedCell, +1, 0},
		{UnknownCell, 0, 0},
		{FlaggedCell, -1, 1},
	}
	for i, step := range steps {
		got, delta, err := s.CycleFlag(1, 2)
		require.NoError(t, err)
		assert.Equal(t, step.want, got, "step %d", i)
		assert.Equal(t, step.delta, delta, "step %d", i)
		assert.Equal(t, step.flags, s.Flags(), "step %d", i)

		cell, err := s.Cell(1, 2)
		require.NoError(t, err)
		assert.Equal(t, step.want, cell)
	}

	_, _, err := s.CycleFlag(3, 0)
	assert.Error(t, err)
}

func TestCycleFlagIgnoresRevealed(t *testing.T) {
	s := NewClientState(2, 2)
	require.NoError(t, s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 0, Y: 0}: 3},
	}))

	got, delta, err := s.CycleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, RevealedCell(3), got)
	assert.Equal(t, 0, delta)
	assert.Equal(t, 0, s.Flags())
}

func TestApplyResult(t *testing.T) {
	s := NewClientState(3, 1)
	_, _, err := s.CycleFlag(2, 0)
	require.NoError(t, err)

	require.NoError(t, s.ApplyResult(Result{Status: Boom, Board: NewBoard(3, 1)}))
	assert.Equal(t, "|_|_|F|\n", s.String())

	require.NoError(t, s.ApplyResult(Result{Status: Good, Updates: map[grid.Point]int{}}))
	assert.Equal(t, "|_|_|F|\n", s.String())

	require.NoError(t, s.ApplyResult(Result{
		Status:  Win,
		Updates: map[grid.Point]int{{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 1},
	}))
	assert.Equal(t, "|0|1|F|\n", s.String())

	err = s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 5, Y: 0}: 1},
	})
	assert.Error(t, err)
}

func TestApplyResultOverFlag(t *testing.T) {
	s := NewClientState(2, 1)
	_, _, err := s.CycleFlag(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, s.Flags())

	require.NoError(t, s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 0},
	}))
	assert.Equal(t, 0, s.Flags())
}

// chordState builds
//
//	|2|F|_|
//	|F|?|_|
//	|_|_|_|
func chordState(t *testing.T) *ClientState {
	t.Helper()
	s := NewClientState(3, 3)
	require.NoError(t, s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 0, Y: 0}: 2},
	}))
	s.CycleFlag(1, 0)
	s.CycleFlag(0, 1)
	s.CycleFlag(1, 1)
	s.CycleFlag(1, 1)
	return s
}

func TestChordReveal(t *testing.T) {
	s := chordState(t)
	require.Equal(t, "|2|F|_|\n|F|?|_|\n|_|_|_|\n", s.String())

	targets, err := s.ChordReveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 1, Y: 1}}, targets)
}

func TestChordRevealUnsatisfied(t *testing.T) {
	s := chordState(t)

	// removing a flag leaves the 2 unsatisfied
	s.CycleFlag(1, 0)
	targets, err := s.ChordReveal(0, 0)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestChordRevealOverFlagged(t *testing.T) {
	s := NewClientState(3, 3)
	require.NoError(t, s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 1, Y: 1}: 1},
	}))
	s.CycleFlag(0, 0)
	s.CycleFlag(2, 2)

	targets, err := s.ChordReveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestChordRevealIgnoresNonNumbers(t *testing.T) {
	s := NewClientState(2, 2)
	require.NoError(t, s.ApplyResult(Result{
		Status:  Good,
		Updates: map[grid.Point]int{{X: 0, Y: 0}: 0},
	}))

	for _, p := range []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}} {
		targets, err := s.ChordReveal(p.X, p.Y)
		require.NoError(t, err)
		assert.Empty(t, targets, "chord on %s", p)
	}

	_, err := s.ChordReveal(-1, 0)
	assert.Error(t, err)
}

func TestCellView(t *testing.T) {
	assert.Equal(t, Unknown, CellView{}.Kind())
	assert.Equal(t, -1, FlaggedCell.Count())
	assert.Equal(t, 8, RevealedCell(8).Count())
	assert.Equal(t, "?", MarkedCell.String())
	assert.Panics(t, func() { RevealedCell(9) })
}
