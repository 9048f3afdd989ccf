package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/mines/internal/grid"
)

// newRiggedEngine returns an engine whose board is already laid out.
func newRiggedEngine(t *testing.T, w, h int, mines ...grid.Point) *Engine {
	t.Helper()
	board := NewBoard(w, h)
	for _, p := range mines {
		require.NoError(t, board.SetMine(p.X, p.Y))
	}
	e, err := NewEngineFromBoard(board)
	require.NoError(t, err)
	return e
}

func neighbourMines(b *Board, p grid.Point) int {
	n := 0
	for nx := p.X - 1; nx <= p.X+1; nx++ {
		for ny := p.Y - 1; ny <= p.Y+1; ny++ {
			if mine, err := b.IsMine(nx, ny); err == nil && mine {
				n++
			}
		}
	}
	return n
}

// expectedOpening computes the cells a click on p must reveal with a plain
// recursive walk.
func expectedOpening(b *Board, revealed map[grid.Point]bool, p grid.Point, out map[grid.Point]bool) {
	if revealed[p] || out[p] {
		return
	}
	out[p] = true
	if neighbourMines(b, p) != 0 {
		return
	}
	for nx := p.X - 1; nx <= p.X+1; nx++ {
		for ny := p.Y - 1; ny <= p.Y+1; ny++ {
			if 0 <= nx && nx < b.Width() && 0 <= ny && ny < b.Height() {
				expectedOpening(b, revealed, grid.Point{X: nx, Y: ny}, out)
			}
		}
	}
}

func TestNewEngineParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		ok     bool
	}{
		{"beginner", Beginner, true},
		{"no mines", Params{Width: 1, Height: 1, MineCount: 0}, true},
		{"zero width", Params{Width: 0, Height: 5, MineCount: 1}, false},
		{"zero height", Params{Width: 5, Height: 0, MineCount: 1}, false},
		{"negative mines", Params{Width: 5, Height: 5, MineCount: -1}, false},
		{"full board", Params{Width: 2, Height: 2, MineCount: 4}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := NewEngine(test.params, rand.New(rand.NewPCG(1, 2)))
			if test.ok {
				require.NoError(t, err)
				assert.False(t, e.Started())
				assert.Nil(t, e.Board())
				assert.Equal(t, test.params.Cells(), e.Remaining())
			} else {
				var pe ParamsError
				assert.True(t, errors.As(err, &pe))
			}
		})
	}
}

func TestNewEngineFromBoard(t *testing.T) {
	_, err := NewEngineFromBoard(nil)
	assert.ErrorIs(t, err, ErrNoBoard)

	full := NewBoard(2, 1)
	require.NoError(t, full.SetMine(0, 0))
	require.NoError(t, full.SetMine(1, 0))
	_, err = NewEngineFromBoard(full)
	assert.ErrorIs(t, err, ErrTooManyMines)

	_, err = NewEngineFromBoard(NewBoard(0, 3))
	var pe ParamsError
	assert.ErrorAs(t, err, &pe)

	e, err := NewEngineFromBoard(NewBoard(2, 2))
	require.NoError(t, err)
	assert.True(t, e.Started())
	assert.Equal(t, 4, e.Remaining())
	assert.Equal(t, Params{Width: 2, Height: 2, MineCount: 0}, e.Params())
}

func TestRevealFloodFillColumnOfMines(t *testing.T) {
	e := newRiggedEngine(t, 3, 3,
		grid.Point{X: 2, Y: 0}, grid.Point{X: 2, Y: 1}, grid.Point{X: 2, Y: 2},
	)

	res, err := e.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Win, res.Status)
	assert.Equal(t, map[grid.Point]int{
		{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 2,
		{X: 0, Y: 1}: 0, {X: 1, Y: 1}: 3,
		{X: 0, Y: 2}: 0, {X: 1, Y: 2}: 2,
	}, res.Updates)
	assert.Equal(t, 3, e.Remaining())
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	e := newRiggedEngine(t, 3, 3, grid.Point{X: 2, Y: 0}, grid.Point{X: 2, Y: 1})

	res, err := e.Reveal(0, 0)
	require.NoError(t, err)

	// (2,2) borders only numbered cells and stays hidden
	assert.Equal(t, Good, res.Status)
	assert.Equal(t, map[grid.Point]int{
		{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 2,
		{X: 0, Y: 1}: 0, {X: 1, Y: 1}: 2,
		{X: 0, Y: 2}: 0, {X: 1, Y: 2}: 1,
	}, res.Updates)
	assert.Equal(t, 3, e.Remaining())

	res, err = e.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Win, res.Status)
	assert.Equal(t, map[grid.Point]int{{X: 2, Y: 2}: 1}, res.Updates)
}

func TestRevealWinOnTwoCells(t *testing.T) {
	e, err := NewEngine(Params{Width: 2, Height: 1, MineCount: 1}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	res, err := e.Reveal(0, 0)
	require.NoError(t, err)
	assert.True(t, res.Won())
	assert.Equal(t, map[grid.Point]int{{X: 0, Y: 0}: 1}, res.Updates)

	mine, err := e.Board().IsMine(1, 0)
	require.NoError(t, err)
	assert.True(t, mine)
}

func TestRevealIsIdempotent(t *testing.T) {
	e := newRiggedEngine(t, 4, 4, grid.Point{X: 3, Y: 3})

	first, err := e.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, map[grid.Point]int{{X: 2, Y: 2}: 1}, first.Updates)
	remaining := e.Remaining()

	again, err := e.Reveal(2, 2)
	require.NoError(t, err)
	assert.True(t, again.NoOp())
	assert.Equal(t, Good, again.Status)
	assert.Empty(t, again.Updates)
	assert.NotNil(t, again.Updates)
	assert.Equal(t, remaining, e.Remaining())
}

func TestRevealBoom(t *testing.T) {
	e := newRiggedEngine(t, 3, 3, grid.Point{X: 1, Y: 1})

	res, err := e.Reveal(1, 1)
	require.NoError(t, err)
	assert.True(t, res.Exploded())
	assert.Nil(t, res.Updates)
	require.NotNil(t, res.Board)
	assert.Equal(t, "...\n.*.\n...\n", res.Board.String())
	assert.Equal(t, 9, e.Remaining())
}

func TestRevealOutOfBounds(t *testing.T) {
	e, err := NewEngine(Beginner, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	for _, p := range []grid.Point{{X: -1, Y: 0}, {X: 0, Y: 9}, {X: 9, Y: 9}} {
		_, err := e.Reveal(p.X, p.Y)
		var be grid.BoundsError
		assert.True(t, errors.As(err, &be), "reveal %s", p)
	}
	assert.False(t, e.Started(), "a rejected click must not generate the board")
}

func TestFirstRevealIsSafe(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := Params{Width: 5, Height: 5, MineCount: 24}
	for sx := range params.Width {
		for sy := range params.Height {
			e, err := NewEngine(params, r)
			require.NoError(t, err)

			res, err := e.Reveal(sx, sy)
			require.NoError(t, err)
			assert.True(t, res.Won(), "only safe cell at %d:%d", sx, sy)
			assert.Equal(t, 24, e.Board().MineCount())
		}
	}
}

func TestFloodFillProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for i := range 200 {
		params := Params{Width: 4 + r.IntN(20), Height: 4 + r.IntN(20)}
		params.MineCount = r.IntN(params.Cells() / 4)
		e, err := NewEngine(params, r)
		require.NoError(t, err)

		revealed := make(map[grid.Point]bool)
		for range 10 {
			click := grid.Point{X: r.IntN(params.Width), Y: r.IntN(params.Height)}
			before := e.Remaining()

			res, err := e.Reveal(click.X, click.Y)
			require.NoError(t, err)
			if res.Exploded() {
				break
			}

			want := make(map[grid.Point]bool)
			expectedOpening(e.Board(), revealed, click, want)

			require.Len(t, res.Updates, len(want), "game %d click %s", i, click)
			assert.Equal(t, before-len(res.Updates), e.Remaining())
			for p, n := range res.Updates {
				assert.True(t, want[p], "unexpected update %s", p)
				assert.False(t, revealed[p], "cell %s revealed twice", p)
				assert.Equal(t, neighbourMines(e.Board(), p), n, "count of %s", p)
				revealed[p] = true
			}
			assert.Equal(t, e.Remaining() == params.MineCount, res.Won())
			if res.Won() {
				break
			}
		}
	}
}

func TestParseSeed(t *testing.T) {
	p, err := ParseSeed("16:16:40")
	require.NoError(t, err)
	assert.Equal(t, Intermediate, p)
	assert.Equal(t, "16:16:40", p.Seed())

	p, err = ParseSeed("Expert")
	require.NoError(t, err)
	assert.Equal(t, Expert, p)

	_, err = ParseSeed("9:9")
	assert.Error(t, err)

	_, err = ParseSeed("2:2:4")
	assert.Error(t, err)
}
