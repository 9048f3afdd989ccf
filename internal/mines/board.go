package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/vancomm/mines/internal/grid"
)

// Board is the real mine layout. mineCount always equals the number of
// mined cells.
type Board struct {
	cells     *grid.Grid[bool]
	mineCount int
}

func NewBoard(width, height int) *Board {
	return &Board{cells: grid.New(width, height, false)}
}

// GenerateBoard places exactly num mines uniformly at random. When exclude is
// not nil that cell never receives a mine.
func GenerateBoard(
	width, height, num int, exclude *grid.Point, r *rand.Rand,
) (*Board, error) {
	params := Params{Width: width, Height: height, MineCount: num}
	if width <= 0 || height <= 0 {
		return nil, ParamsError{Params: params, reason: "board must not be empty"}
	}
	if num < 0 {
		return nil, ParamsError{Params: params, reason: "mine count must not be negative"}
	}

	free := width * height
	if exclude != nil {
		if !params.PointInBounds(exclude.X, exclude.Y) {
			return nil, grid.BoundsError{
				X: exclude.X, Y: exclude.Y, Width: width, Height: height,
			}
		}
		free--
	}
	if num > free {
		return nil, ParamsError{
			Params: params,
			reason: fmt.Sprintf("at most %d mines fit", free),
			err:    ErrTooManyMines,
		}
	}

	cells := make([]bool, free)
	for i := range num {
		cells[i] = true
	}
	r.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	if exclude != nil {
		cells = slices.Insert(cells, exclude.Y*width+exclude.X, false)
	}

	g, err := grid.FromCells(width, height, cells)
	if err != nil {
		return nil, err
	}
	return &Board{cells: g, mineCount: num}, nil
}

func (b *Board) Width() int     { return b.cells.Width() }
func (b *Board) Height() int    { return b.cells.Height() }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) IsMine(x, y int) (bool, error) {
	return b.cells.Get(x, y)
}

// panics [InvariantError]
func (b *Board) SetMine(x, y int) error {
	return b.flip(x, y, true)
}

// panics [InvariantError]
func (b *Board) ClearMine(x, y int) error {
	return b.flip(x, y, false)
}

func (b *Board) flip(x, y int, mine bool) error {
	prev, err := b.cells.Get(x, y)
	if err != nil {
		return err
	}
	if prev == mine {
		panic(invariant("cell (%d,%d) already has mine = %t", x, y, mine))
	}
	if mine {
		b.mineCount++
	} else {
		b.mineCount--
	}
	return b.cells.Set(x, y, mine)
}

// Mines yields the position of every mine in row-major order.
func (b *Board) Mines() iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		for p, mine := range b.cells.All() {
			if mine && !yield(p) {
				return
			}
		}
	}
}

func (b *Board) isMine(p grid.Point) bool {
	return b.cells.At(p)
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.cells.Rows() {
		for _, mine := range row {
			if mine {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
