package grid

import (
	"fmt"
	"iter"
	"slices"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type BoundsError struct {
	X, Y          int
	Width, Height int
}

// [BoundsError] implements [error]
func (e BoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d,%d) is out of bounds of %dx%d grid", e.X, e.Y, e.Width, e.Height,
	)
}

// Grid is a fixed-size two-dimensional container. Cells are stored row by
// row and addressed by column x and row y.
type Grid[T any] struct {
	width, height int
	cells         []T
}

func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// FromCells wraps a row-major slice. The grid takes ownership of cells.
func FromCells[T any](width, height int, cells []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative grid size %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf(
			"%d cells do not fill a %dx%d grid", len(cells), width, height,
		)
	}
	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }
func (g *Grid[T]) Len() int    { return len(g.cells) }

func (g *Grid[T]) Contains(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

func (g *Grid[T]) check(x, y int) error {
	if !g.Contains(x, y) {
		return BoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return nil
}

func (g *Grid[T]) Get(x, y int) (T, error) {
	if err := g.check(x, y); err != nil {
		var zero T
		return zero, err
	}
	return g.cells[y*g.width+x], nil
}

func (g *Grid[T]) Set(x, y int, v T) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	g.cells[y*g.width+x] = v
	return nil
}

// At is Get for points the caller has already validated.
//
// panics [BoundsError]
func (g *Grid[T]) At(p Point) T {
	if err := g.check(p.X, p.Y); err != nil {
		panic(err)
	}
	return g.cells[p.Y*g.width+p.X]
}

// panics [BoundsError]
func (g *Grid[T]) Put(p Point, v T) {
	if err := g.check(p.X, p.Y); err != nil {
		panic(err)
	}
	g.cells[p.Y*g.width+p.X] = v
}

// Neighbors returns the in-bounds cells of the 3x3 block around (x, y),
// excluding (x, y) itself. The block is scanned column by column.
func (g *Grid[T]) Neighbors(x, y int) ([]Point, error) {
	if err := g.check(x, y); err != nil {
		return nil, err
	}
	return g.neighbors(x, y), nil
}

func (g *Grid[T]) neighbors(x, y int) []Point {
	points := make([]Point, 0, 8)
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if (nx != x || ny != y) && g.Contains(nx, ny) {
				points = append(points, Point{nx, ny})
			}
		}
	}
	return points
}

// Rows yields a copy of every row, top to bottom.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := range g.height {
			row := slices.Clone(g.cells[y*g.width : (y+1)*g.width])
			if !yield(row) {
				return
			}
		}
	}
}

// All yields every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(Point{i % g.width, i / g.width}, v) {
				return
			}
		}
	}
}
