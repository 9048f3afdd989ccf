package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/mines/internal/grid"
)

type CellKind int8

const (
	Unknown CellKind = iota
	Flagged
	Marked
	Revealed
)

func (k CellKind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Flagged:
		return "flagged"
	case Marked:
		return "marked"
	case Revealed:
		return "revealed"
	default:
		return "invalid"
	}
}

// CellView is what the player knows about a cell. The zero value is an
// Unknown cell; a mine count is only carried by Revealed cells.
type CellView struct {
	kind  CellKind
	count int8
}

var (
	UnknownCell = CellView{kind: Unknown}
	FlaggedCell = CellView{kind: Flagged}
	MarkedCell  = CellView{kind: Marked}
)

func RevealedCell(count int) CellView {
	if count < 0 || count > 8 {
		panic(fmt.Sprintf("mines: neighbour count %d out of range", count))
	}
	return CellView{kind: Revealed, count: int8(count)}
}

func (c CellView) Kind() CellKind { return c.kind }

// Count returns the neighbouring mine count of a Revealed cell and -1 for
// any other cell.
func (c CellView) Count() int {
	if c.kind != Revealed {
		return -1
	}
	return int(c.count)
}

func (c CellView) String() string {
	switch c.kind {
	case Flagged:
		return "F"
	case Marked:
		return "?"
	case Revealed:
		return strconv.Itoa(int(c.count))
	default:
		return "_"
	}
}

// ClientState is the player's shadow copy of the board. It only learns cell
// counts from engine results; flags and marks are its own bookkeeping.
type ClientState struct {
	cells *grid.Grid[CellView]
	flags int
}

func NewClientState(width, height int) *ClientState {
	return &ClientState{cells: grid.New(width, height, UnknownCell)}
}

func (s *ClientState) Width() int  { return s.cells.Width() }
func (s *ClientState) Height() int { return s.cells.Height() }

// Flags is the number of cells currently Flagged. A reveal over a flag
// lowers it.
func (s *ClientState) Flags() int { return s.flags }

func (s *ClientState) Cell(x, y int) (CellView, error) {
	return s.cells.Get(x, y)
}

func (s *ClientState) Rows() iter.Seq[[]CellView] {
	return s.cells.Rows()
}

// ApplyResult copies the revealed counts of res into the shadow grid. An
// explosion leaves the grid untouched; showing the mines is up to the caller.
func (s *ClientState) ApplyResult(res Result) error {
	if res.Status == Boom {
		return nil
	}
	for p, count := range res.Updates {
		prev, err := s.cells.Get(p.X, p.Y)
		if err != nil {
			return err
		}
		if prev.kind == Flagged {
			s.flags--
		}
		s.cells.Put(p, RevealedCell(count))
	}
	return nil
}

// CycleFlag moves a hidden cell through Unknown -> Flagged -> Marked ->
// Unknown. delta is -1 when a flag is placed and +1 when one is removed, so
// that it can be added to a mines-left counter. Revealed cells are left
// alone.
func (s *ClientState) CycleFlag(x, y int) (next CellView, delta int, err error) {
	cur, err := s.cells.Get(x, y)
	if err != nil {
		return CellView{}, 0, err
	}
	switch cur.kind {
	case Unknown:
		next, delta = FlaggedCell, -1
		s.flags++
	case Flagged:
		next, delta = MarkedCell, +1
		s.flags--
	case Marked:
		next = UnknownCell
	default:
		return cur, 0, nil
	}
	s.cells.Set(x, y, next)
	return next, delta, nil
}

// ChordReveal returns the cells to reveal when the player chords on (x, y).
// The cell must be revealed with a nonzero count and exactly that many of
// its hidden neighbours must be flagged; otherwise nothing is returned.
func (s *ClientState) ChordReveal(x, y int) ([]grid.Point, error) {
	cur, err := s.cells.Get(x, y)
	if err != nil {
		return nil, err
	}
	if cur.kind != Revealed || cur.count == 0 {
		return nil, nil
	}

	nbs, err := s.cells.Neighbors(x, y)
	if err != nil {
		return nil, err
	}
	var (
		flagged int
		targets []grid.Point
	)
	for _, nb := range nbs {
		switch s.cells.At(nb).kind {
		case Flagged:
			flagged++
		case Unknown, Marked:
			targets = append(targets, nb)
		}
	}
	if flagged != int(cur.count) {
		return nil, nil
	}
	return targets, nil
}

func (s *ClientState) String() string {
	var sb strings.Builder
	for row := range s.cells.Rows() {
		for _, c := range row {
			sb.WriteByte('|')
			sb.WriteString(c.String())
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
