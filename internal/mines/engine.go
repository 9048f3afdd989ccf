package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/mines/internal/grid"
)

var Log = logrus.New()

type Status int

const (
	Good Status = iota
	Win
	Boom
)

func (s Status) String() string {
	switch s {
	case Good:
		return "good"
	case Win:
		return "win"
	case Boom:
		return "boom"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single [Engine.Reveal]. Updates maps every newly
// revealed cell to its neighbouring mine count and is set for Good and Win.
// Board holds the full layout and is set for Boom only.
type Result struct {
	Status  Status
	Updates map[grid.Point]int
	Board   *Board
}

func (r Result) Exploded() bool { return r.Status == Boom }
func (r Result) Won() bool      { return r.Status == Win }

// NoOp reports a reveal that changed nothing.
func (r Result) NoOp() bool {
	return r.Status == Good && len(r.Updates) == 0
}

// Engine holds the authoritative state of one game. The mine layout is
// generated on the first reveal so that the first clicked cell is always
// safe. An Engine is not safe for concurrent use.
type Engine struct {
	params    Params
	rnd       *rand.Rand
	generated bool
	board     *Board
	revealed  *grid.Grid[bool]
	remaining int
}

func NewEngine(params Params, r *rand.Rand) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params:    params,
		rnd:       r,
		revealed:  grid.New(params.Width, params.Height, false),
		remaining: params.Cells(),
	}
	return e, nil
}

// NewEngineFromBoard starts a game on a fixed layout. Nothing protects the
// first click. The layout must leave at least one safe cell.
func NewEngineFromBoard(board *Board) (*Engine, error) {
	if board == nil {
		return nil, ErrNoBoard
	}
	params := Params{
		Width:     board.Width(),
		Height:    board.Height(),
		MineCount: board.MineCount(),
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params:    params,
		generated: true,
		board:     board,
		revealed:  grid.New(params.Width, params.Height, false),
		remaining: params.Cells(),
	}
	return e, nil
}

func (e *Engine) Params() Params { return e.params }

// Remaining is the number of cells that are still hidden.
func (e *Engine) Remaining() int { return e.remaining }

// Started reports whether the mine layout has been generated.
func (e *Engine) Started() bool { return e.generated }

// Board returns the mine layout, or nil before the first reveal.
func (e *Engine) Board() *Board { return e.board }

func (e *Engine) IsRevealed(x, y int) (bool, error) {
	return e.revealed.Get(x, y)
}

func (e *Engine) ensureBoard(x, y int) error {
	if e.generated {
		return nil
	}
	w, h, n := e.params.Unpack()
	board, err := GenerateBoard(w, h, n, &grid.Point{X: x, Y: y}, e.rnd)
	if err != nil {
		return err
	}
	e.board = board
	e.generated = true

	Log.WithFields(logrus.Fields{
		"params": e.params.Seed(),
		"start":  grid.Point{X: x, Y: y},
	}).Debug("generated board")
	return nil
}

func (e *Engine) Reveal(x, y int) (Result, error) {
	if !e.revealed.Contains(x, y) {
		return Result{}, grid.BoundsError{
			X: x, Y: y, Width: e.params.Width, Height: e.params.Height,
		}
	}
	if err := e.ensureBoard(x, y); err != nil {
		return Result{}, err
	}

	start := grid.Point{X: x, Y: y}
	if e.board.isMine(start) {
		return Result{Status: Boom, Board: e.board}, nil
	}
	if e.revealed.At(start) {
		return Result{Status: Good, Updates: map[grid.Point]int{}}, nil
	}

	updates := make(map[grid.Point]int)
	count, hidden := e.open(start)
	updates[start] = count

	/*
	 * Zero cells open their hidden neighbours one frontier at a time. The
	 * frontier may contain duplicates; the revealed grid is the only record
	 * of what has been visited.
	 */
	if count == 0 {
		frontier := hidden
		for len(frontier) > 0 {
			var next []grid.Point
			for _, p := range frontier {
				if e.revealed.At(p) {
					continue
				}
				if e.board.isMine(p) {
					panic(invariant("flood fill reached mine at %s", p))
				}
				n, nb := e.open(p)
				updates[p] = n
				if n == 0 {
					next = append(next, nb...)
				}
			}
			frontier = next
		}
	}

	if e.remaining < e.params.MineCount {
		panic(invariant(
			"%d hidden cells left for %d mines", e.remaining, e.params.MineCount,
		))
	}

	status := Good
	if e.remaining == e.params.MineCount {
		status = Win
	}
	return Result{Status: status, Updates: updates}, nil
}

// open reveals p and returns the number of mines among its hidden
// neighbours together with those neighbours.
func (e *Engine) open(p grid.Point) (int, []grid.Point) {
	if e.revealed.At(p) {
		panic(invariant("cell %s revealed twice", p))
	}
	e.revealed.Put(p, true)
	e.remaining--

	nbs, _ := e.revealed.Neighbors(p.X, p.Y)
	hidden := nbs[:0]
	count := 0
	for _, nb := range nbs {
		if e.revealed.At(nb) {
			continue
		}
		hidden = append(hidden, nb)
		if e.board.isMine(nb) {
			count++
		}
	}
	return count, hidden
}
