package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/mines/internal/grid"
	"github.com/vancomm/mines/internal/mines"
)

var Log = logrus.New()

var ErrGameOver = errors.New("game is over")

type State int

const (
	Ready State = iota
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

// Session drives one game at a time on behalf of a single player: it routes
// moves to the engine, mirrors results into the client state and keeps the
// timer. Restart replaces the game wholesale. A Session is not safe for
// concurrent use.
type Session struct {
	ID uuid.UUID

	rnd    *rand.Rand
	engine *mines.Engine
	client *mines.ClientState
	timer  *Timer
	state  State
	board  *mines.Board // set when the game is lost
	left   int          // mines-left counter, moved only by flag deltas
	log    *logrus.Entry
}

func New(params mines.Params, r *rand.Rand, clock Clock) (*Session, error) {
	s := &Session{
		ID:    uuid.New(),
		rnd:   r,
		timer: NewTimer(clock),
	}
	s.log = Log.WithField("session", s.ID.String())
	if err := s.Restart(params); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart throws away the current game and sets up a new one.
func (s *Session) Restart(params mines.Params) error {
	engine, err := mines.NewEngine(params, s.rnd)
	if err != nil {
		return err
	}
	s.engine = engine
	s.client = mines.NewClientState(params.Width, params.Height)
	s.timer.Reset()
	s.state = Ready
	s.board = nil
	s.left = params.MineCount

	s.log.WithField("params", params.Seed()).Debug("new game")
	return nil
}

func (s *Session) Params() mines.Params        { return s.engine.Params() }
func (s *Session) State() State                { return s.state }
func (s *Session) Client() *mines.ClientState  { return s.client }
func (s *Session) Elapsed() time.Duration      { return s.timer.Elapsed() }
func (s *Session) TimerState() TimerState      { return s.timer.State() }
func (s *Session) ExplodedBoard() *mines.Board { return s.board }

// MinesLeft starts at the mine count and moves only by the deltas of flag
// cycles. It goes negative when the player over-flags, and a flag uncovered
// by a flood fill still counts.
func (s *Session) MinesLeft() int {
	return s.left
}

// Open reveals (x, y). The first open of a game starts the timer.
func (s *Session) Open(x, y int) (mines.Result, error) {
	if s.state.Over() {
		return mines.Result{}, ErrGameOver
	}
	res, err := s.engine.Reveal(x, y)
	if err != nil {
		return res, err
	}
	switch s.state {
	case Ready:
		s.state = Playing
		s.timer.Start()
	case Playing:
		s.timer.Resume()
	}

	switch res.Status {
	case mines.Win:
		// finish before touching the client state so the time is exact
		s.finish(Won)
	case mines.Boom:
		s.board = res.Board
		s.finish(Lost)
	}

	if err := s.client.ApplyResult(res); err != nil {
		return res, fmt.Errorf("unable to apply reveal result: %w", err)
	}
	return res, nil
}

// Flag cycles the annotation of (x, y) and returns the change to the
// mines-left counter.
func (s *Session) Flag(x, y int) (mines.CellView, int, error) {
	if s.state.Over() {
		return mines.CellView{}, 0, ErrGameOver
	}
	view, delta, err := s.client.CycleFlag(x, y)
	if err != nil {
		return view, 0, err
	}
	s.left += delta
	if s.state == Playing {
		s.timer.Resume()
	}
	return view, delta, nil
}

// Chord opens the unflagged neighbours of a satisfied number. It stops at
// the first move that ends the game.
func (s *Session) Chord(x, y int) ([]grid.Point, error) {
	if s.state.Over() {
		return nil, ErrGameOver
	}
	targets, err := s.client.ChordReveal(x, y)
	if err != nil {
		return nil, err
	}
	if s.state == Playing {
		s.timer.Resume()
	}
	var opened []grid.Point
	for _, p := range targets {
		if _, err := s.Open(p.X, p.Y); err != nil {
			return opened, err
		}
		opened = append(opened, p)
		if s.state.Over() {
			break
		}
	}
	return opened, nil
}

// Pause freezes the timer. The next move resumes it.
func (s *Session) Pause() {
	s.timer.Pause()
}

func (s *Session) Resume() {
	s.timer.Resume()
}

func (s *Session) finish(state State) {
	elapsed := s.timer.Stop()
	s.state = state
	s.log.WithFields(logrus.Fields{
		"params":  s.engine.Params().Seed(),
		"state":   state.String(),
		"elapsed": elapsed.String(),
	}).Info("game over")
}
