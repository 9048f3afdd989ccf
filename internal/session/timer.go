package session

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

type TimerState int

const (
	Stopped TimerState = iota
	Running
	Paused
)

func (s TimerState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "invalid"
	}
}

// Timer measures play time. Time spent paused is not counted.
type Timer struct {
	clock   Clock
	state   TimerState
	since   time.Time
	elapsed time.Duration
}

func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	return &Timer{clock: clock}
}

func (t *Timer) State() TimerState { return t.state }

// Start resets the timer and starts counting.
func (t *Timer) Start() {
	t.elapsed = 0
	t.since = t.clock.Now()
	t.state = Running
}

func (t *Timer) Pause() {
	if t.state != Running {
		return
	}
	t.elapsed += t.clock.Now().Sub(t.since)
	t.state = Paused
}

func (t *Timer) Resume() {
	if t.state != Paused {
		return
	}
	t.since = t.clock.Now()
	t.state = Running
}

// Stop freezes the timer and returns the total time counted since Start.
func (t *Timer) Stop() time.Duration {
	t.Pause()
	t.state = Stopped
	return t.elapsed
}

// Reset stops the timer and clears the counted time.
func (t *Timer) Reset() {
	t.state = Stopped
	t.elapsed = 0
}

func (t *Timer) Elapsed() time.Duration {
	if t.state == Running {
		return t.elapsed + t.clock.Now().Sub(t.since)
	}
	return t.elapsed
}
