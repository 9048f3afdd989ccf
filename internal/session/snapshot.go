package session

import (
	"github.com/vancomm/mines/internal/grid"
)

// Snapshot is the player-facing view of a session.
type Snapshot struct {
	SessionID string       `json:"session_id"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	MineCount int          `json:"mine_count"`
	MinesLeft int          `json:"mines_left"`
	State     string       `json:"state"`
	Timer     string       `json:"timer"`
	ElapsedMs int64        `json:"elapsed_ms"`
	Grid      []string     `json:"grid"`
	Mines     []grid.Point `json:"mines,omitempty"`
}

// Snapshot renders every row of the client state as a string of one-rune
// cells: "_" unknown, "F" flag, "?" mark, "0"-"8" revealed.
func (s *Session) Snapshot() Snapshot {
	params := s.engine.Params()
	snap := Snapshot{
		SessionID: s.ID.String(),
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount,
		MinesLeft: s.MinesLeft(),
		State:     s.state.String(),
		Timer:     s.timer.State().String(),
		ElapsedMs: s.timer.Elapsed().Milliseconds(),
		Grid:      make([]string, 0, params.Height),
	}
	for row := range s.client.Rows() {
		line := make([]byte, 0, len(row))
		for _, c := range row {
			line = append(line, c.String()...)
		}
		snap.Grid = append(snap.Grid, string(line))
	}
	if s.board != nil {
		for p := range s.board.Mines() {
			snap.Mines = append(snap.Mines, p)
		}
	}
	return snap
}
