package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

var (
	Beginner     = Params{Width: 9, Height: 9, MineCount: 10}
	Intermediate = Params{Width: 16, Height: 16, MineCount: 40}
	Expert       = Params{Width: 30, Height: 16, MineCount: 99}
)

func Presets() map[string]Params {
	return map[string]Params{
		"beginner":     Beginner,
		"intermediate": Intermediate,
		"expert":       Expert,
	}
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p Params) Cells() int {
	return p.Width * p.Height
}

// Validate checks that the board is non-empty and leaves at least one safe
// cell for the first click.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0:
		return ParamsError{Params: p, reason: "width must be positive"}
	case p.Height <= 0:
		return ParamsError{Params: p, reason: "height must be positive"}
	case p.MineCount < 0:
		return ParamsError{Params: p, reason: "mine count must not be negative"}
	case p.MineCount >= p.Cells():
		return ParamsError{
			Params: p,
			reason: fmt.Sprintf("mine count must be below %d", p.Cells()),
			err:    ErrTooManyMines,
		}
	}
	return nil
}

func (p Params) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

// ParseSeed reads params in the "width:height:mines" form produced by
// [Params.Seed]. A preset name is accepted as well.
func ParseSeed(seed string) (Params, error) {
	if preset, ok := Presets()[strings.ToLower(seed)]; ok {
		return preset, nil
	}
	var p Params
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return Params{}, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
