package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/session"
)

type Name string

const (
	Noop    Name = "g"
	Open    Name = "o"
	Flag    Name = "f"
	Chord   Name = "c"
	NewGame Name = "n"
	Pause   Name = "p"
	Resume  Name = "u"
)

// Maps known commands to the accepted numbers of arguments
var commandNargs = map[Name][]int{
	Noop:    {0},
	Open:    {2},
	Flag:    {2},
	Chord:   {2},
	NewGame: {0, 1},
	Pause:   {0},
	Resume:  {0},
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

type Command struct {
	Name Name
	X, Y int
	// Params is set for NewGame with an argument.
	Params *mines.Params
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// Parse reads a single command line such as "o 3 4" or "n 16:16:40".
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}
	name, args := Name(parts[0]), parts[1:]
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	valid := false
	for _, n := range nargs {
		valid = valid || n == len(args)
	}
	if !valid {
		return Command{}, fmt.Errorf("%w for %q", ErrNargs, name)
	}

	cmd := Command{Name: name}
	switch name {
	case Open, Flag, Chord:
		x, y, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	case NewGame:
		if len(args) == 1 {
			params, err := mines.ParseSeed(args[0])
			if err != nil {
				return Command{}, err
			}
			cmd.Params = &params
		}
	}
	return cmd, nil
}

// Execute applies cmd to s. A NewGame without params restarts with the
// current ones.
func Execute(s *session.Session, cmd Command) error {
	switch cmd.Name {
	case Noop:
		return nil
	case Open:
		_, err := s.Open(cmd.X, cmd.Y)
		return err
	case Flag:
		_, _, err := s.Flag(cmd.X, cmd.Y)
		return err
	case Chord:
		_, err := s.Chord(cmd.X, cmd.Y)
		return err
	case NewGame:
		params := s.Params()
		if cmd.Params != nil {
			params = *cmd.Params
		}
		return s.Restart(params)
	case Pause:
		s.Pause()
		return nil
	case Resume:
		s.Resume()
		return nil
	}
	return ErrUnknownCommand
}

// Lines yields the non-empty trimmed lines of a message.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i, rest := 0, text
		found := true
		var piece string
		for found {
			piece, rest, found = strings.Cut(rest, "\n")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
