package handlers

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/classic-mines/internal/mines"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidNargs    = errors.New("invalid number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidPosition = errors.New("invalid square coordinates")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"r": 0,
}

// CommandError points at the offending line of a batch.
type CommandError struct {
	Loc int
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Loc, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: first argument must be an int", ErrInvalidArgument)
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: second argument must be an int", ErrInvalidArgument)
		return
	}
	return
}

// ParseCommand turns a single command line into an intent. ok is false for
// commands that only fetch state.
//
//	g     // fetch game state
//	o x y // open the square at x:y
//	f x y // toggle a flag on the square at x:y
//	r     // start a new game
func ParseCommand(g mines.Geometry, c string) (in mines.Intent, ok bool, err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return in, false, ErrUnknownCommand
	}
	nargs, known := commandNargs[parts[0]]
	if !known {
		return in, false, ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return in, false, ErrInvalidNargs
	}
	switch parts[0] {
	case "g":
		return in, false, nil
	case "r":
		return mines.ResetIntent(), true, nil
	}
	x, y, err := parseXY(parts[1:])
	if err != nil {
		return in, false, err
	}
	if !g.ValidatePoint(x, y) {
		return in, false, ErrInvalidPosition
	}
	if parts[0] == "o" {
		return mines.LeftPickAt(g.Index(x, y)), true, nil
	}
	return mines.RightPickAt(g.Index(x, y)), true, nil
}

// ParseCommands parses newline separated commands, skipping blank lines.
// Nothing is returned
// unless every line is valid; the first bad line is reported as a
// [*CommandError].
func ParseCommands(g mines.Geometry, text string) ([]mines.Intent, error) {
	var intents []mines.Intent
	for i, c := range byPiece(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		in, ok, err := ParseCommand(g, c)
		if err != nil {
			return nil, &CommandError{Loc: i, Err: err}
		}
		if ok {
			intents = append(intents, in)
		}
	}
	return intents, nil
}
