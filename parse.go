package gocube

import (
	"fmt"
	"unicode"
)

// MaxRepeat is the largest repeat count accepted after a move letter.
const MaxRepeat = 99

// ParseError describes the first fault found in an algorithm string.
type ParseError struct {
	Pos int    // 1-based character position of the fault
	Msg string // Human readable description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gocube: %s at position %d", e.Msg, e.Pos)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}

func parseErr(pos int, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ParseAlgorithm parses an algorithm such as "R U R' U2" into moves.
//
// Letters F B R L U D M E S are accepted in either case. An apostrophe
// directly after the letter reverses the direction, and a repeat count
// may follow (R2, R'2). A repeat count n expands to n copies of the
// quarter-turn move. Whitespace between moves is ignored.
//
// Parsing stops at the first fault, which is returned as a *ParseError.
func ParseAlgorithm(s string) ([]Move, error) {
	input := []rune(s)
	var moves []Move

	i := 0
	for i < len(input) {
		r := input[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}

		m, ok := letterMove(unicode.ToUpper(r))
		if !ok {
			switch {
			case r == '\'':
				return nil, parseErr(i+1, "apostrophe must follow a move")
			case isDigit(r):
				return nil, parseErr(i+1, "repeat count must follow a move")
			default:
				return nil, parseErr(i+1, "invalid character %q", r)
			}
		}
		i++

		if i < len(input) && input[i] == '\'' {
			m.Direction = CounterClockwise
			i++
		}

		repeat := 1
		if i < len(input) && isDigit(input[i]) {
			start := i
			repeat = 0
			for i < len(input) && isDigit(input[i]) {
				repeat = repeat*10 + int(input[i]-'0')
				if repeat > MaxRepeat {
					return nil, parseErr(start+1, "repeat count too large (max %d)", MaxRepeat)
				}
				i++
			}
			if repeat < 1 {
				return nil, parseErr(start+1, "repeat count must be at least 1")
			}
		}

		for n := 0; n < repeat; n++ {
			moves = append(moves, m)
		}
	}

	if len(moves) == 0 {
		return nil, parseErr(1, "enter an algorithm")
	}
	return moves, nil
}

// MustParseAlgorithm is like ParseAlgorithm but panics on error.
// It is intended for algorithms fixed at compile time.
func MustParseAlgorithm(s string) []Move {
	moves, err := ParseAlgorithm(s)
	if err != nil {
		panic(err)
	}
	return moves
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// letterMove returns the clockwise single-turn move for a notation letter.
func letterMove(r rune) (Move, bool) {
	switch r {
	case 'F', 'B', 'R', 'L', 'U', 'D':
		return Move{Kind: KindFace, Face: Face(string(r)), Direction: Clockwise, Turns: 1}, true
	case 'M':
		return Move{Kind: KindSlice, Axis: AxisX, Direction: Clockwise, Turns: 1}, true
	case 'E':
		return Move{Kind: KindSlice, Axis: AxisY, Direction: Clockwise, Turns: 1}, true
	case 'S':
		return Move{Kind: KindSlice, Axis: AxisZ, Direction: Clockwise, Turns: 1}, true
	}
	return Move{}, false
}
