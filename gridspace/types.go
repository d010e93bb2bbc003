// Package gridspace defines core types, options, and sentinel errors for
// maze search problems.
package gridspace

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridspace: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridspace: all rows must have the same length")
	// ErrBadSymbol indicates a character or cell value outside the maze alphabet.
	ErrBadSymbol = errors.New("gridspace: unknown maze symbol")
	// ErrNoStart indicates the maze has no start cell.
	ErrNoStart = errors.New("gridspace: maze has no start cell")
	// ErrNoGoal indicates the maze has no goal cell.
	ErrNoGoal = errors.New("gridspace: maze has no goal cell")
	// ErrMultipleStarts indicates more than one start cell.
	ErrMultipleStarts = errors.New("gridspace: maze has more than one start cell")
	// ErrMultipleGoals indicates more than one goal cell.
	ErrMultipleGoals = errors.New("gridspace: maze has more than one goal cell")
	// ErrBadStepCost indicates a negative step cost.
	ErrBadStepCost = errors.New("gridspace: step cost must be non-negative")
	// ErrRuleConnectivity indicates a rule that moves farther than one cell,
	// or diagonally under Conn4.
	ErrRuleConnectivity = errors.New("gridspace: rule does not fit the connectivity")
	// ErrDuplicateRule indicates the same move listed twice in the rule order.
	ErrDuplicateRule = errors.New("gridspace: duplicate rule")
)

// Cell is the content of one maze cell. The numeric values match the
// integer grid encoding: 0 start, 1 free, 2 wall, 3 goal.
type Cell int

const (
	Start Cell = iota
	Free
	Wall
	Goal
)

// symbols maps Cell values to their text form.
var symbols = [...]byte{Start: '*', Free: '.', Wall: '#', Goal: 'o'}

// Symbol returns the text form of c: '*', '.', '#' or 'o'.
func (c Cell) Symbol() byte { return symbols[c] }

// cellOf parses a text symbol.
func cellOf(b byte) (Cell, error) {
	for c, s := range symbols {
		if s == b {
			return Cell(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadSymbol, b)
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 moves left, right, up, down.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal moves.
	Conn8
)

func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}

	return "Conn4"
}

// Position is a (row, column) coordinate.
type Position struct {
	Row, Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.Row, p.Col) }

// MazeOptions contains tunable parameters of a maze problem.
type MazeOptions struct {
	// Conn chooses 4- or 8-directional moves.
	Conn Connectivity
	// StepCost is the cost of every move; it must be non-negative.
	StepCost float64
	// Rules overrides the rule order. Empty selects DefaultRules(Conn).
	// Every rule must step to a neighbour under Conn and appear once.
	Rules []Rule
}

// DefaultMazeOptions returns MazeOptions with Conn4, StepCost 1 and the
// default rule order.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{
		Conn:     Conn4,
		StepCost: 1,
	}
}
