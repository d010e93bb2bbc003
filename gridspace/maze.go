// Package gridspace turns a rectangular maze into a search problem.
//
// A maze is written with one character per cell:
//
//	* start   . free   # wall   o goal
//
// States are positions; rules are the moves Left, Right, Up, Down (plus the
// diagonals under Conn8); a move is valid when its target lies inside the
// grid and is not a wall. The heuristic is the Manhattan (Conn4) or
// Chebyshev (Conn8) distance to the goal times the step cost, which never
// overestimates.
package gridspace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/space"
)

// Maze is an immutable grid with exactly one start and one goal.
// It implements space.Problem.
type Maze struct {
	Width, Height int
	cells         [][]Cell
	start, goal   Position
	conn          Connectivity
	stepCost      float64
	rules         []space.Rule
}

// ParseMaze builds a maze from text rows.
func ParseMaze(rows []string, opts MazeOptions) (*Maze, error) {
	grid := make([][]Cell, len(rows))
	for y, row := range rows {
		grid[y] = make([]Cell, len(row))
		for x := 0; x < len(row); x++ {
			c, err := cellOf(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			grid[y][x] = c
		}
	}

	return NewMaze(grid, opts)
}

// NewMaze builds a maze from a non-empty, rectangular cell grid.
// It deep-copies the input to ensure immutability.
// Complexity: O(W×H) time and memory.
func NewMaze(values [][]Cell, opts MazeOptions) (*Maze, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.StepCost < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadStepCost, opts.StepCost)
	}
	h, w := len(values), len(values[0])
	m := &Maze{
		Width:    w,
		Height:   h,
		cells:    make([][]Cell, h),
		conn:     opts.Conn,
		stepCost: opts.StepCost,
	}
	var starts, goals int
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		m.cells[y] = make([]Cell, w)
		for x, c := range row {
			switch c {
			case Start:
				starts++
				m.start = Position{Row: y, Col: x}
			case Goal:
				goals++
				m.goal = Position{Row: y, Col: x}
			case Free, Wall:
			default:
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrBadSymbol, c, y, x)
			}
			m.cells[y][x] = c
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrMultipleGoals
	}

	rules := opts.Rules
	if len(rules) == 0 {
		rules = DefaultRules(opts.Conn)
	}
	if err := checkRules(rules, opts.Conn); err != nil {
		return nil, err
	}
	m.rules = make([]space.Rule, len(rules))
	for i, r := range rules {
		m.rules[i] = r
	}

	return m, nil
}

// checkRules requires every rule to step to a neighbour under conn and no
// move to be listed twice. The heuristic for conn assumes this.
func checkRules(rules []Rule, conn Connectivity) error {
	seen := make(map[[2]int]bool, len(rules))
	for _, r := range rules {
		dr, dc := abs(r.DRow), abs(r.DCol)
		if dr > 1 || dc > 1 || dr+dc == 0 || (conn == Conn4 && dr+dc == 2) {
			return fmt.Errorf("%w: %s (%d, %d) under %s", ErrRuleConnectivity, r.Name, r.DRow, r.DCol, conn)
		}
		key := [2]int{r.DRow, r.DCol}
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicateRule, r.Name)
		}
		seen[key] = true
	}

	return nil
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// Passable reports whether p is inside the grid and not a wall.
func (m *Maze) Passable(p Position) bool {
	return m.InBounds(p) && m.cells[p.Row][p.Col] != Wall
}

// CellAt returns the content of p, which must be in bounds.
func (m *Maze) CellAt(p Position) Cell { return m.cells[p.Row][p.Col] }

// StartPosition returns the start cell.
func (m *Maze) StartPosition() Position { return m.start }

// GoalPosition returns the goal cell.
func (m *Maze) GoalPosition() Position { return m.goal }

// Rules returns the move rules in application order.
func (m *Maze) Rules() []space.Rule {
	out := make([]space.Rule, len(m.rules))
	copy(out, m.rules)

	return out
}

// Start returns the state at the start cell.
func (m *Maze) Start() space.State { return State{maze: m, Pos: m.start} }

// StateAt returns the state at p.
func (m *Maze) StateAt(p Position) State { return State{maze: m, Pos: p} }

// distance is the admissible estimate from p to the goal.
func (m *Maze) distance(p Position) float64 {
	dr, dc := abs(p.Row-m.goal.Row), abs(p.Col-m.goal.Col)
	if m.conn == Conn8 {
		return float64(max(dr, dc)) * m.stepCost
	}

	return float64(dr+dc) * m.stepCost
}

// String renders the maze in its text form.
func (m *Maze) String() string {
	return strings.Join(m.rows(), "\n")
}

func (m *Maze) rows() []string {
	out := make([]string, m.Height)
	buf := make([]byte, m.Width)
	for y, row := range m.cells {
		for x, c := range row {
			buf[x] = c.Symbol()
		}
		out[y] = string(buf)
	}

	return out
}

// Render draws the maze with every position of p marked 'x'.
func (m *Maze) Render(p space.Path) string {
	grid := make([][]byte, m.Height)
	for y, row := range m.rows() {
		grid[y] = []byte(row)
	}
	for _, s := range p.States() {
		pos := s.(State).Pos
		grid[pos.Row][pos.Col] = 'x'
	}
	lines := make([]string, m.Height)
	for y := range grid {
		lines[y] = string(grid[y])
	}

	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

var _ space.Problem = (*Maze)(nil)
