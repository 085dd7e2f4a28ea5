// Package maze finds minimum-cost routes through a walled grid for a
// walker whose cost depends on its heading: stepping forward costs
// StepCost, and every 90 degree turn adds TurnCost.
//
// A Maze is immutable once built. Each call to Walk owns its own cost
// table, so one parsed Maze can be queried any number of times.
package maze

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/maisem/aoc2024"
	"tailscale.com/util/deephash"
)

var (
	// ErrMalformedInput indicates an unrecognized character in maze text.
	ErrMalformedInput = errors.New("maze: malformed input")
	// ErrInvalidMaze indicates a maze that cannot be searched: empty,
	// ragged, or with a missing or misplaced start or end.
	ErrInvalidMaze = errors.New("maze: invalid maze")
)

// Cell is a single maze tile.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Maze is the topology of a maze plus its start and end tiles.
type Maze struct {
	Grid       aoc.Grid[Cell]
	Start, End aoc.Pt
}

// Parse reads a maze where '#' is a wall, '.' is open, and 'S' and 'E'
// mark the single start and end tiles. Blank lines are ignored.
func Parse(text []byte) (*Maze, error) {
	var (
		grid               aoc.Grid[Cell]
		start, end         aoc.Pt
		haveStart, haveEnd bool
	)
	for _, line := range bytes.Split(text, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		y := len(grid)
		row := make([]Cell, len(line))
		for x, ch := range line {
			p := aoc.Pt{X: x, Y: y}
			switch ch {
			case '#':
				row[x] = Wall
			case '.':
				row[x] = Open
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %d,%d", ErrInvalidMaze, x, y)
				}
				start, haveStart = p, true
				row[x] = Open
			case 'E':
				if haveEnd {
					return nil, fmt.Errorf("%w: second end at %d,%d", ErrInvalidMaze, x, y)
				}
				end, haveEnd = p, true
				row[x] = Open
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrMalformedInput, ch, y, x)
			}
		}
		grid = append(grid, row)
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no start", ErrInvalidMaze)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%w: no end", ErrInvalidMaze)
	}
	return New(grid, start, end)
}

// New validates grid and returns a Maze over it. The grid must be
// non-empty and rectangular, and start and end must be open tiles.
// New does not copy grid; callers must not modify it afterwards.
func New(grid aoc.Grid[Cell], start, end aoc.Pt) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidMaze)
	}
	w := len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns; want %d", ErrInvalidMaze, y, len(row), w)
		}
	}
	for _, p := range []struct {
		name string
		pt   aoc.Pt
	}{{"start", start}, {"end", end}} {
		c, ok := grid.AtOk(p.pt)
		if !ok {
			return nil, fmt.Errorf("%w: %s %v is off the grid", ErrInvalidMaze, p.name, p.pt)
		}
		if c == Wall {
			return nil, fmt.Errorf("%w: %s %v is a wall", ErrInvalidMaze, p.name, p.pt)
		}
	}
	return &Maze{Grid: grid, Start: start, End: end}, nil
}

// Open reports whether p is on the grid and not a wall.
func (m *Maze) Open(p aoc.Pt) bool {
	c, ok := m.Grid.AtOk(p)
	return ok && c == Open
}

// String renders m in the same form Parse accepts.
func (m *Maze) String() string {
	return m.Grid.Format(func(p aoc.Pt, c Cell) rune {
		switch p {
		case m.Start:
			return 'S'
		case m.End:
			return 'E'
		}
		return rune(c.String()[0])
	})
}

// Fingerprint returns a hash of the maze topology and its endpoints.
func (m *Maze) Fingerprint() deephash.Sum {
	v := struct {
		Grid       string
		Start, End aoc.Pt
	}{m.Grid.Hash().String(), m.Start, m.End}
	return deephash.Hash(&v)
}
