package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid. Rows are indexed by Pt.Y and columns by Pt.X.
type Grid[T any] [][]T

// At returns the value at p. It panics if p is out of bounds.
func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// Set replaces the value at p. It panics if p is out of bounds.
func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false instead of panicking when p is
// outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order until f returns false.
func (g Grid[T]) ForEach(f func(Pt, T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// ForNeighborCells calls f with the in-bounds axis-aligned neighbors of p
// and their values.
func (g Grid[T]) ForNeighborCells(p Pt, f func(Pt, T) (keepGoing bool)) {
	p.ForImmediateNeighbors(func(n Pt) bool {
		v, ok := g.AtOk(n)
		if !ok {
			return true
		}
		return f(n, v)
	})
}

// Format renders the grid one row per line using cell to pick each rune.
func (g Grid[T]) Format(cell func(Pt, T) rune) string {
	var sb strings.Builder
	for y, row := range g {
		for x, v := range row {
			sb.WriteRune(cell(Pt{x, y}, v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// hashers caches deephash hashers per grid type. Not safe for concurrent use.
var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// State is a point and the direction it faces.
type State struct {
	Pt  Pt
	Dir Direction
}

func (s State) String() string {
	return fmt.Sprintf("%d,%d%v", s.Pt.X, s.Pt.Y, s.Dir)
}

// Move advances s one cell in the direction it faces. It reports false if
// that leaves the grid.
func (g Grid[T]) Move(s State) (State, bool) {
	s.Pt = s.Pt.Add(s.Dir.Delta())
	if !g.InBounds(s.Pt) {
		return State{}, false
	}
	return s, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Compass aliases.
const (
	North = Up
	East  = Right
	South = Down
	West  = Left
)

// Turn is a rotation relative to the current direction.
type Turn int

const (
	Forward Turn = iota
	TurnRight
	Reverse
	TurnLeft
)

// Rotate returns the direction after applying t.
func (d Direction) Rotate(t Turn) Direction {
	return Direction((int(d) + int(t)) & 3)
}

// Delta returns the unit step for d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

func (t Turn) String() string {
	switch t {
	case Forward:
		return "forward"
	case TurnRight:
		return "right"
	case Reverse:
		return "reverse"
	case TurnLeft:
		return "left"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// ForImmediateNeighbors calls f with the four axis-aligned neighbors of p.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
