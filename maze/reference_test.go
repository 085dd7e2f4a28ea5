package maze

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/maisem/aoc2024"
	"github.com/stretchr/testify/assert"
)

// relaxAll computes exact state costs by sweeping every state until
// nothing improves. next(s) yields the neighbors of s with edge costs.
func relaxAll(m *Maze, seed map[aoc.State]int, next func(aoc.State, func(aoc.State, int))) map[aoc.State]int {
	dist := make(map[aoc.State]int)
	for s, c := range seed {
		dist[s] = c
	}
	for changed := true; changed; {
		changed = false
		for s, c := range dist {
			next(s, func(n aoc.State, cost int) {
				if d, ok := dist[n]; !ok || c+cost < d {
					dist[n] = c + cost
					changed = true
				}
			})
		}
	}
	return dist
}

// referenceWalk returns the minimum cost and best tile count of m by
// combining forward costs from the start with backward costs to the end.
func referenceWalk(m *Maze, facing aoc.Direction) (int, int, bool) {
	forward := func(s aoc.State, f func(aoc.State, int)) {
		if s.Pt == m.End {
			return
		}
		for _, mv := range moves {
			n, ok := m.Grid.Move(aoc.State{Pt: s.Pt, Dir: s.Dir.Rotate(mv.turn)})
			if ok && m.Open(n.Pt) {
				f(n, mv.cost)
			}
		}
	}
	// Backward: s steps from p if moving p lands on s.
	backward := func(s aoc.State, f func(aoc.State, int)) {
		prev := s.Pt.Add(s.Dir.Rotate(aoc.Reverse).Delta())
		if !m.Open(prev) || prev == m.End {
			return
		}
		for _, mv := range moves {
			// s.Dir = p.Dir rotated by mv.turn.
			p := aoc.State{Pt: prev, Dir: s.Dir.Rotate((4 - mv.turn) & 3)}
			f(p, mv.cost)
		}
	}
	start := aoc.State{Pt: m.Start, Dir: facing}
	from := relaxAll(m, map[aoc.State]int{start: 0}, forward)

	best := math.MaxInt
	ends := make(map[aoc.State]int)
	for _, d := range [...]aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left} {
		s := aoc.State{Pt: m.End, Dir: d}
		ends[s] = 0
		if c, ok := from[s]; ok && c < best {
			best = c
		}
	}
	if best == math.MaxInt {
		return 0, 0, false
	}
	to := relaxAll(m, ends, backward)

	tiles := make(map[aoc.Pt]bool)
	for s, c := range from {
		if t, ok := to[s]; ok && c+t == best {
			tiles[s.Pt] = true
		}
	}
	return best, len(tiles), true
}

func randomMaze(rng *rand.Rand, w, h int) *Maze {
	grid := aoc.MakeGrid[Cell](w, h)
	var open []aoc.Pt
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if rng.Intn(10) < 7 {
				grid[y][x] = Open
				open = append(open, aoc.Pt{X: x, Y: y})
			}
		}
	}
	if len(open) < 2 {
		grid[1][1], grid[1][2] = Open, Open
		open = []aoc.Pt{{X: 1, Y: 1}, {X: 2, Y: 1}}
	}
	i := rng.Intn(len(open))
	j := rng.Intn(len(open) - 1)
	if j >= i {
		j++
	}
	m, err := New(grid, open[i], open[j])
	if err != nil {
		panic(err)
	}
	return m
}

func TestWalkMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for i := 0; i < 300; i++ {
		m := randomMaze(rng, 4+rng.Intn(5), 4+rng.Intn(5))
		facing := aoc.Direction(rng.Intn(4))
		wantCost, wantTiles, wantOk := referenceWalk(m, facing)
		for _, order := range orders {
			r := m.Walk(facing, WithOrder(order))
			cost, ok := r.Cost()
			msg := fmt.Sprintf("maze %d, %v, facing %v:\n%s", i, order, facing, m)
			if !assert.Equal(t, wantOk, ok, msg) || !ok {
				continue
			}
			assert.Equal(t, wantCost, cost, msg)
			assert.Equal(t, wantTiles, r.BestTileCount(), msg)
		}
	}
}
