package maze

import (
	"slices"

	"github.com/maisem/aoc2024"
)

const (
	StepCost = 1
	TurnCost = 1000
)

// moves are the successors of every state. Turning always comes with a
// step; there is no turning in place.
var moves = [...]struct {
	turn aoc.Turn
	cost int
}{
	{aoc.TurnLeft, TurnCost + StepCost},
	{aoc.Forward, StepCost},
	{aoc.TurnRight, TurnCost + StepCost},
}

// Order selects how the search drains its worklist.
type Order int

const (
	// LowestCostFirst pops the cheapest walker first and stops as soon as
	// every remaining walker costs more than the best finish.
	LowestCostFirst Order = iota
	// ArrivalOrder pops walkers in the order they were created. States are
	// re-expanded whenever their cost improves, so it reaches the same
	// answer as LowestCostFirst with more work.
	ArrivalOrder
)

func (o Order) String() string {
	switch o {
	case LowestCostFirst:
		return "lowest-cost-first"
	case ArrivalOrder:
		return "arrival-order"
	}
	return "unknown"
}

type options struct {
	order  Order
	tracef func(format string, args ...any)
}

// Option configures Walk.
type Option func(*options)

// WithOrder sets the worklist order. The default is LowestCostFirst.
func WithOrder(o Order) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// WithTracef makes Walk report search statistics through f.
func WithTracef(f func(format string, args ...any)) Option {
	return func(opts *options) {
		opts.tracef = f
	}
}

// Walker is a search candidate: the state it reached, what it cost to
// get there, and the walker it stepped from.
type Walker struct {
	aoc.State
	Cost int

	parent *Walker
}

// Parent returns the walker w stepped from, or nil for the first walker.
func (w *Walker) Parent() *Walker {
	return w.parent
}

// Path returns the tiles w visited, from the start to w.Pt.
func (w *Walker) Path() []aoc.Pt {
	var path []aoc.Pt
	for x := w; x != nil; x = x.parent {
		path = append(path, x.Pt)
	}
	slices.Reverse(path)
	return path
}

// Result is the outcome of a single Walk.
type Result struct {
	maze   *Maze
	facing aoc.Direction

	min     int
	reached bool

	// best is the cost memo, keyed by state.
	best map[aoc.State]int
	// arrivals holds every walker that reached a state at its best cost.
	arrivals map[aoc.State][]*Walker
	// expanded records the cost at which each state was last expanded.
	expanded map[aoc.State]int

	popped, pushed int
}

type worklist interface {
	push(*Walker)
	pop() (*Walker, bool)
}

type arrivalQueue struct {
	q aoc.Queue[*Walker]
}

func (a *arrivalQueue) push(w *Walker)       { a.q.Push(w) }
func (a *arrivalQueue) pop() (*Walker, bool) { return a.q.Pop() }

type costQueue struct {
	pq *aoc.PQ[*Walker]
}

func (c *costQueue) push(w *Walker) {
	c.pq.Push(&aoc.PQI[*Walker]{V: w, P: w.Cost})
}

func (c *costQueue) pop() (*Walker, bool) {
	if c.pq.Len() == 0 {
		return nil, false
	}
	return c.pq.Pop().V, true
}

// Walk searches m from its start, initially facing the given direction,
// to its end. The result is unreachable (Cost reports false) if no
// sequence of moves gets there.
func (m *Maze) Walk(facing aoc.Direction, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Result{
		maze:     m,
		facing:   facing,
		best:     make(map[aoc.State]int),
		arrivals: make(map[aoc.State][]*Walker),
		expanded: make(map[aoc.State]int),
	}
	var wl worklist
	switch o.order {
	case ArrivalOrder:
		wl = &arrivalQueue{}
	default:
		wl = &costQueue{pq: aoc.MinQueue[*Walker]()}
	}

	start := &Walker{State: aoc.State{Pt: m.Start, Dir: facing}}
	r.best[start.State] = 0
	wl.push(start)
	r.pushed++

	for {
		w, ok := wl.pop()
		if !ok {
			break
		}
		r.popped++
		if w.Cost > r.best[w.State] {
			continue // superseded by a cheaper walker
		}
		if r.reached && w.Cost > r.min {
			if o.order == LowestCostFirst {
				break
			}
			continue
		}
		r.arrivals[w.State] = append(r.arrivals[w.State], w)
		if w.Pt == m.End {
			if !r.reached || w.Cost < r.min {
				r.min, r.reached = w.Cost, true
			}
			continue
		}
		if c, ok := r.expanded[w.State]; ok && c == w.Cost {
			continue
		}
		r.expanded[w.State] = w.Cost
		r.expand(w, wl)
	}

	if o.tracef != nil {
		o.tracef("walk %v facing %v: %d walkers pushed, %d popped, %d states reached", o.order, facing, r.pushed, r.popped, len(r.best))
		if r.reached {
			o.tracef("walk: min cost %d over %d finishing walkers", r.min, len(r.Optimal()))
		} else {
			o.tracef("walk: end %v not reachable", m.End)
		}
	}
	return r
}

func (r *Result) expand(w *Walker, wl worklist) {
	for _, mv := range moves {
		next, ok := r.maze.Grid.Move(aoc.State{Pt: w.Pt, Dir: w.Dir.Rotate(mv.turn)})
		if !ok || r.maze.Grid.At(next.Pt) == Wall {
			continue
		}
		cost := w.Cost + mv.cost
		if r.reached && cost > r.min {
			continue
		}
		b, seen := r.best[next]
		switch {
		case seen && cost > b:
			continue
		case !seen || cost < b:
			r.best[next] = cost
			delete(r.arrivals, next)
		}
		wl.push(&Walker{State: next, Cost: cost, parent: w})
		r.pushed++
	}
}

// MinCost returns the minimum cost from m's start, facing the given
// direction, to its end. It reports false if the end is not reachable.
func (m *Maze) MinCost(facing aoc.Direction) (int, bool) {
	return m.Walk(facing).Cost()
}

// Cost returns the minimum cost to the end. It reports false if the end
// is not reachable.
func (r *Result) Cost() (int, bool) {
	return r.min, r.reached
}

// Reachable reports whether the walk got to the end.
func (r *Result) Reachable() bool {
	return r.reached
}

// Optimal returns the walkers that reached the end at the minimum cost,
// ordered by the heading they arrived with.
func (r *Result) Optimal() []*Walker {
	if !r.reached {
		return nil
	}
	var out []*Walker
	for _, d := range [...]aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left} {
		for _, w := range r.arrivals[aoc.State{Pt: r.maze.End, Dir: d}] {
			if w.Cost == r.min {
				out = append(out, w)
			}
		}
	}
	return out
}
