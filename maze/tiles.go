package maze

import "github.com/maisem/aoc2024"

// BestTiles returns every tile that lies on at least one minimum-cost
// route from start to end. It is empty if the end is not reachable.
//
// Only one walker per state is expanded, so a walker's own Path covers
// just one route. BestTiles also follows every other walker that tied
// for a state on the way back from the end.
func (r *Result) BestTiles() map[aoc.Pt]bool {
	tiles := make(map[aoc.Pt]bool)
	seen := make(map[aoc.State]bool)
	var st aoc.Stack[aoc.State]
	for _, w := range r.Optimal() {
		if !seen[w.State] {
			seen[w.State] = true
			st.Push(w.State)
		}
	}
	st.While(func(s aoc.State) bool {
		tiles[s.Pt] = true
		for _, w := range r.arrivals[s] {
			if p := w.parent; p != nil && !seen[p.State] {
				seen[p.State] = true
				st.Push(p.State)
			}
		}
		return true
	})
	return tiles
}

// BestTileCount returns len(r.BestTiles()).
func (r *Result) BestTileCount() int {
	return len(r.BestTiles())
}

// Render returns the maze with every best tile drawn as 'O'.
func (r *Result) Render() string {
	tiles := r.BestTiles()
	return r.maze.Grid.Format(func(p aoc.Pt, c Cell) rune {
		if tiles[p] {
			return 'O'
		}
		return rune(c.String()[0])
	})
}

// Tiles returns the union of the tiles visited by walkers.
func Tiles(walkers ...*Walker) map[aoc.Pt]bool {
	tiles := make(map[aoc.Pt]bool)
	for _, w := range walkers {
		for _, p := range w.Path() {
			tiles[p] = true
		}
	}
	return tiles
}
