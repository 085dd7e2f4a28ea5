// Command day16 solves the reindeer maze: the cheapest route from S to E
// when every turn costs a thousand steps, and how many tiles lie on any
// such route.
package main

import (
	_ "embed"
	"log"

	"github.com/maisem/aoc2024"
	"github.com/maisem/aoc2024/maze"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s *solver) walk() *maze.Result {
	m, err := maze.Parse(s.Input())
	if err != nil {
		log.Fatal(err)
	}
	s.Debugf("maze %v, start %v, end %v", m.Fingerprint(), m.Start, m.End)
	return m.Walk(aoc.East, maze.WithTracef(s.Debugf))
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s *solver) D16p1() any {
	cost, ok := s.walk().Cost()
	if !ok {
		return "unreachable"
	}
	return cost
}

// want=45
func (s *solver) D16p2() any {
	r := s.walk()
	if !r.Reachable() {
		return "unreachable"
	}
	s.Debugf("%s", r.Render())
	return r.BestTileCount()
}
