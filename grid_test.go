package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGridAtOk(t *testing.T) {
	g := Grid[int]{
		{1, 2, 3},
		{4, 5, 6},
	}
	tests := []struct {
		p      Pt
		want   int
		wantOk bool
	}{
		{Pt{0, 0}, 1, true},
		{Pt{2, 1}, 6, true},
		{Pt{-1, 0}, 0, false},
		{Pt{3, 0}, 0, false},
		{Pt{0, 2}, 0, false},
		{Pt{1, -1}, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.AtOk(tt.p)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("AtOk(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.wantOk)
		}
	}
	if got := g.Size(); got != (Pt{3, 2}) {
		t.Errorf("Size = %v", got)
	}
	if got := (Grid[int]{}).Size(); got != (Pt{}) {
		t.Errorf("empty Size = %v", got)
	}
	if _, ok := (Grid[int]{}).AtOk(Pt{}); ok {
		t.Error("AtOk on empty grid = true")
	}
}

func TestGridForEach(t *testing.T) {
	g := Grid[rune]{
		[]rune("ab"),
		[]rune("cd"),
	}
	type cell struct {
		P Pt
		V rune
	}
	var got []cell
	g.ForEach(func(p Pt, v rune) bool {
		got = append(got, cell{p, v})
		return true
	})
	want := []cell{
		{Pt{0, 0}, 'a'},
		{Pt{1, 0}, 'b'},
		{Pt{0, 1}, 'c'},
		{Pt{1, 1}, 'd'},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForEach mismatch (-want +got):\n%s", diff)
	}

	n := 0
	g.ForEach(func(Pt, rune) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("ForEach did not stop: visited %d", n)
	}
}

func TestGridForNeighborCells(t *testing.T) {
	g := MakeGrid[int](3, 3)
	g.Set(Pt{1, 0}, 7)
	g.Set(Pt{0, 1}, 8)

	var got []Pt
	g.ForNeighborCells(Pt{0, 0}, func(p Pt, v int) bool {
		got = append(got, p)
		if want := map[Pt]int{{1, 0}: 7, {0, 1}: 8}[p]; v != want {
			t.Errorf("value at %v = %d, want %d", p, v, want)
		}
		return true
	})
	if diff := cmp.Diff([]Pt{{1, 0}, {0, 1}}, got); diff != "" {
		t.Errorf("corner neighbors (-want +got):\n%s", diff)
	}

	got = got[:0]
	g.ForNeighborCells(Pt{1, 1}, func(p Pt, _ int) bool {
		got = append(got, p)
		return true
	})
	if diff := cmp.Diff([]Pt{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, got); diff != "" {
		t.Errorf("center neighbors (-want +got):\n%s", diff)
	}
}

func TestGridMove(t *testing.T) {
	g := MakeGrid[int](2, 2)
	tests := []struct {
		in     State
		want   State
		wantOk bool
	}{
		{State{Pt{0, 0}, Right}, State{Pt{1, 0}, Right}, true},
		{State{Pt{0, 0}, Down}, State{Pt{0, 1}, Down}, true},
		{State{Pt{0, 0}, Up}, State{}, false},
		{State{Pt{0, 0}, Left}, State{}, false},
		{State{Pt{1, 1}, Right}, State{}, false},
	}
	for _, tt := range tests {
		got, ok := g.Move(tt.in)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("Move(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		d    Direction
		t    Turn
		want Direction
	}{
		{Up, Forward, Up},
		{Up, TurnRight, Right},
		{Up, TurnLeft, Left},
		{Up, Reverse, Down},
		{Right, TurnRight, Down},
		{Right, TurnLeft, Up},
		{Down, TurnRight, Left},
		{Left, TurnRight, Up},
		{Left, TurnLeft, Down},
		{East, Reverse, West},
	}
	for _, tt := range tests {
		if got := tt.d.Rotate(tt.t); got != tt.want {
			t.Errorf("%v.Rotate(%v) = %v, want %v", tt.d, tt.t, got, tt.want)
		}
	}
}

func TestGridHash(t *testing.T) {
	g := Grid[int]{{1, 2}, {3, 4}}
	c := g.Clone()
	if g.Hash() != c.Hash() {
		t.Fatal("clone hashes differently")
	}
	c.Set(Pt{1, 1}, 5)
	if g.Hash() == c.Hash() {
		t.Error("hash unchanged after Set")
	}
	if g.At(Pt{1, 1}) != 4 {
		t.Error("Set on clone changed the original")
	}
}

func TestGridFormat(t *testing.T) {
	g := Grid[bool]{{true, false}, {false, true}}
	got := g.Format(func(_ Pt, v bool) rune {
		if v {
			return '#'
		}
		return '.'
	})
	if want := "#.\n.#\n"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
