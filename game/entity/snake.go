package entity

import "snake-arcade/game/types"

// Snake is the player: a head cell, a heading and a tail of Length segments.
type Snake struct {
	Head      types.Point
	Direction types.Direction
	Length    int
	Tail      *Tail
}

func NewSnake(start types.Point) *Snake {
	return &Snake{
		Head:      start,
		Direction: types.Still, // Waits for the first key press
		Length:    0,
		Tail:      NewTail(types.MaxTail),
	}
}

// Turn changes the heading unless dir would send the head straight back
// into the body. It returns whether the turn was taken.
func (s *Snake) Turn(dir types.Direction) bool {
	if dir.IsZero() || dir.Reverses(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}

// Next is the cell the head enters on the next step.
func (s *Snake) Next() types.Point {
	return s.Head.Add(s.Direction)
}

func (s *Snake) Grow() {
	s.Length++
}

// Advance moves the head to next and shifts the old head onto the tail.
func (s *Snake) Advance(next types.Point) {
	s.Tail.Push(s.Head, s.Length)
	s.Head = next
}

// Occupies reports whether p is covered by the head or a tail segment.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.Tail.Contains(p, s.Length)
}

func (s *Snake) Reset(start types.Point) {
	s.Head = start
	s.Direction = types.Still
	s.Length = 0
	s.Tail.Reset()
}
