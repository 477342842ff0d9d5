package entity

import "snake-arcade/game/types"

// Tail is a fixed-capacity ring of past head positions, newest first.
type Tail struct {
	buf   []types.Point
	start int
	n     int
}

func NewTail(capacity int) *Tail {
	if capacity < 1 {
		capacity = 1
	}
	return &Tail{buf: make([]types.Point, capacity)}
}

// Push inserts p at index 0 and keeps at most length entries.
func (t *Tail) Push(p types.Point, length int) {
	if length <= 0 {
		t.n = 0
		return
	}
	t.start = (t.start - 1 + len(t.buf)) % len(t.buf)
	t.buf[t.start] = p
	t.n++
	if t.n > length {
		t.n = length
	}
	if t.n > len(t.buf) {
		t.n = len(t.buf)
	}
}

// At returns the i-th newest entry. i must be in [0, Len()).
func (t *Tail) At(i int) types.Point {
	return t.buf[(t.start+i)%len(t.buf)]
}

func (t *Tail) Len() int {
	return t.n
}

func (t *Tail) Cap() int {
	return len(t.buf)
}

// Contains reports whether p is among the first n entries.
func (t *Tail) Contains(p types.Point, n int) bool {
	if n > t.n {
		n = t.n
	}
	for i := 0; i < n; i++ {
		if t.At(i) == p {
			return true
		}
	}
	return false
}

// Points copies the live entries, newest first.
func (t *Tail) Points() []types.Point {
	out := make([]types.Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Tail) Reset() {
	t.start = 0
	t.n = 0
}
