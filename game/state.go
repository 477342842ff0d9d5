package game

import "fmt"

// Phase is where the game is in its NotStarted -> Playing -> Crashed cycle.
type Phase int

const (
	NotStarted Phase = iota
	Playing
	Crashed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Playing:
		return "playing"
	case Crashed:
		return "crashed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the current phase. Remaining is only meaningful while Crashed:
// seconds left before the board resets.
type State struct {
	Phase     Phase
	Remaining float64
}
