package ui

import (
	"testing"

	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeKeys map[int32]bool

func (f fakeKeys) IsKeyPressed(key int32) bool {
	return f[key]
}

func TestPoll(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want types.Direction
	}{
		{"nothing", fakeKeys{}, types.Still},
		{"w", fakeKeys{rl.KeyW: true}, types.Up},
		{"arrow up", fakeKeys{rl.KeyUp: true}, types.Up},
		{"s", fakeKeys{rl.KeyS: true}, types.Down},
		{"arrow left", fakeKeys{rl.KeyLeft: true}, types.Left},
		{"d", fakeKeys{rl.KeyD: true}, types.Right},
		{"up wins over right", fakeKeys{rl.KeyRight: true, rl.KeyUp: true}, types.Up},
		{"down wins over left", fakeKeys{rl.KeyA: true, rl.KeyDown: true}, types.Down},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewInput(tc.keys).Poll(); got != tc.want {
				t.Errorf("Poll() = %v, want %v", got, tc.want)
			}
		})
	}
}
