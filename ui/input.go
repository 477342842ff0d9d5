package ui

import (
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyReader reports keys pressed since the last frame.
type KeyReader interface {
	IsKeyPressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) IsKeyPressed(key int32) bool {
	return rl.IsKeyPressed(key)
}

type binding struct {
	keys []int32
	dir  types.Direction
}

// Checked in order; the first pressed binding wins.
var bindings = []binding{
	{keys: []int32{rl.KeyW, rl.KeyUp}, dir: types.Up},
	{keys: []int32{rl.KeyS, rl.KeyDown}, dir: types.Down},
	{keys: []int32{rl.KeyA, rl.KeyLeft}, dir: types.Left},
	{keys: []int32{rl.KeyD, rl.KeyRight}, dir: types.Right},
}

type Input struct {
	keys KeyReader
}

// NewInput polls keys, or the raylib keyboard when keys is nil.
func NewInput(keys KeyReader) *Input {
	if keys == nil {
		keys = raylibKeys{}
	}
	return &Input{keys: keys}
}

// Poll returns the direction requested this frame, or types.Still.
func (in *Input) Poll() types.Direction {
	for _, b := range bindings {
		for _, k := range b.keys {
			if in.keys.IsKeyPressed(k) {
				return b.dir
			}
		}
	}
	return types.Still
}
