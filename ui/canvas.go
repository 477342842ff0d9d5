package ui

import (
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas is the set of draw calls the renderer needs.
type Canvas interface {
	Begin(background color.RGBA)
	End()
	DrawRect(x, y, w, h int32, c color.RGBA)
	DrawText(text string, x, y, size int32, c color.RGBA)
	DrawStatusBar(x, y, w, h int32, text string)
}

// RaylibCanvas draws into the raylib window.
type RaylibCanvas struct{}

func NewRaylibCanvas() *RaylibCanvas {
	return &RaylibCanvas{}
}

func (RaylibCanvas) Begin(background color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(background)
}

func (RaylibCanvas) End() {
	rl.EndDrawing()
}

func (RaylibCanvas) DrawRect(x, y, w, h int32, c color.RGBA) {
	rl.DrawRectangle(x, y, w, h, c)
}

func (RaylibCanvas) DrawText(text string, x, y, size int32, c color.RGBA) {
	rl.DrawText(text, x, y, size, c)
}

func (RaylibCanvas) DrawStatusBar(x, y, w, h int32, text string) {
	gui.StatusBar(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(w),
		Height: float32(h),
	}, text)
}
