package ui

import (
	"fmt"
	"image/color"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

var (
	colorBackground = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colorGrid1      = color.RGBA{R: 165, G: 199, B: 181, A: 150}
	colorGrid2      = color.RGBA{R: 138, G: 166, B: 151, A: 150}
	colorApple      = color.RGBA{R: 255, G: 77, B: 77, A: 255}
	colorObstacle   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorTail       = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	colorHead       = color.RGBA{R: 47, G: 163, B: 8, A: 255}
	colorScore      = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	colorGreenText  = color.RGBA{R: 15, G: 97, B: 0, A: 255}
)

const (
	scoreFontSize    = 30
	titleFontSize    = 40
	statusBarHeight  = 24
	titleOffsetX     = 145
	titleOffsetY     = 300
	highScoreOffsetX = 90
	highScoreOffsetY = 200

	cellSize = int32(types.CellWidth)
	screenW  = int32(types.ScreenWidth)
	screenH  = int32(types.ScreenHeight)
)

type Renderer struct {
	canvas Canvas
}

func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Draw renders one frame: board, snake, score, the start overlay before
// the first move and the session bar once a run has finished.
func (r *Renderer) Draw(g *game.Game) {
	r.canvas.Begin(colorBackground)
	defer r.canvas.End()

	r.drawBoard(g)
	r.drawSnake(g)

	r.canvas.DrawText(fmt.Sprintf("Score: %d", g.Score), 0, 0, scoreFontSize, colorScore)

	if g.State().Phase == game.NotStarted {
		r.drawStartOverlay(g)
	}
	r.drawSessionBar(g)
}

func (r *Renderer) drawBoard(g *game.Game) {
	for col := 0; col < g.Grid.Width; col++ {
		for row := 0; row < g.Grid.Height; row++ {
			p := types.Point{Col: col, Row: row}
			x, y := p.Pixel()

			bg := colorGrid1
			if (col+row)%2 == 1 {
				bg = colorGrid2
			}
			r.canvas.DrawRect(x, y, cellSize, cellSize, bg)

			switch g.Grid.Get(p) {
			case types.Apple:
				r.canvas.DrawRect(x, y, cellSize, cellSize, colorApple)
			case types.Obstacle:
				r.canvas.DrawRect(x, y, cellSize, cellSize, colorObstacle)
			}
		}
	}
}

func (r *Renderer) drawSnake(g *game.Game) {
	tail := g.Snake.Tail
	for i := 0; i < tail.Len(); i++ {
		x, y := tail.At(i).Pixel()
		r.canvas.DrawRect(x, y, cellSize, cellSize, colorTail)
	}

	x, y := g.Snake.Head.Pixel()
	r.canvas.DrawRect(x, y, cellSize, cellSize, colorHead)
}

func (r *Renderer) drawStartOverlay(g *game.Game) {
	r.canvas.DrawText("Move to begin",
		screenW/2-titleOffsetX, screenH/2-titleOffsetY,
		titleFontSize, colorGreenText)
	r.canvas.DrawText(fmt.Sprintf("Hi-score: %d", g.HighScore()),
		screenW/2-highScoreOffsetX, screenH/2+highScoreOffsetY,
		scoreFontSize, colorScore)
}

// drawSessionBar shows the session summary along the bottom edge once a
// run has finished.
func (r *Renderer) drawSessionBar(g *game.Game) {
	session := g.Session()
	if session.Runs() == 0 {
		return
	}
	r.canvas.DrawStatusBar(0, screenH-statusBarHeight, screenW, statusBarHeight,
		fmt.Sprintf("Runs: %d   Mean: %.1f   Median: %.1f   Best: %d",
			session.Runs(), session.Mean(), session.Median(), session.Best()))
}
