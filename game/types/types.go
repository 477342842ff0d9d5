package types

import "fmt"

// Screen and board dimensions. These are fixed at compile time.
const (
	ScreenWidth  = 1025
	ScreenHeight = 675
	CellWidth    = 25
	TargetFPS    = 12

	Cols = ScreenWidth / CellWidth  // 41
	Rows = ScreenHeight / CellWidth // 27

	MaxTail = Cols * Rows
)

// Game constants
const (
	CrashDelay    = 2.0 // Seconds between a crash and the board reset
	InitialApples = 2
)

// Point is a cell on the board, addressed by column and row.
type Point struct {
	Col, Row int
}

// PointFromPixel snaps a pixel coordinate to the cell containing it.
func PointFromPixel(x, y int) Point {
	return Point{Col: x / CellWidth, Row: y / CellWidth}
}

// Center returns the cell the snake spawns on.
func Center() Point {
	return PointFromPixel(ScreenWidth/2, ScreenHeight/2)
}

func (p Point) Add(d Direction) Point {
	return Point{Col: p.Col + d.X, Row: p.Row + d.Y}
}

// Pixel returns the top-left pixel of the cell.
func (p Point) Pixel() (int32, int32) {
	return int32(p.Col * CellWidth), int32(p.Row * CellWidth)
}

func (p Point) String() string {
	x, y := p.Pixel()
	return fmt.Sprintf("(%d,%d)", x, y)
}

// Direction is a unit step on the board. The zero value means standing still.
type Direction struct {
	X, Y int
}

var (
	Still = Direction{}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Reverses reports whether d points straight back along o.
func (d Direction) Reverses(o Direction) bool {
	return !o.IsZero() && d.X == -o.X && d.Y == -o.Y
}

// CellState is what a board cell holds.
type CellState uint8

const (
	Empty CellState = iota
	Apple
	Obstacle
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Apple:
		return "apple"
	case Obstacle:
		return "obstacle"
	}
	return fmt.Sprintf("CellState(%d)", uint8(c))
}
