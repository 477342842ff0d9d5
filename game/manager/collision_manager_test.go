package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// snakeAlong builds a snake whose head is at head, with the given tail
// cells (newest first) and moving in dir.
func snakeAlong(head types.Point, dir types.Direction, tail ...types.Point) *entity.Snake {
	s := entity.NewSnake(head)
	s.Direction = dir
	s.Length = len(tail)
	for i := len(tail) - 1; i >= 0; i-- {
		s.Tail.Push(tail[i], s.Length)
	}
	return s
}

func TestCheckWall(t *testing.T) {
	g := NewGrid(types.Cols, types.Rows)
	cm := NewCollisionManager(g)
	s := snakeAlong(types.PointFromPixel(1000, 325), types.Right)

	if got := cm.Check(s.Next(), s); got != WallCollision {
		t.Errorf("Check = %v, want wall", got)
	}
}

func TestCheckCellContents(t *testing.T) {
	g := NewGrid(types.Cols, types.Rows)
	cm := NewCollisionManager(g)
	s := snakeAlong(types.Point{Col: 5, Row: 5}, types.Right)
	next := s.Next()

	if got := cm.Check(next, s); got != NoCollision {
		t.Errorf("empty cell: Check = %v, want none", got)
	}

	g.Set(next, types.Apple)
	if got := cm.Check(next, s); got != AppleCollision {
		t.Errorf("apple cell: Check = %v, want apple", got)
	}

	g.Set(next, types.Obstacle)
	if got := cm.Check(next, s); got != ObstacleCollision {
		t.Errorf("obstacle cell: Check = %v, want obstacle", got)
	}
}

func TestCheckSelf(t *testing.T) {
	g := NewGrid(types.Cols, types.Rows)
	cm := NewCollisionManager(g)

	// Head at (5,5) moving up into (5,4), which the body still covers:
	// (5,4) (6,4) (6,5) form a loop behind the head.
	body := []types.Point{{Col: 6, Row: 5}, {Col: 6, Row: 4}, {Col: 5, Row: 4}, {Col: 4, Row: 4}}
	s := snakeAlong(types.Point{Col: 5, Row: 5}, types.Up, body...)

	if got := cm.Check(s.Next(), s); got != SelfCollision {
		t.Errorf("Check = %v, want self", got)
	}
}

func TestCheckChasingTailEnd(t *testing.T) {
	g := NewGrid(types.Cols, types.Rows)
	cm := NewCollisionManager(g)

	// The last segment sits on (5,4) and vacates it this step.
	body := []types.Point{{Col: 6, Row: 5}, {Col: 6, Row: 4}, {Col: 5, Row: 4}}
	s := snakeAlong(types.Point{Col: 5, Row: 5}, types.Up, body...)

	if got := cm.Check(s.Next(), s); got != NoCollision {
		t.Errorf("Check = %v, want none", got)
	}
}

func TestCollisionFatal(t *testing.T) {
	for c, want := range map[Collision]bool{
		NoCollision:       false,
		AppleCollision:    false,
		WallCollision:     true,
		ObstacleCollision: true,
		SelfCollision:     true,
		BoardFull:         true,
	} {
		if c.Fatal() != want {
			t.Errorf("%v.Fatal() = %v, want %v", c, c.Fatal(), want)
		}
	}
}
