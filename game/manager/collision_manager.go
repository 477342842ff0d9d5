package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Collision is the outcome of moving the head into a cell.
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	AppleCollision
	ObstacleCollision
	SelfCollision
	BoardFull // No free cell left for an apple
)

func (c Collision) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case AppleCollision:
		return "apple"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	}
	return "unknown"
}

// Fatal reports whether the collision ends the run.
func (c Collision) Fatal() bool {
	return c != NoCollision && c != AppleCollision
}

type CollisionManager struct {
	grid *Grid
}

func NewCollisionManager(grid *Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies moving the snake's head into next. Walls are checked
// first, then the cell contents, then the snake's own tail.
func (cm *CollisionManager) Check(next types.Point, snake *entity.Snake) Collision {
	if cm.isWallCollision(next) {
		return WallCollision
	}

	grows := false
	switch cm.grid.Get(next) {
	case types.Apple:
		grows = true
	case types.Obstacle:
		return ObstacleCollision
	}

	if cm.isSelfCollision(next, snake, grows) {
		return SelfCollision
	}
	if grows {
		return AppleCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(p types.Point) bool {
	return !cm.grid.InBounds(p)
}

// isSelfCollision tests next against the tail as it will be after this
// step: the old head moves to index 0 and, unless the snake grows, the last
// segment leaves its cell.
func (cm *CollisionManager) isSelfCollision(next types.Point, snake *entity.Snake, grows bool) bool {
	length := snake.Length
	if grows {
		length++
	}
	if length == 0 {
		return false
	}
	if next == snake.Head {
		return true
	}
	return snake.Tail.Contains(next, length-1)
}
