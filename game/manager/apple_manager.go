package manager

import (
	"errors"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no cell is left to place an apple on.
var ErrBoardFull = errors.New("manager: no free cell for an apple")

type AppleManager struct {
	grid *Grid
	rng  *rand.Rand
}

func NewAppleManager(grid *Grid, seed uint64) *AppleManager {
	return &AppleManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Spawn places an apple on a cell picked uniformly among the empty cells
// not covered by the snake.
func (am *AppleManager) Spawn(snake *entity.Snake) (types.Point, error) {
	free := am.grid.FreeCells(snake.Occupies)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}

	p := free[am.rng.Intn(len(free))]
	am.grid.Set(p, types.Apple)
	return p, nil
}
