package manager

import (
	"errors"
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestSpawnNeverLandsOnTakenCell(t *testing.T) {
	g := NewGrid(6, 5)
	am := NewAppleManager(g, 42)
	s := entity.NewSnake(types.Point{Col: 0, Row: 0})

	// Leave only a handful of cells free
	for col := 0; col < 6; col++ {
		for row := 0; row < 5; row++ {
			if row == 4 && col >= 2 {
				continue
			}
			g.Set(types.Point{Col: col, Row: row}, types.Obstacle)
		}
	}
	g.Set(types.Point{Col: 0, Row: 0}, types.Empty) // snake head

	for i := 0; i < 4; i++ {
		p, err := am.Spawn(s)
		if err != nil {
			t.Fatalf("spawn %d: %v", i, err)
		}
		if p.Row != 4 || p.Col < 2 {
			t.Fatalf("apple spawned on taken cell %v", p)
		}
		if g.Get(p) != types.Apple {
			t.Fatalf("cell %v = %v, want apple", p, g.Get(p))
		}
	}

	if g.Count(types.Apple) != 4 {
		t.Errorf("apples = %d, want 4", g.Count(types.Apple))
	}

	if _, err := am.Spawn(s); !errors.Is(err, ErrBoardFull) {
		t.Errorf("spawn on full board: err = %v, want ErrBoardFull", err)
	}
}

func TestSpawnAvoidsSnake(t *testing.T) {
	g := NewGrid(2, 1)
	am := NewAppleManager(g, 7)
	s := entity.NewSnake(types.Point{Col: 0, Row: 0})

	for i := 0; i < 10; i++ {
		g.Clear()
		p, err := am.Spawn(s)
		if err != nil {
			t.Fatal(err)
		}
		if p != (types.Point{Col: 1, Row: 0}) {
			t.Fatalf("apple spawned at %v, on the snake", p)
		}
	}
}
