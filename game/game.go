package game

import (
	"errors"
	"log/slog"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/storage"

	"github.com/google/uuid"
)

// Events reports what happened during one Update, for sound and logging.
type Events uint8

const (
	EventAte Events = 1 << iota
	EventCrashed
	EventReset
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

type Options struct {
	// Seed for apple placement. 0 picks a time based seed.
	Seed uint64
	// State carries the high score and run history. Defaults to an
	// in-memory store with no history.
	State *manager.StateManager
	// Now is the clock used for run timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Game is the whole game state, owned by the frame loop.
type Game struct {
	Grid  *manager.Grid
	Snake *entity.Snake
	Score int
	RunID string

	state        State
	lastCrash    manager.Collision
	runStart     time.Time
	now          func() time.Time
	apples       *manager.AppleManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
}

func New(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.State == nil {
		opts.State = manager.NewStateManager(storage.NewMemoryStore(), 0, nil)
	}

	grid := manager.NewGrid(types.Cols, types.Rows)
	g := &Game{
		Grid:         grid,
		Snake:        entity.NewSnake(types.Center()),
		now:          opts.Now,
		apples:       manager.NewAppleManager(grid, opts.Seed),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     opts.State,
	}
	g.Reset()
	return g
}

// Reset puts a fresh board in front of the player: no obstacles, two
// apples, a still snake in the centre and a zero score.
func (g *Game) Reset() {
	g.Grid.Clear()
	g.Snake.Reset(types.Center())
	g.Score = 0
	g.state = State{Phase: NotStarted}
	g.lastCrash = manager.NoCollision
	g.RunID = uuid.New().String()

	for i := 0; i < types.InitialApples; i++ {
		if _, err := g.apples.Spawn(g.Snake); err != nil {
			slog.Warn("could not place apple", "error", err)
		}
	}
}

// Update advances the game by one frame. dir is the direction requested
// this frame (types.Still for none) and dt the frame time in seconds.
func (g *Game) Update(dir types.Direction, dt float64) Events {
	switch g.state.Phase {
	case Crashed:
		g.state.Remaining -= dt
		if g.state.Remaining <= 0 {
			g.Reset()
			return EventReset
		}
		return 0

	case NotStarted:
		if !g.Snake.Turn(dir) {
			return 0
		}
		g.state = State{Phase: Playing}
		g.runStart = g.now()

	case Playing:
		g.Snake.Turn(dir)
	}

	return g.Step()
}

// Step moves the head one cell and resolves what it ran into.
func (g *Game) Step() Events {
	next := g.Snake.Next()

	collision := g.collisionMgr.Check(next, g.Snake)
	if collision.Fatal() {
		return g.crash(collision)
	}

	var ev Events
	if collision == manager.AppleCollision {
		ev |= EventAte
		g.Snake.Grow()
		g.Score++
		g.stateMgr.UpdateScore(g.Score)

		_, err := g.apples.Spawn(g.Snake)
		g.Grid.Set(next, types.Obstacle)
		if errors.Is(err, manager.ErrBoardFull) {
			g.Snake.Advance(next)
			return ev | g.crash(manager.BoardFull)
		}
	}

	g.Snake.Advance(next)
	return ev
}

func (g *Game) crash(cause manager.Collision) Events {
	g.state = State{Phase: Crashed, Remaining: types.CrashDelay}
	g.lastCrash = cause

	g.stateMgr.RecordRun(stats.NewRun(
		g.RunID,
		g.runStart,
		g.now(),
		g.Score,
		g.Snake.Length,
		cause.String(),
	))
	return EventCrashed
}

func (g *Game) State() State {
	return g.state
}

// LastCrash is the cause of the most recent crash, or NoCollision.
func (g *Game) LastCrash() manager.Collision {
	return g.lastCrash
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) Session() *stats.Session {
	return g.stateMgr.Session()
}
