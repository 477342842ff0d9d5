package manager

import (
	"fmt"
	"log/slog"

	"snake-arcade/stats"
	"snake-arcade/storage"
)

// StateManager owns everything that outlives a single run: the high score,
// the run history file and the session summary.
type StateManager struct {
	store     storage.ScalarStore
	slot      int
	highScore int
	saved     int
	history   *stats.History
	session   stats.Session
}

// NewStateManager reads nothing; call Load before the first frame.
// history may be nil.
func NewStateManager(store storage.ScalarStore, slot int, history *stats.History) *StateManager {
	return &StateManager{
		store:   store,
		slot:    slot,
		history: history,
	}
}

func (sm *StateManager) Load() error {
	v, err := sm.store.Load(sm.slot)
	if err != nil {
		return fmt.Errorf("loading high score: %w", err)
	}
	sm.highScore = v
	sm.saved = v
	return nil
}

// Save writes the high score if it changed since the last load or save.
func (sm *StateManager) Save() error {
	if sm.highScore == sm.saved {
		return nil
	}
	if err := sm.store.Save(sm.slot, sm.highScore); err != nil {
		return fmt.Errorf("saving high score: %w", err)
	}
	sm.saved = sm.highScore
	return nil
}

// UpdateScore raises the high score when score beats it.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// RecordRun adds a finished run to the session and the history file, and
// persists a new high score. Failures are logged; the game goes on.
func (sm *StateManager) RecordRun(run stats.Run) {
	sm.UpdateScore(run.Score)
	sm.session.Add(run.Score)

	slog.Info("run finished",
		"id", run.ID,
		"score", run.Score,
		"length", run.Length,
		"cause", run.Cause,
		"duration_sec", run.Duration,
		"high_score", sm.highScore,
	)

	if err := sm.history.Append(run); err != nil {
		slog.Warn("failed to record run", "error", err)
	}
	if err := sm.Save(); err != nil {
		slog.Warn("failed to persist high score", "error", err)
	}
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) Session() *stats.Session {
	return &sm.session
}
