package ui

import (
	"log/slog"
	"os"

	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays a sound for each game event that has one.
// The audio device must be initialised before LoadAudio.
type Audio struct {
	sounds map[game.Events]rl.Sound
	play   func(rl.Sound)
	unload func(rl.Sound)
}

// LoadAudio loads the point and loss sounds. A missing file is logged and
// its event stays silent.
func LoadAudio(pointPath, lossPath string) *Audio {
	a := &Audio{
		sounds: make(map[game.Events]rl.Sound),
		play:   rl.PlaySound,
		unload: rl.UnloadSound,
	}
	a.load(game.EventAte, pointPath)
	a.load(game.EventCrashed, lossPath)
	return a
}

func (a *Audio) load(ev game.Events, path string) {
	if _, err := os.Stat(path); err != nil {
		slog.Warn("sound not loaded", "path", path, "error", err)
		return
	}
	a.sounds[ev] = rl.LoadSound(path)
}

func (a *Audio) Play(ev game.Events) {
	for _, flag := range []game.Events{game.EventAte, game.EventCrashed} {
		if !ev.Has(flag) {
			continue
		}
		if s, ok := a.sounds[flag]; ok {
			a.play(s)
		}
	}
}

func (a *Audio) Unload() {
	for ev, s := range a.sounds {
		a.unload(s)
		delete(a.sounds, ev)
	}
}
