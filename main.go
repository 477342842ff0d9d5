package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/storage"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed for apple placement (0 = use config, then time-based)")
	logLevel := flag.String("log-level", "", "Override log level (debug, info, warn, error)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		slog.Error("bad log level", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.RNG.Seed
	}
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	history, err := stats.OpenHistory(cfg.History.Path)
	if err != nil {
		slog.Warn("run history disabled", "path", cfg.History.Path, "error", err)
	}
	defer history.Close()

	state := manager.NewStateManager(storage.NewFileStore(cfg.Storage.Path), cfg.Storage.HighScoreSlot, history)
	if err := state.Load(); err != nil {
		slog.Warn("starting without saved high score", "error", err)
	}

	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, "Snake")
	defer rl.CloseWindow()

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	rl.SetTargetFPS(types.TargetFPS)
	rl.HideCursor()

	audio := ui.LoadAudio(cfg.Assets.PointSoundPath(), cfg.Assets.LossSoundPath())
	defer audio.Unload()

	g := game.New(game.Options{Seed: rngSeed, State: state})
	input := ui.NewInput(nil)
	renderer := ui.NewRenderer(ui.NewRaylibCanvas())

	slog.Info("starting game",
		"seed", rngSeed,
		"high_score", state.HighScore(),
		"storage", cfg.Storage.Path,
		"history", cfg.History.Path,
	)

	for !rl.WindowShouldClose() {
		ev := g.Update(input.Poll(), float64(rl.GetFrameTime()))
		audio.Play(ev)
		renderer.Draw(g)
	}

	if err := state.Save(); err != nil {
		slog.Error("failed to save high score", "error", err)
	}
	slog.Info("exiting", "high_score", state.HighScore(), "runs", state.Session().Runs())
}
