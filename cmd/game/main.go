package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/webslinger/internal/application/game"
	"github.com/younwookim/webslinger/internal/application/replay"
	"github.com/younwookim/webslinger/internal/application/scene/playing"
	"github.com/younwookim/webslinger/internal/application/system"
	"github.com/younwookim/webslinger/internal/infrastructure/assets"
	"github.com/younwookim/webslinger/internal/infrastructure/config"
	"github.com/younwookim/webslinger/internal/infrastructure/storage"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording headless and print the final state")
	replayLast := flag.Bool("replay-last", false, "Play the last kept recording headless")
	saveLast := flag.Bool("save-last", false, "Keep this session's recording for -replay-last")
	clearLast := flag.Bool("clear-last", false, "Forget the kept recording and exit")
	assetsFlag := flag.String("assets", "", "Clip directory root (one sub-directory per clip)")
	stageFlag := flag.String("stage", "rooftop", "Stage name under configs/stages")
	watchFlag := flag.String("watch", "", "Load configs from this directory and reload character.json on change")
	flag.Parse()

	if *clearLast {
		if err := clearRecording(); err != nil {
			log.Fatalf("Failed to clear recording: %v", err)
		}
		log.Printf("Kept recording cleared")
		return
	}

	loader := newLoader(*watchFlag)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	stageCfg, err := loader.LoadStage(*stageFlag)
	if err != nil {
		if names, lerr := loader.Stages(); lerr == nil {
			log.Printf("Available stages: %v", names)
		}
		log.Fatalf("Failed to load stage: %v", err)
	}
	stage := system.LoadStage(stageCfg)

	cat, err := loadCatalog(*assetsFlag, cfg.Character)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	if *replayFlag != "" || *replayLast {
		data, err := loadRecording(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		res, err := runReplay(data, cfg.Character, stage, cat)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		printResult(res)
		return
	}

	set, err := assets.Build(cat, ebiten.NewImageFromImage)
	if err != nil {
		log.Fatalf("Failed to build clips: %v", err)
	}

	opts := playing.Options{RecordPath: *recordFlag}
	if *saveLast {
		store, err := storage.OpenReplayStore()
		if err != nil {
			log.Printf("Warning: recording will not be kept: %v", err)
		} else {
			opts.Store = store
		}
	}
	if *watchFlag != "" {
		watcher, err := config.NewWatcher(*watchFlag)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *watchFlag, err)
		}
		defer func() { _ = watcher.Close() }()
		opts.Watcher = watcher
		opts.Reload = loader.LoadCharacter
		log.Printf("Watching %s for config changes", *watchFlag)
	}

	scene, err := playing.New(cfg.Character, stageCfg, stage, set, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Character.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.UseWallClock(time.Now)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Webslinger")
	ebiten.SetTPS(display.Framerate)

	runErr := ebiten.RunGame(g)
	scene.OnExit()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// newLoader reads configs from dir when given, otherwise from the embedded copy.
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	return config.NewFSLoader(fsys, "configs")
}

// loadRecording reads path, or the kept recording when path is empty.
func loadRecording(path string) (*replay.ReplayData, error) {
	if path != "" {
		return replay.LoadReplay(path)
	}
	store, err := storage.OpenReplayStore()
	if err != nil {
		return nil, err
	}
	return store.LoadLast()
}

func clearRecording() error {
	store, err := storage.OpenReplayStore()
	if err != nil {
		return err
	}
	return store.Clear()
}
