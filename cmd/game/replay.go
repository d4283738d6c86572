package main

import (
	"image"
	"log"
	"os"

	"github.com/younwookim/webslinger/internal/application/replay"
	"github.com/younwookim/webslinger/internal/application/system"
	"github.com/younwookim/webslinger/internal/domain/entity"
	"github.com/younwookim/webslinger/internal/infrastructure/assets"
	"github.com/younwookim/webslinger/internal/infrastructure/config"
)

// placeholderFrames is the frame count of each generated clip
const placeholderFrames = 4

// loadCatalog reads clips from dir, or generates placeholder clips for the
// configured names when dir is empty.
func loadCatalog(dir string, cfg *config.CharacterConfig) (*assets.Catalog, error) {
	if dir != "" {
		return assets.Load(os.DirFS(dir))
	}

	log.Printf("No asset directory given, using placeholder frames")
	counts := make(map[string]int)
	for _, name := range cfg.Animation.Clips.All() {
		counts[name] = placeholderFrames
	}
	return assets.Placeholder(counts, cfg.Sprite.Width, cfg.Sprite.Height), nil
}

// runReplay plays data through a fresh controller without opening a window.
func runReplay(data *replay.ReplayData, cfg *config.CharacterConfig, stage *entity.Stage, cat *assets.Catalog) (replay.Result, error) {
	set, err := assets.Build(cat, func(img image.Image) image.Image { return img })
	if err != nil {
		return replay.Result{}, err
	}

	ctrl, err := system.NewController(set, system.ClipsFromConfig(cfg), system.TuningFromConfig(cfg),
		stage.Spawn, stage.GroundLevel)
	if err != nil {
		return replay.Result{}, err
	}

	r := replay.NewReplayer(*data)
	if recorded := r.Stage(); recorded != "" && recorded != stage.ID {
		log.Printf("Warning: recorded on stage %q, replaying on %q", recorded, stage.ID)
	}
	return replay.Run(ctrl, r, nil)
}

func printResult(res replay.Result) {
	log.Printf("Replayed %d frames (%.2fs, %d swings)", res.Frames, res.Elapsed, res.Actions)
	log.Printf("Final: %s facing %s at (%.2f, %.2f) velocity (%.2f, %.2f)",
		res.Motion, res.Facing, res.Position.X, res.Position.Y, res.Velocity.X, res.Velocity.Y)
}
