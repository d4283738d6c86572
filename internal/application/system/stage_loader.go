package system

import (
	"github.com/younwookim/webslinger/internal/domain/entity"
	"github.com/younwookim/webslinger/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	obstacles := make([]entity.Obstacle, 0, len(cfg.Obstacles))
	for _, o := range cfg.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		obstacles = append(obstacles, entity.Obstacle{
			Position: entity.Vec2{X: o.X, Y: o.Y},
			Width:    o.Width,
			Height:   o.Height,
		})
	}

	return &entity.Stage{
		ID:          cfg.ID,
		Width:       float64(cfg.Size.Width),
		Height:      float64(cfg.Size.Height),
		GroundLevel: cfg.GroundLevel,
		Spawn:       entity.Vec2{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		Obstacles:   obstacles,
	}
}
