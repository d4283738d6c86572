package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/webslinger/internal/domain/entity"
	"github.com/younwookim/webslinger/internal/infrastructure/config"
)

func TestLoadStage(t *testing.T) {
	cfg := &config.StageConfig{
		ID:          "test",
		Size:        config.StageSizeConfig{Width: 640, Height: 360},
		GroundLevel: 240,
		PlayerSpawn: config.PositionConfig{X: 320, Y: 240},
		Obstacles: []config.ObstacleConfig{
			{X: 320, Y: 274, Width: 100, Height: 30},
			{X: 0, Y: 0, Width: 0, Height: 10}, // degenerate, dropped
		},
	}

	stage := LoadStage(cfg)

	assert.Equal(t, "test", stage.ID)
	assert.Equal(t, 640.0, stage.Width)
	assert.Equal(t, 360.0, stage.Height)
	assert.Equal(t, 240.0, stage.GroundLevel)
	assert.Equal(t, entity.Vec2{X: 320, Y: 240}, stage.Spawn)
	require.Len(t, stage.Obstacles, 1)
	assert.Equal(t, entity.Obstacle{Position: entity.Vec2{X: 320, Y: 274}, Width: 100, Height: 30}, stage.Obstacles[0])
}

func TestLoadStage_FromFile(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadStage("rooftop")
	require.NoError(t, err)

	stage := LoadStage(cfg)

	assert.Equal(t, stage.GroundLevel, stage.Spawn.Y, "rooftop spawns on the ground")
	assert.NotEmpty(t, stage.Obstacles)
}
