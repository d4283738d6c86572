package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Size        StageSizeConfig  `json:"size"`
	Background  BackgroundConfig `json:"background"`
	GroundLevel float64          `json:"groundLevel"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	Obstacles   []ObstacleConfig `json:"obstacles"`
}

type StageSizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ObstacleConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
