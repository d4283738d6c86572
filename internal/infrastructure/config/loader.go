package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// CharacterFile is the character config file name inside the config root.
const CharacterFile = "character.json"

const stageDir = "stages"

var (
	// ErrInvalidStage is returned for a stage file that parses but cannot be played
	ErrInvalidStage = errors.New("config: invalid stage")
	// ErrInvalidCharacter is returned for a character file whose values cannot drive a character
	ErrInvalidCharacter = errors.New("config: invalid character")
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Character *CharacterConfig
}

// Loader reads JSON configs from a config root: CharacterFile at the top,
// one file per stage under stages/.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a loader over a directory on disk
func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath), basePath)
}

// NewFSLoader creates a loader over fsys; basePath is only reported back.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{fsys: fsys, basePath: basePath}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func (l *Loader) decode(name, what string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", what, err)
	}
	return nil
}

// LoadCharacter loads CharacterFile
func (l *Loader) LoadCharacter() (*CharacterConfig, error) {
	var cfg CharacterConfig
	if err := l.decode(CharacterFile, CharacterFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStage loads stages/<name>.json. A stage without an id takes its
// file name.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.decode(path.Join(stageDir, name+".json"), "stage "+name, &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if cfg.Size.Width <= 0 || cfg.Size.Height <= 0 {
		return nil, fmt.Errorf("%w: %s has size %dx%d", ErrInvalidStage, name, cfg.Size.Width, cfg.Size.Height)
	}
	return &cfg, nil
}

// Stages returns the names of the stage files, sorted.
func (l *Loader) Stages() ([]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(stageDir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), ".json")
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads the configs needed before a stage is chosen
func (l *Loader) LoadAll() (*GameConfig, error) {
	character, err := l.LoadCharacter()
	if err != nil {
		return nil, err
	}
	return &GameConfig{Character: character}, nil
}
