// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/webslinger/internal/application/replay"
	"github.com/younwookim/webslinger/internal/application/scene"
	"github.com/younwookim/webslinger/internal/application/state"
	"github.com/younwookim/webslinger/internal/application/system"
	"github.com/younwookim/webslinger/internal/domain/animation"
	"github.com/younwookim/webslinger/internal/domain/entity"
	"github.com/younwookim/webslinger/internal/infrastructure/config"
)

var (
	colorObstacle = colornames.Green
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

type inputSource interface {
	GetInput() system.InputState
}

// changeSource reports changed config files without blocking
type changeSource interface {
	Poll() (string, bool)
}

// replaySaver keeps the session recording after the scene exits
type replaySaver interface {
	SaveLast(data replay.ReplayData) error
}

// Options are the optional collaborators of the scene
type Options struct {
	RecordPath string       // record input to this file; empty disables file output
	Store      replaySaver  // keep the recording here on exit
	Watcher    changeSource // character config changes
	Reload     func() (*config.CharacterConfig, error)
}

// Playing is the main gameplay scene
type Playing struct {
	character *config.CharacterConfig
	stageCfg  *config.StageConfig
	stage     *entity.Stage
	state     state.GameState
	ctrl      *system.Controller[*ebiten.Image]
	input     inputSource
	pressed   func(ebiten.Key) bool // edge-triggered keys
	screenW   int
	screenH   int

	background color.Color
	scenery    []Drawable
	last       system.Output[*ebiten.Image]

	opts     Options
	recorder *Recorder
}

// New creates the scene for one character on one stage. set must contain
// every clip named in the character config.
func New(cfg *config.CharacterConfig, stageCfg *config.StageConfig, stage *entity.Stage,
	set *animation.ClipSet[*ebiten.Image], opts Options) (*Playing, error) {
	ctrl, err := system.NewController(set, system.ClipsFromConfig(cfg), system.TuningFromConfig(cfg),
		stage.Spawn, stage.GroundLevel)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		character:  cfg,
		stageCfg:   stageCfg,
		stage:      stage,
		state:      state.StatePlaying,
		ctrl:       ctrl,
		input:      system.NewInputSystem(),
		pressed:    inpututil.IsKeyJustPressed,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		background: backgroundColor(stageCfg.Background.Color),
		opts:       opts,
	}
	for _, o := range stage.Obstacles {
		p.scenery = append(p.scenery, obstacleSprite{obstacle: o, color: colorObstacle})
	}

	if opts.RecordPath != "" || opts.Store != nil {
		p.recorder = NewRecorder(stageCfg.ID)
		if opts.RecordPath != "" {
			log.Printf("Recording enabled: %s", opts.RecordPath)
		}
	}

	return p, nil
}

func backgroundColor(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.Black
}

// Update proceeds the scene by dt seconds (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyConfigChanges()

	switch p.state {
	case state.StatePlaying:
		if err := p.updatePlaying(dt); err != nil {
			return nil, err
		}
	case state.StatePaused:
		if p.pressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil
}

func (p *Playing) updatePlaying(dt float64) error {
	if p.pressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil
	}

	// F5: save recording manually
	if p.pressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	// R: back to spawn
	respawned := p.pressed(ebiten.KeyR)
	if respawned {
		p.ctrl.Respawn(p.stage.Spawn)
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt, respawned)
	}

	out, err := p.ctrl.Step(input, dt)
	if err != nil {
		return fmt.Errorf("character step: %w", err)
	}
	if out.Action {
		log.Println("swing")
	}
	p.last = out
	return nil
}

// applyConfigChanges retunes the character when its config file changed.
func (p *Playing) applyConfigChanges() {
	if p.opts.Watcher == nil || p.opts.Reload == nil {
		return
	}

	changed := false
	for {
		name, ok := p.opts.Watcher.Poll()
		if !ok {
			break
		}
		if filepath.Base(name) == config.CharacterFile {
			changed = true
		}
	}
	if !changed {
		return
	}

	cfg, err := p.opts.Reload()
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		return
	}
	p.character = cfg
	p.ctrl.Retune(system.TuningFromConfig(cfg))
	log.Printf("Config reloaded: %s", config.CharacterFile)
}

// saveRecording writes the recording to the record path, or to a
// timestamped file in the working directory when none was given.
func (p *Playing) saveRecording() string {
	path := p.opts.RecordPath
	if path == "" {
		path = GenerateFilename()
	}
	if err := p.recorder.Save(path); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return ""
	}
	log.Printf("Recording saved: %s (%d frames)", path, p.recorder.FrameCount())
	return path
}

// Draw renders the scene
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	for _, d := range p.scenery {
		d.Draw(screen)
	}
	if p.last.Handle != nil {
		characterSprite{out: p.last}.Draw(screen)
	}

	p.drawHUD(screen)
	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	body := p.ctrl.Body()
	clip, _ := p.ctrl.Animation().ActiveClip()
	text := fmt.Sprintf("%s %s | clip %s #%d\npos %.1f,%.1f vel %.1f,%.1f\nTPS %.0f\n\nArrows/WASD: Move | Up/W: Jump | Space: Swing | R: Respawn | ESC: Pause",
		p.ctrl.Motion(), p.ctrl.Facing(), clip, p.ctrl.Animation().Cursor(),
		body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y,
		ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves the recording
func (p *Playing) OnExit() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	if p.opts.RecordPath != "" {
		p.saveRecording()
	}
	if p.opts.Store != nil {
		if err := p.opts.Store.SaveLast(p.recorder.Data()); err != nil {
			log.Printf("Failed to keep last recording: %v", err)
		}
	}
}

// Layout returns the logical screen size
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Controller exposes the character controller
func (p *Playing) Controller() *system.Controller[*ebiten.Image] {
	return p.ctrl
}
