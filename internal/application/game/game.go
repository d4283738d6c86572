// Package game runs the active scene under ebiten and feeds it elapsed time.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/webslinger/internal/application/scene"
)

// Game implements ebiten.Game. It owns the current scene, switches scenes
// when Update asks for it, and decides how much time each update covers.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	dt   float64          // fixed step, also the first wall-clock step
	now  func() time.Time // nil means fixed steps
	last time.Time
}

// New creates a Game showing initialScene and calls its OnEnter.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// SetDT sets the fixed step length in seconds.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// UseWallClock makes each update cover the real time since the previous
// one, read from now. Passing nil goes back to fixed steps.
func (g *Game) UseWallClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Update advances the current scene and performs a pending transition.
func (g *Game) Update() error {
	next, err := g.current.Update(g.step())
	if err == nil && next != nil {
		g.switchTo(next)
	}
	return err
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

func (g *Game) step() float64 {
	if g.now == nil {
		return g.dt
	}
	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return g.dt
	}
	elapsed := t.Sub(g.last).Seconds()
	g.last = t
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
