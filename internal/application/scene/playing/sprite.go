package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/webslinger/internal/application/system"
	"github.com/younwookim/webslinger/internal/domain/entity"
)

// Drawable is anything the scene renders in screen space
type Drawable interface {
	Draw(screen *ebiten.Image)
}

type obstacleSprite struct {
	obstacle entity.Obstacle
	color    color.Color
}

func (s obstacleSprite) Draw(screen *ebiten.Image) {
	o := s.obstacle
	at := o.Pos()
	ebitenutil.DrawRect(screen, at.X, at.Y, o.Width, o.Height, s.color)
}

// characterSprite draws one controller output with its top-left corner at
// the body position.
type characterSprite struct {
	out system.Output[*ebiten.Image]
}

func (s characterSprite) Draw(screen *ebiten.Image) {
	w := s.out.Handle.Bounds().Dx()
	screen.DrawImage(s.out.Handle, frameOptions(s.out, w, s.out.Mirror))
}

// frameOptions places a frame of width w at the position of at, flipped
// horizontally within its own bounds when mirror is set.
func frameOptions(at entity.Positionable, w int, mirror bool) *ebiten.DrawImageOptions {
	pos := at.Pos()
	op := &ebiten.DrawImageOptions{}
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	return op
}
