package systems

import (
	"image"
	"image/color"

	"grimoire/pkg/client/assets"
	"grimoire/pkg/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem implements ui.Canvas on top of an ebiten screen. Clips are
// sub-images of the screen, so everything drawn through them uses screen
// coordinates.
type RenderSystem struct {
	screen *ebiten.Image
	clips  []*ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Begin targets screen for the coming frame.
func (r *RenderSystem) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.clips = r.clips[:0]
}

func (r *RenderSystem) target() *ebiten.Image {
	if n := len(r.clips); n > 0 {
		return r.clips[n-1]
	}
	return r.screen
}

func (r *RenderSystem) FillRect(rect ui.Rect, clr color.Color) {
	vector.DrawFilledRect(r.target(), float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

func (r *RenderSystem) StrokeRect(rect ui.Rect, width float64, clr color.Color) {
	vector.StrokeRect(r.target(), float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), float32(width), clr, false)
}

// DrawText uses the debug font. It only renders white, so colored text
// is tinted through an offscreen copy.
func (r *RenderSystem) DrawText(s string, x, y float64, clr color.Color) {
	if s == "" {
		return
	}
	if clr == ui.ColorText {
		ebitenutil.DebugPrintAt(r.target(), s, int(x), int(y))
		return
	}
	img := assets.TextImage(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	r.target().DrawImage(img, op)
}

func (r *RenderSystem) DrawSprite(key string, dst ui.Rect, alpha float64) bool {
	img := assets.GetImage(key)
	if img == nil {
		return false
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	r.target().DrawImage(img, op)
	return true
}

func (r *RenderSystem) PushClip(rect ui.Rect) {
	area := image.Rect(int(rect.X), int(rect.Y), int(rect.Right()), int(rect.Bottom()))
	parent := r.target()
	r.clips = append(r.clips, parent.SubImage(area.Intersect(parent.Bounds())).(*ebiten.Image))
}

func (r *RenderSystem) PopClip() {
	if len(r.clips) > 0 {
		r.clips = r.clips[:len(r.clips)-1]
	}
}
