package render

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"dodge/internal/entity"
	"dodge/internal/world"
)

// --- Colors ---
var (
	ColBg       = colornames.Whitesmoke
	ColText     = colornames.Black
	ColDim      = colornames.Dimgray
	ColGameOver = colornames.Crimson
	ColShield   = colornames.Gold
	ColOverlay  = color.RGBA{0, 0, 0, 0x80}
)

// Renderer draws a World. It holds no game state of its own.
type Renderer struct {
	face       *text.GoXFace
	lineHeight float64
	powerUpTex *ebiten.Image
	tick       int
}

// New builds a renderer. powerUpTex may be nil, in which case power-ups
// are drawn as colored squares.
func New(powerUpTex *ebiten.Image) *Renderer {
	face := text.NewGoXFace(bitmapfont.Face)
	m := face.Metrics()
	return &Renderer{
		face:       face,
		lineHeight: m.HAscent + m.HDescent,
		powerUpTex: powerUpTex,
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, w *world.World) {
	r.tick++

	// 1. Clear Screen
	screen.Fill(ColBg)

	// 2. Game over replaces the field
	if w.Phase() == world.PhaseGameOver {
		r.drawGameOver(screen, w)
		return
	}

	// 3. Field
	for i := range w.Effects {
		r.drawEffect(screen, &w.Effects[i])
	}
	for i := range w.PowerUps {
		r.drawPowerUp(screen, &w.PowerUps[i])
	}
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Active {
			fillRect(screen, o.Rect, o.Color)
		}
	}
	r.drawPlayer(screen, w)

	// 4. HUD and overlays
	r.drawHUD(screen, w)
	if w.Phase() == world.PhasePaused {
		r.drawPaused(screen, w)
	}
}

func fillRect(dst *ebiten.Image, rc entity.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), clr, false)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, w *world.World) {
	clr := color.Color(w.Player.Color)
	if w.Invincible() && (r.tick/6)%2 == 0 {
		clr = ColShield
	}
	fillRect(screen, w.Player.Rect, clr)
}

func (r *Renderer) drawPowerUp(screen *ebiten.Image, p *entity.PowerUp) {
	if !p.Active {
		return
	}
	// blink out during the last stretch on the field
	if p.Remaining() < 0.3 && (r.tick/4)%2 == 0 {
		return
	}

	if r.powerUpTex != nil {
		b := r.powerUpTex.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Rect.W/float64(b.Dx()), p.Rect.H/float64(b.Dy()))
		op.GeoM.Translate(p.Rect.X, p.Rect.Y)
		op.ColorScale.ScaleWithColor(world.PowerUpColors[p.Kind])
		screen.DrawImage(r.powerUpTex, op)
		return
	}

	fillRect(screen, p.Rect, world.PowerUpColors[p.Kind])
	vector.StrokeRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), 2, ColText, false)
}

func (r *Renderer) drawEffect(screen *ebiten.Image, e *entity.FloorHitEffect) {
	if !e.Active {
		return
	}
	vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), 3, e.Faded(), true)
}

// drawText draws s with its top-left corner at x, y and a line height of
// size pixels.
func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	scale := size / r.lineHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face, op)
}

// textWidth measures s at the given line height.
func (r *Renderer) textWidth(s string, size float64) float64 {
	w, _ := text.Measure(s, r.face, r.lineHeight)
	return w * size / r.lineHeight
}
