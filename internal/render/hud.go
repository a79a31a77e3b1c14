package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dodge/internal/entity"
	"dodge/internal/world"
)

func (r *Renderer) drawHUD(screen *ebiten.Image, w *world.World) {
	f := w.Features()

	r.drawText(screen, fmt.Sprintf("Score: %d", w.Score), 10, 10, 20, ColText)
	y := 34.0
	if f.HighScore {
		r.drawText(screen, fmt.Sprintf("Best: %d", w.HighScore), 10, y, 16, ColDim)
		y += 20
	}
	if f.Difficulty {
		r.drawText(screen, fmt.Sprintf("Speed: x%.2f", w.Difficulty), 10, y, 16, ColDim)
		y += 20
	}
	if f.PowerUps {
		for _, k := range entity.PowerKinds {
			left := w.EffectLeft(k)
			if left <= 0 {
				continue
			}
			r.drawText(screen, fmt.Sprintf("%s %.1fs", k, left), 10, y, 16, world.PowerUpColors[k])
			y += 20
		}
	}

	hint := "P: pause"
	r.drawText(screen, hint, w.Width-r.textWidth(hint, 14)-10, 10, 14, ColDim)
}

func (r *Renderer) drawPaused(screen *ebiten.Image, w *world.World) {
	vector.DrawFilledRect(screen, 0, 0, float32(w.Width), float32(w.Height), ColOverlay, false)

	msg := "PAUSED"
	r.drawText(screen, msg, w.Width/2-r.textWidth(msg, 40)/2, w.Height/2-40, 40, ColBg)
	sub := "Press P to resume"
	r.drawText(screen, sub, w.Width/2-r.textWidth(sub, 20)/2, w.Height/2+10, 20, ColBg)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, w *world.World) {
	x := w.Width/2 - 100
	cy := w.Height / 2

	r.drawText(screen, "Game Over!", x, cy-50, 40, ColGameOver)
	r.drawText(screen, fmt.Sprintf("Final Score: %d", w.Score), x, cy, 30, ColText)
	next := cy + 50.0
	if w.Features().HighScore {
		best := fmt.Sprintf("Best: %d", w.HighScore)
		if w.Score >= w.HighScore && w.Score > 0 {
			best += "  NEW!"
		}
		r.drawText(screen, best, x, next, 20, ColDim)
		next += 30
	}
	r.drawText(screen, "Press R to Restart", x, next, 20, ColDim)
}
