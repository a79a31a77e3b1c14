package world

import "fmt"

// DebugInfo summarizes the live state for the debug overlay.
func (w *World) DebugInfo() string {
	obstacles, powerUps, effects := 0, 0, 0
	for i := range w.Obstacles {
		if w.Obstacles[i].Active {
			obstacles++
		}
	}
	for i := range w.PowerUps {
		if w.PowerUps[i].Active {
			powerUps++
		}
	}
	for i := range w.Effects {
		if w.Effects[i].Active {
			effects++
		}
	}
	return fmt.Sprintf("RULES: %s  PHASE: %s\nFIELD: %.0fx%.0f\nOBSTACLES: %d/%d  POWER-UPS: %d/%d  EFFECTS: %d/%d",
		w.variant, w.Phase(), w.Width, w.Height,
		obstacles, MaxObstacles, powerUps, MaxPowerUps, effects, MaxEffects)
}
