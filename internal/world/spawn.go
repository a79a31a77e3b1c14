package world

import (
	"image/color"

	"dodge/internal/entity"
)

// firstFree returns the index of the first inactive slot, or -1.
func firstFree[T any](slots []T, active func(*T) bool) int {
	for i := range slots {
		if !active(&slots[i]) {
			return i
		}
	}
	return -1
}

// spawnObstacles activates one pooled obstacle each time the score
// reaches the next threshold.
func (w *World) spawnObstacles() {
	for w.Score >= w.nextSpawn {
		w.nextSpawn += SpawnEvery

		i := firstFree(w.Obstacles[:], func(o *entity.GameObject) bool { return o.Active })
		if i < 0 {
			continue
		}
		w.Obstacles[i] = entity.GameObject{
			Rect: entity.Rect{
				X: w.randX(ObstacleSize),
				Y: -ObstacleSize,
				W: ObstacleSize,
				H: ObstacleSize,
			},
			Speed:  entity.Vec2{Y: w.randSpeed()},
			Color:  obstaclePalette[w.rng.Intn(len(obstaclePalette))],
			Active: true,
		}
		w.events |= EventObstacleSpawned
	}
}

func (w *World) advanceObstacles() {
	factor := w.Difficulty
	if w.slowLeft > 0 {
		factor *= SlowFactor
	}
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.Active {
			continue
		}
		o.Fall(factor)
		if o.Below(w.Height) {
			w.recycle(o)
		}
	}
}

// recycle moves an obstacle that reached the floor back above the screen.
func (w *World) recycle(o *entity.GameObject) {
	w.events |= EventFloorHit
	if w.features.Effects {
		cx, _ := o.Rect.Center()
		w.spawnEffect(cx, w.Height, o.Color)
	}

	o.Rect.Y = -o.Rect.H
	o.Rect.X = w.randX(o.Rect.W)
	if w.features.Pool {
		o.Speed.Y = w.randSpeed()
	}
}

// spawnEffect drops the effect when every slot is busy.
func (w *World) spawnEffect(x, y float64, c color.RGBA) {
	i := firstFree(w.Effects[:], func(e *entity.FloorHitEffect) bool { return e.Active })
	if i < 0 {
		return
	}
	w.Effects[i].Start(x, y, c)
}

func (w *World) updatePowerUps(dt float64) {
	for i := range w.PowerUps {
		w.PowerUps[i].Update(dt)
	}

	w.powerUpClock += dt
	if w.powerUpClock < PowerUpInterval {
		return
	}
	w.powerUpClock -= PowerUpInterval

	i := firstFree(w.PowerUps[:], func(p *entity.PowerUp) bool { return p.Active })
	if i < 0 {
		return
	}
	kind := entity.PowerKinds[w.rng.Intn(len(entity.PowerKinds))]
	w.PowerUps[i] = entity.PowerUp{
		Rect: entity.Rect{
			X: w.randX(PowerUpSize),
			Y: w.rng.Float64() * (w.Height - PowerUpSize),
			W: PowerUpSize,
			H: PowerUpSize,
		},
		Kind:     kind,
		Active:   true,
		Lifetime: PowerUpLifetime,
		Duration: durationOf(kind),
	}
}

func durationOf(k entity.PowerKind) float64 {
	switch k {
	case entity.PowerInvincible:
		return InvincibleDuration
	case entity.PowerSlowMotion:
		return SlowDuration
	case entity.PowerShrink:
		return ShrinkDuration
	}
	return 0
}
