package world

import (
	"slices"

	"github.com/solarlune/resolv"

	"dodge/internal/entity"
)

const cellSize = 32

// tags let the broad phase filter which shapes to test against
var (
	tagObstacle = resolv.NewTag("obstacle")
	tagPowerUp  = resolv.NewTag("powerup")
)

// body ids: the player, then one per obstacle slot, then one per power-up slot
const (
	playerBody   = 0
	obstacleBody = 1
	powerUpBody  = obstacleBody + MaxObstacles
)

type body struct {
	shape resolv.IShape
	rect  entity.Rect
}

// broadPhase mirrors the active rectangles into a resolv space so the
// player only gets tested against shapes sharing a grid cell with it.
type broadPhase struct {
	space  *resolv.Space
	bodies map[int]*body
	owners map[resolv.IShape]int
}

func newBroadPhase(width, height float64) *broadPhase {
	return &broadPhase{
		space:  resolv.NewSpace(int(width)+1, int(height)+1, cellSize, cellSize),
		bodies: make(map[int]*body),
		owners: make(map[resolv.IShape]int),
	}
}

// track brings body id in line with r, adding, moving or removing its shape.
func (b *broadPhase) track(id int, r entity.Rect, active bool, tags ...resolv.Tags) {
	bd, ok := b.bodies[id]
	if !active {
		if ok {
			b.remove(id, bd)
		}
		return
	}

	if ok && bd.rect.W == r.W && bd.rect.H == r.H {
		if bd.rect != r {
			bd.shape.Move(r.X-bd.rect.X, r.Y-bd.rect.Y)
			bd.rect = r
		}
		return
	}
	if ok {
		b.remove(id, bd)
	}

	sh := resolv.NewRectangleTopLeft(r.X, r.Y, r.W, r.H)
	for _, t := range tags {
		sh.Tags().Set(t)
	}
	b.space.Add(sh)
	b.bodies[id] = &body{shape: sh, rect: r}
	b.owners[sh] = id
}

func (b *broadPhase) remove(id int, bd *body) {
	b.space.Remove(bd.shape)
	delete(b.owners, bd.shape)
	delete(b.bodies, id)
}

// candidates returns the ids of tagged bodies sharing a cell with body
// id, in ascending order.
func (b *broadPhase) candidates(id int, tag resolv.Tags) []int {
	bd, ok := b.bodies[id]
	if !ok {
		return nil
	}

	var ids []int
	bd.shape.SelectTouchingCells(0).FilterShapes().ByTags(tag).ForEach(func(sh resolv.IShape) bool {
		if other, ok := b.owners[sh]; ok {
			ids = append(ids, other)
		}
		return true
	})
	slices.Sort(ids)
	return slices.Compact(ids)
}

// sync mirrors the current world into the broad phase.
func (w *World) sync() {
	w.broad.track(playerBody, w.Player.Rect, true)
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		w.broad.track(obstacleBody+i, o.Rect, o.Active, tagObstacle)
	}
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		w.broad.track(powerUpBody+i, p.Rect, p.Active, tagPowerUp)
	}
}

// rebuild drops the space and re-adds every active body, used after the
// play area changes size.
func (w *World) rebuild() {
	w.broad = newBroadPhase(w.Width, w.Height)
	w.sync()
}

// collide runs the player against obstacles and power-ups. The broad
// phase proposes candidates sharing a grid cell; the exact rectangle
// test decides.
func (w *World) collide() {
	w.sync()
	player := w.Player.Rect

	for _, id := range w.broad.candidates(playerBody, tagObstacle) {
		o := &w.Obstacles[id-obstacleBody]
		if !o.Active || !player.Overlaps(o.Rect) {
			continue
		}
		if w.Invincible() {
			w.events |= EventShielded
			continue
		}
		w.GameOver = true
		w.events |= EventGameOver
		return
	}

	if !w.features.PowerUps {
		return
	}
	for _, id := range w.broad.candidates(playerBody, tagPowerUp) {
		p := &w.PowerUps[id-powerUpBody]
		if !p.Active || !player.Overlaps(p.Rect) {
			continue
		}
		w.apply(p)
		p.Active = false
		w.events |= EventPowerUp
	}
}
