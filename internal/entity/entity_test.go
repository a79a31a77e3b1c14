package entity

import (
	"image/color"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"partial", Rect{X: 140, Y: 140, W: 40, H: 40}, true},
		{"touching right edge", Rect{X: 150, Y: 100, W: 40, H: 40}, false},
		{"touching bottom edge", Rect{X: 100, Y: 150, W: 40, H: 40}, false},
		{"left of", Rect{X: 0, Y: 100, W: 40, H: 40}, false},
		{"above", Rect{X: 100, Y: 0, W: 40, H: 40}, false},
		{"covering", Rect{X: 0, Y: 0, W: 400, H: 400}, true},
	}

	for _, tt := range tests {
		if got := base.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Expected %v, got %v", tt.name, tt.want, got)
		}
		if got := tt.other.Overlaps(base); got != tt.want {
			t.Errorf("%s (swapped): Expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestRectClampTo(t *testing.T) {
	r := Rect{X: 790, Y: -5, W: 50, H: 50}.ClampTo(800, 600)
	if r.X != 750 || r.Y != 0 {
		t.Errorf("Expected (750, 0), got (%v, %v)", r.X, r.Y)
	}
}

func TestRectResizeKeepsCenter(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 50}
	s := r.Resize(25, 25)

	cx, cy := r.Center()
	sx, sy := s.Center()
	if cx != sx || cy != sy {
		t.Errorf("Expected center (%v, %v), got (%v, %v)", cx, cy, sx, sy)
	}
	if s.W != 25 || s.H != 25 {
		t.Errorf("Expected size 25x25, got %vx%v", s.W, s.H)
	}
}

func TestGameObjectFall(t *testing.T) {
	o := GameObject{Rect: Rect{Y: 0, W: 40, H: 40}, Speed: Vec2{Y: 4}, Active: true}
	o.Fall(1.5)
	if o.Rect.Y != 6 {
		t.Errorf("Expected y 6, got %v", o.Rect.Y)
	}
	if o.Below(6) {
		t.Error("Expected object at the floor line not to be below it")
	}
	o.Fall(1)
	if !o.Below(6) {
		t.Error("Expected object to be below the floor")
	}
}

func TestPowerUpExpires(t *testing.T) {
	p := PowerUp{Active: true, Lifetime: 1, Duration: 5}
	for i := 0; i < 59; i++ {
		p.Update(1.0 / 60)
	}
	if !p.Active {
		t.Fatal("Expected power-up to still be active before its lifetime")
	}
	p.Update(1.0 / 30)
	if p.Active {
		t.Error("Expected power-up to expire after its lifetime")
	}
	if p.Remaining() != 0 {
		t.Errorf("Expected no time remaining, got %v", p.Remaining())
	}
}

func TestFloorHitEffectFades(t *testing.T) {
	var e FloorHitEffect
	e.Start(10, 600, color.RGBA{R: 200, A: 255})

	prevRadius := e.Radius
	steps := 0
	for e.Active {
		e.Update(1.0 / 60)
		if e.Radius <= prevRadius {
			t.Fatalf("Expected radius to grow, got %v after %v", e.Radius, prevRadius)
		}
		prevRadius = e.Radius
		steps++
		if steps > 1000 {
			t.Fatal("Expected effect to expire")
		}
	}
	if e.Alpha != 0 {
		t.Errorf("Expected alpha 0 once inactive, got %v", e.Alpha)
	}
	if c := e.Faded(); c.A != 0 {
		t.Errorf("Expected transparent color, got alpha %d", c.A)
	}
}

func TestPowerKindString(t *testing.T) {
	for _, k := range PowerKinds {
		if k.String() == "unknown" {
			t.Errorf("Expected a name for kind %d", k)
		}
	}
}
