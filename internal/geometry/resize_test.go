package geometry

import "testing"

func TestResize_RightHandleAdjustsSizeOnly(t *testing.T) {
	t.Parallel()

	r := Resize(Rect{X: 100, Y: 100, Width: 300, Height: 200}, HandleRight, 40, 999)
	if r.X != 100 || r.Y != 100 {
		t.Fatalf("right handle must not move the origin; got %+v", r)
	}
	if r.Width != 340 || r.Height != 200 {
		t.Fatalf("size = %vx%v; want 340x200", r.Width, r.Height)
	}
}

func TestResize_LeftHandleKeepsRightEdgeFixed(t *testing.T) {
	t.Parallel()

	before := Rect{X: 100, Y: 100, Width: 300, Height: 200}
	r := Resize(before, HandleLeft, -40, 0)
	if r.X != 60 || r.Width != 340 {
		t.Fatalf("expected x=60 width=340; got %+v", r)
	}
	if r.X+r.Width != before.X+before.Width {
		t.Fatalf("right edge drifted: %v -> %v", before.X+before.Width, r.X+r.Width)
	}
}

// Shrinking via the left handle near the minimum applies only the clamped
// delta: at width 220 a 50-unit shrink moves the edge 20 units, width stops
// at the 200 minimum, and the right edge stays fixed.
func TestResize_LeftHandleClampsDeltaAtMinimum(t *testing.T) {
	t.Parallel()

	before := Rect{X: 100, Y: 100, Width: 220, Height: 200}
	r := Resize(before, HandleLeft, 50, 0)
	if r.Width != MinWidth {
		t.Fatalf("width = %v; want %v", r.Width, MinWidth)
	}
	if r.X != 120 {
		t.Fatalf("x = %v; want 120 (20-unit clamped shift, not 50)", r.X)
	}
	if r.X+r.Width != before.X+before.Width {
		t.Fatalf("right edge drifted: %v -> %v", before.X+before.Width, r.X+r.Width)
	}
}

func TestResize_TopHandleClampsDeltaAtMinimum(t *testing.T) {
	t.Parallel()

	before := Rect{X: 100, Y: 100, Width: 300, Height: 120}
	r := Resize(before, HandleTop, 60, 60)
	if r.Height != MinHeight {
		t.Fatalf("height = %v; want %v", r.Height, MinHeight)
	}
	if r.Y != 120 {
		t.Fatalf("y = %v; want 120", r.Y)
	}
	if r.Y+r.Height != before.Y+before.Height {
		t.Fatalf("bottom edge drifted")
	}
}

func TestResize_CornerAdjustsBothAxes(t *testing.T) {
	t.Parallel()

	r := Resize(Rect{X: 100, Y: 100, Width: 300, Height: 200}, HandleBottomRight, 30, 20)
	if r.Width != 330 || r.Height != 220 {
		t.Fatalf("size = %vx%v; want 330x220", r.Width, r.Height)
	}
	if r.X != 100 || r.Y != 100 {
		t.Fatalf("origin moved: %+v", r)
	}

	r = Resize(Rect{X: 100, Y: 100, Width: 300, Height: 200}, HandleTopLeft, -10, -20)
	if r.X != 90 || r.Y != 80 || r.Width != 310 || r.Height != 220 {
		t.Fatalf("top-left resize = %+v", r)
	}
}

func TestResize_RightHandleClampsAtMinimum(t *testing.T) {
	t.Parallel()

	r := Resize(Rect{X: 100, Y: 100, Width: 220, Height: 200}, HandleRight, -50, 0)
	if r.Width != MinWidth {
		t.Fatalf("width = %v; want %v", r.Width, MinWidth)
	}
	if r.X != 100 {
		t.Fatalf("left edge drifted: x=%v", r.X)
	}
}
