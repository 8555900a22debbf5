// Package geometry computes window position and size during drag and resize
// gestures: magnetic snapping against screen and sibling edges, release
// momentum from a rolling sample buffer, and anchored resizing.
package geometry

import "math"

// DefaultSnapThreshold is the magnetic snap distance in viewport units.
const DefaultSnapThreshold = 20.0

// Rect is a window's bounds in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Viewport is the drag area windows are confined to.
type Viewport struct {
	Width, Height float64
}

// Snapper snaps a dragged window's position against the screen edges and the
// other windows. Threshold <= 0 falls back to DefaultSnapThreshold.
type Snapper struct {
	Threshold float64
}

func (s Snapper) threshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return DefaultSnapThreshold
}

// Snap returns the snapped position for the dragged rect. Each axis is
// resolved independently. Candidates are checked in a fixed order — screen
// edges first, then every other window in list order, edges before centers —
// and the last candidate within threshold wins, overriding earlier ones on
// the same axis. Comparisons always use the raw dragged position, so later
// checks are not influenced by earlier snaps.
func (s Snapper) Snap(dragged Rect, others []Rect, vp Viewport) (x, y float64) {
	t := s.threshold()
	x = snapAxis(dragged.X, dragged.Width, vp.Width, axisSpans(others, horizontal), t)
	y = snapAxis(dragged.Y, dragged.Height, vp.Height, axisSpans(others, vertical), t)
	return x, y
}

type axis int

const (
	horizontal axis = iota
	vertical
)

type span struct {
	pos, size float64
}

func axisSpans(others []Rect, a axis) []span {
	out := make([]span, 0, len(others))
	for _, r := range others {
		if a == horizontal {
			out = append(out, span{pos: r.X, size: r.Width})
		} else {
			out = append(out, span{pos: r.Y, size: r.Height})
		}
	}
	return out
}

func snapAxis(pos, size, screenMax float64, others []span, threshold float64) float64 {
	out := pos
	near := func(a, b float64) bool { return math.Abs(a-b) <= threshold }

	// Screen edges.
	if near(pos, 0) {
		out = 0
	}
	if near(pos+size, screenMax) {
		out = screenMax - size
	}

	// Other windows, in list order: the four edge pairings, then centers.
	for _, o := range others {
		if near(pos, o.pos) {
			out = o.pos
		}
		if near(pos, o.pos+o.size) {
			out = o.pos + o.size
		}
		if near(pos+size, o.pos) {
			out = o.pos - size
		}
		if near(pos+size, o.pos+o.size) {
			out = o.pos + o.size - size
		}
		if near(pos+size/2, o.pos+o.size/2) {
			out = o.pos + o.size/2 - size/2
		}
	}
	return out
}

// ClampToViewport keeps a rect's origin inside the viewport. Used when
// committing momentum-projected positions.
func ClampToViewport(r Rect, vp Viewport) Rect {
	r.X = clamp(r.X, 0, math.Max(0, vp.Width-r.Width))
	r.Y = clamp(r.Y, 0, math.Max(0, vp.Height-r.Height))
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
