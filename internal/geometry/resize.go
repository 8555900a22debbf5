package geometry

// Minimum window size. Deltas are clamped before they are applied, so the
// anchored edge never drifts when the minimum is hit.
const (
	MinWidth  = 200.0
	MinHeight = 100.0
)

// Handle identifies one of the 8 resize handles.
type Handle int

const (
	HandleLeft Handle = iota
	HandleRight
	HandleTop
	HandleBottom
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

func (h Handle) hasLeft() bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

func (h Handle) hasRight() bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

func (h Handle) hasTop() bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

func (h Handle) hasBottom() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// Resize applies a pointer delta to a rect via the given handle. Right/bottom
// handles adjust size only; left/top handles shift the origin by the applied
// delta and shrink/grow size by the same amount, keeping the opposite edge
// fixed. The delta is clamped first so the minimum size never pulls the
// anchored edge out of place.
func Resize(r Rect, h Handle, dx, dy float64) Rect {
	if h.hasLeft() {
		// Left edge moves by dx; width changes by -dx. Clamp dx so width
		// stays >= MinWidth.
		if r.Width-dx < MinWidth {
			dx = r.Width - MinWidth
		}
		r.X += dx
		r.Width -= dx
	}
	if h.hasRight() {
		if r.Width+dx < MinWidth {
			dx = MinWidth - r.Width
		}
		r.Width += dx
	}
	if h.hasTop() {
		if r.Height-dy < MinHeight {
			dy = r.Height - MinHeight
		}
		r.Y += dy
		r.Height -= dy
	}
	if h.hasBottom() {
		if r.Height+dy < MinHeight {
			dy = MinHeight - r.Height
		}
		r.Height += dy
	}
	return r
}
