package geometry

import "time"

const (
	// maxSamples caps the rolling buffer of pointer samples.
	maxSamples = 5
	// flickWindow: a release whose retained samples span less than this is
	// a flick and gets momentum; anything slower commits the raw position.
	flickWindow = 300 * time.Millisecond
	// momentumFactor scales the instantaneous velocity (units/ms) into a
	// projected displacement. A heuristic, not a physical simulation.
	momentumFactor = 80.0
)

type sample struct {
	x, y float64
	at   time.Time
}

// MomentumTracker records recent pointer positions during a window drag in a
// fixed-size ring buffer and projects a release displacement for flicks.
type MomentumTracker struct {
	ring [maxSamples]sample
	head int
	n    int
}

// Reset clears the buffer. Call on drag start.
func (m *MomentumTracker) Reset() {
	m.head = 0
	m.n = 0
}

// Record appends a pointer sample, evicting the oldest when full.
func (m *MomentumTracker) Record(x, y float64, at time.Time) {
	m.ring[m.head] = sample{x: x, y: y, at: at}
	m.head = (m.head + 1) % maxSamples
	if m.n < maxSamples {
		m.n++
	}
}

func (m *MomentumTracker) oldest() sample {
	if m.n < maxSamples {
		return m.ring[0]
	}
	return m.ring[m.head]
}

func (m *MomentumTracker) newest() sample {
	return m.ring[(m.head+maxSamples-1)%maxSamples]
}

// Project returns the extra displacement to apply at release. A flick —
// fewer than flickWindow between the oldest and newest retained samples,
// with at least two samples — projects velocity times the momentum factor;
// anything else returns (0, 0, false) and the release position is committed
// unmodified.
func (m *MomentumTracker) Project() (dx, dy float64, flick bool) {
	if m.n < 2 {
		return 0, 0, false
	}
	first, last := m.oldest(), m.newest()
	elapsed := last.at.Sub(first.at)
	if elapsed >= flickWindow || elapsed <= 0 {
		return 0, 0, false
	}
	// Float division: a sub-millisecond span is still a flick.
	ms := float64(elapsed) / float64(time.Millisecond)
	vx := (last.x - first.x) / ms
	vy := (last.y - first.y) / ms
	return vx * momentumFactor, vy * momentumFactor, true
}

// Release computes the final committed rect for a drag that ends with the
// window at r: momentum displacement for flicks, then a viewport clamp.
func (m *MomentumTracker) Release(r Rect, vp Viewport) Rect {
	dx, dy, flick := m.Project()
	if flick {
		r.X += dx
		r.Y += dy
	}
	return ClampToViewport(r, vp)
}
