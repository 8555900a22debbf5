package geometry

import (
	"testing"
	"time"
)

func TestMomentum_FlickProjects(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	// 100 units in 100ms => 1 unit/ms rightwards.
	m.Record(0, 0, t0)
	m.Record(50, 0, t0.Add(50*time.Millisecond))
	m.Record(100, 0, t0.Add(100*time.Millisecond))

	dx, dy, flick := m.Project()
	if !flick {
		t.Fatalf("expected a flick")
	}
	if dx != 1*momentumFactor {
		t.Fatalf("dx = %v; want %v", dx, momentumFactor)
	}
	if dy != 0 {
		t.Fatalf("dy = %v; want 0", dy)
	}
}

func TestMomentum_SubMillisecondFlickProjects(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	// 10 units in half a millisecond => 20 units/ms.
	m.Record(0, 0, t0)
	m.Record(10, 0, t0.Add(500*time.Microsecond))

	dx, _, flick := m.Project()
	if !flick {
		t.Fatalf("a sub-millisecond gesture is still a flick")
	}
	if dx != 20*momentumFactor {
		t.Fatalf("dx = %v; want %v", dx, 20*momentumFactor)
	}
}

func TestMomentum_SlowReleaseCommitsRaw(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	m.Record(0, 0, t0)
	m.Record(100, 0, t0.Add(400*time.Millisecond))

	if _, _, flick := m.Project(); flick {
		t.Fatalf("a 400ms sample span must not count as a flick")
	}

	r := m.Release(Rect{X: 100, Y: 50, Width: 300, Height: 200}, Viewport{Width: 1000, Height: 800})
	if r.X != 100 || r.Y != 50 {
		t.Fatalf("slow release must commit the raw position; got %+v", r)
	}
}

func TestMomentum_FewerThanTwoSamples(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	if _, _, flick := m.Project(); flick {
		t.Fatalf("no samples must not flick")
	}
	m.Record(10, 10, time.Now())
	if _, _, flick := m.Project(); flick {
		t.Fatalf("one sample must not flick")
	}
}

func TestMomentum_RingKeepsLastFive(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	// An old, slow prefix that would disqualify the flick if retained...
	m.Record(0, 0, t0)
	m.Record(0, 0, t0.Add(500*time.Millisecond))
	// ...followed by five fast samples that evict it.
	for i := 0; i <= 4; i++ {
		m.Record(float64(i*25), 0, t0.Add(1000*time.Millisecond+time.Duration(i*25)*time.Millisecond))
	}

	dx, _, flick := m.Project()
	if !flick {
		t.Fatalf("expected flick once slow samples are evicted")
	}
	if dx != 1*momentumFactor {
		t.Fatalf("dx = %v; want %v", dx, momentumFactor)
	}
}

func TestMomentum_ReleaseClampsToViewport(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	// Fast flick towards the right edge.
	m.Record(500, 0, t0)
	m.Record(650, 0, t0.Add(50*time.Millisecond))

	vp := Viewport{Width: 1000, Height: 800}
	r := m.Release(Rect{X: 650, Y: 100, Width: 300, Height: 200}, vp)
	if r.X != 700 {
		t.Fatalf("projected position must clamp to the viewport; got x=%v", r.X)
	}
}

func TestMomentum_ResetClearsBuffer(t *testing.T) {
	t.Parallel()

	var m MomentumTracker
	t0 := time.Now()
	m.Record(0, 0, t0)
	m.Record(100, 0, t0.Add(50*time.Millisecond))
	m.Reset()

	if _, _, flick := m.Project(); flick {
		t.Fatalf("reset tracker must not flick")
	}
}
