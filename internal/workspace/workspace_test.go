package workspace

import (
	"testing"

	"lexdesk/internal/model"
)

func TestAddWindow_CascadesAndStacks(t *testing.T) {
	t.Parallel()

	st := NewState()
	var wins []*model.Window
	for i := 0; i < 7; i++ {
		wins = append(wins, st.AddWindow("w", nil))
	}

	// Positions stagger by count%5 * step, so window 5 lands back on window 0.
	if wins[0].Position != wins[5].Position {
		t.Fatalf("expected cascade to wrap after 5 windows; got %v vs %v", wins[0].Position, wins[5].Position)
	}
	if wins[0].Position == wins[1].Position {
		t.Fatalf("expected consecutive windows to stagger; both at %v", wins[0].Position)
	}
	if wins[1].Position.X-wins[0].Position.X != cascadeStep {
		t.Fatalf("expected %v step; got %v", cascadeStep, wins[1].Position.X-wins[0].Position.X)
	}

	// Stack orders are unique and increasing.
	seen := map[int]bool{}
	for i, w := range wins {
		if seen[w.StackOrder] {
			t.Fatalf("duplicate stack order %d", w.StackOrder)
		}
		seen[w.StackOrder] = true
		if i > 0 && w.StackOrder <= wins[i-1].StackOrder {
			t.Fatalf("stack order not monotonic: %d after %d", w.StackOrder, wins[i-1].StackOrder)
		}
	}
}

func TestAddWindow_InitialGroupDedupsAndSorts(t *testing.T) {
	t.Parallel()

	st := NewState()
	w := st.AddWindow("w", &model.GroupBlock{Act: testAct, Articles: []model.Article{
		{Number: "3 bis"}, {Number: "1"}, {Number: "3-Bis."},
	}})

	g := groupIn(t, w)
	if len(g.Articles) != 2 {
		t.Fatalf("expected initial duplicates collapsed; got %v", numbers(g))
	}
	if g.Articles[0].Number != "1" {
		t.Fatalf("expected initial articles sorted; got %v", numbers(g))
	}
}

func TestBringToFront_PinnedKeepsStackOrder(t *testing.T) {
	t.Parallel()

	st := NewState()
	a := st.AddWindow("a", nil)
	b := st.AddWindow("b", nil)

	st.TogglePin(a.ID)
	before := a.StackOrder
	st.BringToFront(a.ID)
	if a.StackOrder != before {
		t.Fatalf("pinned window stack order changed: %d -> %d", before, a.StackOrder)
	}

	// Unpinned always becomes the new global maximum.
	st.BringToFront(b.ID)
	if b.StackOrder <= a.StackOrder {
		t.Fatalf("expected unpinned bring-to-front to yield new max; got %d (pinned at %d)", b.StackOrder, a.StackOrder)
	}
	max := b.StackOrder
	st.BringToFront(b.ID)
	if b.StackOrder <= max {
		t.Fatalf("expected a fresh max on every bring-to-front; got %d after %d", b.StackOrder, max)
	}
}

func TestToggles(t *testing.T) {
	t.Parallel()

	st := NewState()
	w := st.AddWindow("w", nil)

	st.ToggleMinimize(w.ID)
	if !w.Minimized {
		t.Fatalf("expected minimized")
	}
	st.ToggleHidden(w.ID)
	if !w.Hidden {
		t.Fatalf("expected hidden")
	}
	order := w.StackOrder
	st.ToggleMinimize(w.ID)
	st.ToggleHidden(w.ID)
	if w.Minimized || w.Hidden {
		t.Fatalf("expected flags back off")
	}
	if w.StackOrder != order {
		t.Fatalf("toggles must not touch stack order")
	}

	// Unknown ids are silent no-ops.
	st.ToggleMinimize("win-missing")
	st.BringToFront("win-missing")
}

func TestBeginArticleLoad_SingleFlight(t *testing.T) {
	t.Parallel()

	st := NewState()
	w := st.AddWindow("w", nil)

	if !st.BeginArticleLoad(w.ID, "7") {
		t.Fatalf("first load should start")
	}
	if st.BeginArticleLoad(w.ID, "8") {
		t.Fatalf("second load while in flight must be ignored")
	}
	st.EndArticleLoad(w.ID)
	if !st.BeginArticleLoad(w.ID, "8") {
		t.Fatalf("load should start again after the flag clears")
	}
}
