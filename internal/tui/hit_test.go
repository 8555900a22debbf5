package tui

import (
	"testing"

	"lexdesk/internal/dragdrop"
	"lexdesk/internal/geometry"
	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

// windowAt pins a window to an exact cell rect for hit testing.
func windowAt(st *workspace.State, label string, x, y, w, h int) *model.Window {
	win := st.AddWindow(label, nil)
	st.SetWindowBounds(win.ID,
		model.Position{X: float64(x) * cellW, Y: float64(y) * cellH},
		model.Size{Width: float64(w) * cellW, Height: float64(h) * cellH},
	)
	return win
}

func TestHitTest_Regions(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "A", 10, 2, 20, 6)
	st.AddStandaloneArticle(w.ID, model.Article{Number: "3"}, testAct)
	m := appModel{st: st}

	cases := []struct {
		name   string
		x, y   int
		kind   hitKind
		handle geometry.Handle
	}{
		{"title", 15, 2, hitTitle, 0},
		{"top left corner", 10, 2, hitResize, geometry.HandleTopLeft},
		{"bottom right corner", 29, 7, hitResize, geometry.HandleBottomRight},
		{"left edge", 10, 4, hitResize, geometry.HandleLeft},
		{"bottom edge", 15, 7, hitResize, geometry.HandleBottom},
		{"first content row", 15, 3, hitItem, 0},
		{"empty body", 15, 5, hitBody, 0},
		{"desktop", 0, 0, hitNone, 0},
	}
	for _, tc := range cases {
		h := m.hitTest(tc.x, tc.y)
		if h.kind != tc.kind {
			t.Fatalf("%s: kind = %v; want %v", tc.name, h.kind, tc.kind)
		}
		if tc.kind == hitResize && h.handle != tc.handle {
			t.Fatalf("%s: handle = %v; want %v", tc.name, h.handle, tc.handle)
		}
		if tc.kind != hitNone && h.windowID != w.ID {
			t.Fatalf("%s: window = %q", tc.name, h.windowID)
		}
	}
}

func TestHitTest_TopmostWindowWins(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	bottom := windowAt(st, "bottom", 5, 1, 20, 8)
	top := windowAt(st, "top", 10, 3, 20, 8)
	m := appModel{st: st}

	if h := m.hitTest(15, 4); h.windowID != top.ID {
		t.Fatalf("overlap must resolve to the frontmost window, got %q", h.windowID)
	}
	// Raise the other window and the same cell hits it instead.
	st.BringToFront(bottom.ID)
	if h := m.hitTest(15, 4); h.windowID != bottom.ID {
		t.Fatalf("after raise, hit = %q; want %q", h.windowID, bottom.ID)
	}
}

func TestHitTest_MinimizedAndHiddenAreNotHit(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "A", 5, 1, 20, 6)
	m := appModel{st: st}

	st.ToggleMinimize(w.ID)
	if h := m.hitTest(10, 2); h.kind != hitNone {
		t.Fatalf("minimized window must not be hittable")
	}
	st.ToggleMinimize(w.ID)
	st.ToggleHidden(w.ID)
	if h := m.hitTest(10, 2); h.kind != hitNone {
		t.Fatalf("hidden window must not be hittable")
	}
}

func TestDropTarget_Mapping(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "A", 0, 0, 20, 8)
	st.AddArticlesToGroup(w.ID, testAct, []model.Article{{Number: "1"}})
	st.CreateCollection(w.ID, "temi")
	m := appModel{st: st}

	// Row 0: group header, row 1: its article, row 2: collection header.
	if tg := m.dropTarget(5, 1); tg.Kind != dragdrop.TargetGroup {
		t.Fatalf("group header target = %v", tg.Kind)
	}
	if tg := m.dropTarget(5, 2); tg.Kind != dragdrop.TargetGroup {
		t.Fatalf("group article row target = %v", tg.Kind)
	}
	if tg := m.dropTarget(5, 3); tg.Kind != dragdrop.TargetCollection {
		t.Fatalf("collection target = %v", tg.Kind)
	}
	if tg := m.dropTarget(5, 5); tg.Kind != dragdrop.TargetWindow || tg.WindowID != w.ID {
		t.Fatalf("body target = %+v", tg)
	}
	if tg := m.dropTarget(60, 20); tg.Kind != dragdrop.TargetNone {
		t.Fatalf("desktop target = %v", tg.Kind)
	}
}

func TestPayloadForRow(t *testing.T) {
	t.Parallel()

	if p, ok := payloadForRow("w1", contentRow{kind: rowStandalone, itemID: "s1", act: testAct}); !ok || p.Kind != dragdrop.PayloadStandaloneArticle {
		t.Fatalf("standalone payload = %+v ok=%v", p, ok)
	}
	if p, ok := payloadForRow("w1", contentRow{kind: rowGroupHeader, itemID: "g1"}); !ok || p.Kind != dragdrop.PayloadGroupHandle {
		t.Fatalf("group handle payload = %+v ok=%v", p, ok)
	}
	if _, ok := payloadForRow("w1", contentRow{kind: rowGroupArticle, itemID: "g1"}); ok {
		t.Fatalf("group article rows are not draggable")
	}
	if _, ok := payloadForRow("w1", contentRow{kind: rowCollectionHeader, itemID: "c1"}); ok {
		t.Fatalf("collections are not draggable")
	}
}
