package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"lexdesk/internal/model"
	"lexdesk/internal/store"
	"lexdesk/internal/workspace"
)

func newTestModel(t *testing.T, st *workspace.State) appModel {
	t.Helper()
	m := newAppModel(store.Store{Dir: t.TempDir()}, st, nil, zerolog.Nop())
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return nm.(appModel)
}

func mouse(m appModel, action tea.MouseAction, button tea.MouseButton, x, y int) appModel {
	nm, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
	return nm.(appModel)
}

func TestMouseDrag_MovesWindow(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "A", 10, 2, 20, 6)
	m := newTestModel(t, st)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 15, 2)
	if m.drag.mode != dragWindow {
		t.Fatalf("press on title must start a window drag, mode=%v", m.drag.mode)
	}
	// Slow drag: the sample span exceeds the flick window, so the release
	// commits the raw position instead of projecting momentum.
	time.Sleep(320 * time.Millisecond)
	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 20, 2)
	if w.Position.X != 10*cellW+5*cellW {
		t.Fatalf("x = %v; want %v", w.Position.X, 15*cellW)
	}
	m = mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, 20, 2)
	if m.drag.mode != dragNone {
		t.Fatalf("release must end the drag")
	}
	if w.Position.X != 15*cellW || w.Position.Y != 2*cellH {
		t.Fatalf("committed position = %+v", w.Position)
	}
}

func TestMouseDrag_SnapsToSiblingEdge(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	other := windowAt(st, "B", 40, 2, 20, 6)
	w := windowAt(st, "A", 10, 2, 20, 6)
	m := newTestModel(t, st)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 15, 2)
	// Drag so A's right edge lands within threshold of B's left edge.
	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 24, 2)
	if got := w.Position.X; got != other.Position.X-w.Size.Width {
		t.Fatalf("x = %v; want snapped against %v", got, other.Position.X-w.Size.Width)
	}
	_ = m
}

func TestMouseResize_BottomRightGrowsWindow(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "A", 10, 2, 25, 7)
	m := newTestModel(t, st)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 34, 8)
	if m.drag.mode != dragResize {
		t.Fatalf("corner press must start a resize, mode=%v", m.drag.mode)
	}
	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 38, 9)
	if w.Size.Width != 29*cellW || w.Size.Height != 8*cellH {
		t.Fatalf("size = %+v", w.Size)
	}
	if w.Position.X != 10*cellW || w.Position.Y != 2*cellH {
		t.Fatalf("origin must stay anchored, got %+v", w.Position)
	}
	_ = mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, 38, 9)
}

func TestMouseDrag_StandaloneOntoGroupMerges(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	src := windowAt(st, "src", 0, 0, 12, 3)
	st.AddStandaloneArticle(src.ID, model.Article{Number: "3-bis"}, testAct)
	dst := windowAt(st, "dst", 30, 0, 12, 5)
	st.AddArticlesToGroup(dst.ID, testAct, []model.Article{{Number: "3"}})
	m := newTestModel(t, st)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 2, 1)
	if m.drag.mode != dragItem {
		t.Fatalf("press on a standalone row must arm an item drag, mode=%v", m.drag.mode)
	}
	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 33, 1)
	m = mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, 33, 1)

	if len(st.Windows) != 1 {
		t.Fatalf("emptied source window must be pruned; windows=%d", len(st.Windows))
	}
	g, ok := st.Windows[0].Content[0].(*model.GroupBlock)
	if !ok || len(g.Articles) != 2 {
		t.Fatalf("merge failed: %+v", st.Windows[0].Content)
	}
	if m.drag.mode != dragNone {
		t.Fatalf("drag must reset after release")
	}
}

func TestMouseClick_WithoutTravelOnlyFocuses(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	src := windowAt(st, "src", 0, 0, 12, 3)
	st.AddStandaloneArticle(src.ID, model.Article{Number: "3"}, testAct)
	m := newTestModel(t, st)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 2, 1)
	m = mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, 2, 1)

	if len(st.Windows) != 1 || len(st.Windows[0].Content) != 1 {
		t.Fatalf("a click must not mutate content")
	}
	if m.focusedID != src.ID {
		t.Fatalf("click must focus the window")
	}
}

func TestKeys_NewWindowAndSnapToggle(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	m := newTestModel(t, st)

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = nm.(appModel)
	if len(st.Windows) != 1 || m.focusedID != st.Windows[0].ID {
		t.Fatalf("'n' must create and focus a window")
	}

	nm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = nm.(appModel)
	if m.snapEnabled() {
		t.Fatalf("'s' must toggle snapping off")
	}
}

func TestKeys_QuitFlushesState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := workspace.NewState()
	st.AddWindow("A", nil)
	m := newAppModel(store.Store{Dir: dir}, st, nil, zerolog.Nop())
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = nm.(appModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	got, err := store.Store{Dir: dir}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Windows) != 1 {
		t.Fatalf("quit must flush the workspace to disk")
	}
}

func TestView_RendersWindowsAndStatusBar(t *testing.T) {
	t.Parallel()

	st := workspace.NewState()
	w := windowAt(st, "ricerca", 2, 1, 20, 5)
	st.AddStandaloneArticle(w.ID, model.Article{Number: "3"}, testAct)
	m := newTestModel(t, st)

	out := m.View()
	if !strings.Contains(out, "ricerca") {
		t.Fatalf("view must show the window label")
	}
	if !strings.Contains(out, "art. 3") {
		t.Fatalf("view must show the article row")
	}
	if !strings.Contains(out, "lexdesk") {
		t.Fatalf("view must show the status bar")
	}
}
