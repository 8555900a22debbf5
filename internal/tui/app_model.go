package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"lexdesk/internal/dragdrop"
	"lexdesk/internal/fetch"
	"lexdesk/internal/geometry"
	"lexdesk/internal/identity"
	"lexdesk/internal/model"
	"lexdesk/internal/store"
	"lexdesk/internal/workspace"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragWindow
	dragResize
	dragItem
)

type dragState struct {
	mode     dragMode
	windowID string
	handle   geometry.Handle

	startMouseX float64
	startMouseY float64
	startRect   geometry.Rect

	// last pointer cell, for the item drag ghost
	cellX, cellY int
}

type inputMode int

const (
	inputNone inputMode = iota
	inputRenameWindow
	inputNewCollection
	inputOpenArticle
)

type loadResultMsg struct {
	res fetch.Result
}

type appModel struct {
	store store.Store
	saver *store.DebouncedSaver
	st    *workspace.State
	ui    *store.UIState
	log   zerolog.Logger

	loader *fetch.Loader

	width          int
	height         int
	seenWindowSize bool

	focusedID string

	snapper geometry.Snapper
	tracker geometry.MomentumTracker
	dd      *dragdrop.Coordinator
	drag    dragState

	input     textinput.Model
	inputMode inputMode

	showDetail bool

	status string
}

func newAppModel(s store.Store, st *workspace.State, articles fetch.ArticleFetcher, logger zerolog.Logger) appModel {
	applyColorProfilePreference()
	applyThemePreference()

	ui, err := s.LoadUIState()
	if err != nil {
		ui = &store.UIState{Version: 1}
	}

	ti := textinput.New()
	ti.CharLimit = 200

	m := appModel{
		store:  s,
		saver:  store.NewDebouncedSaver(s, 0),
		st:     st,
		ui:     ui,
		log:    logger,
		loader: fetch.NewLoader(st, articles, logger),
		dd:     dragdrop.New(st, 0),
		input:  ti,
	}
	if _, ok := st.FindWindow(ui.FocusedWindowID); ok {
		m.focusedID = ui.FocusedWindowID
	} else if w := topWindow(st); w != nil {
		m.focusedID = w.ID
	}
	m.showDetail = ui.ShowDetail && ui.OpenArticle != ""
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// topWindow is the frontmost non-hidden window, or nil.
func topWindow(st *workspace.State) *model.Window {
	var top *model.Window
	for _, w := range st.Windows {
		if w.Hidden {
			continue
		}
		if top == nil || w.StackOrder > top.StackOrder {
			top = w
		}
	}
	return top
}

func (m *appModel) focusedWindow() (*model.Window, bool) {
	return m.st.FindWindow(m.focusedID)
}

// focus raises the window (pinned windows keep their stack order) and moves
// keyboard focus to it.
func (m *appModel) focus(windowID string) {
	m.focusedID = windowID
	m.st.BringToFront(windowID)
	m.saver.Notify(m.st)
}

// cycleFocus moves focus through the non-hidden windows in stack order.
func (m *appModel) cycleFocus(backwards bool) {
	var ws []*model.Window
	for _, w := range m.st.Windows {
		if !w.Hidden {
			ws = append(ws, w)
		}
	}
	if len(ws) == 0 {
		m.focusedID = ""
		return
	}
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].StackOrder < ws[j].StackOrder })
	cur := -1
	for i, w := range ws {
		if w.ID == m.focusedID {
			cur = i
			break
		}
	}
	step := 1
	if backwards {
		step = len(ws) - 1
	}
	next := ws[(cur+step+len(ws))%len(ws)]
	m.focus(next.ID)
}

func (m *appModel) snapEnabled() bool {
	return m.ui.SnapEnabled == nil || *m.ui.SnapEnabled
}

// viewport is the drag area in unit space: the whole terminal minus the
// status bar row.
func (m *appModel) viewport() geometry.Viewport {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	return geometry.Viewport{
		Width:  float64(m.width) * cellW,
		Height: float64(h) * cellH,
	}
}

func rectOf(w *model.Window) geometry.Rect {
	return geometry.Rect{X: w.Position.X, Y: w.Position.Y, Width: w.Size.Width, Height: w.Size.Height}
}

// otherRects gathers the visible sibling bounds a dragged window snaps
// against, in list order.
func (m *appModel) otherRects(excludeID string) []geometry.Rect {
	var out []geometry.Rect
	for _, w := range visibleWindows(m.st.Windows) {
		if w.ID != excludeID {
			out = append(out, rectOf(w))
		}
	}
	return out
}

// openArticle resolves the detail pane's article by unique id across the
// whole workspace.
func (m *appModel) openArticle() (model.Article, model.ActRef, bool) {
	want := m.ui.OpenArticle
	if want == "" {
		return model.Article{}, model.ActRef{}, false
	}
	for _, w := range m.st.Windows {
		for _, it := range w.Content {
			switch v := it.(type) {
			case *model.GroupBlock:
				for _, a := range v.Articles {
					if identity.UniqueID(a) == want {
						return a, v.Act, true
					}
				}
			case *model.StandaloneArticle:
				if identity.UniqueID(v.Article) == want {
					return v.Article, v.SourceAct, true
				}
			case *model.Collection:
				for _, e := range v.Entries {
					if identity.UniqueID(e.Article) == want {
						return e.Article, e.SourceAct, true
					}
				}
			}
		}
	}
	return model.Article{}, model.ActRef{}, false
}

// firstArticle picks the window's first article for the detail view.
func firstArticle(w *model.Window) (model.Article, bool) {
	for _, it := range w.Content {
		switch v := it.(type) {
		case *model.GroupBlock:
			if len(v.Articles) > 0 {
				return v.Articles[0], true
			}
		case *model.StandaloneArticle:
			return v.Article, true
		case *model.Collection:
			if len(v.Entries) > 0 {
				return v.Entries[0].Article, true
			}
		}
	}
	return model.Article{}, false
}
