// Package workspace owns the list of workspace windows and every mutation of
// their content. All operations are synchronous and total: an unmatched
// lookup is a silent no-op, never an error. Invariants (per-group dedup,
// empty-group and empty-window cascades, stack-order monotonicity, pinned
// focus behavior) are enforced here and nowhere else.
package workspace

import (
	"lexdesk/internal/model"
)

// Window cascade: each new window is offset by the current window count
// modulo 5, scaled by a fixed step, so fresh windows visibly stagger
// instead of perfectly overlapping.
const (
	cascadeSlots = 5
	cascadeStep  = 36.0

	baseX = 120.0
	baseY = 90.0

	defaultWidth  = 420.0
	defaultHeight = 320.0
)

// State is the whole content model: every window plus the stack-order
// counter. It is a single shared mutable structure; callers mutate it only
// through the named operations so readers always observe a complete,
// consistent snapshot.
type State struct {
	Version   int             `json:"version"`
	Windows   []*model.Window `json:"windows"`
	NextStack int             `json:"nextStack"`
}

func NewState() *State {
	return &State{Version: 1, NextStack: 1}
}

// FindWindow returns the window with the given id, if present.
func (st *State) FindWindow(windowID string) (*model.Window, bool) {
	for _, w := range st.Windows {
		if w.ID == windowID {
			return w, true
		}
	}
	return nil, false
}

// FindItem locates a content item anywhere in the workspace.
func (st *State) FindItem(itemID string) (*model.Window, model.ContentItem, bool) {
	for _, w := range st.Windows {
		if it, ok := w.FindItem(itemID); ok {
			return w, it, true
		}
	}
	return nil, nil, false
}

// nextStackOrder hands out globally unique, monotonically increasing stack
// order values.
func (st *State) nextStackOrder() int {
	n := st.NextStack
	st.NextStack++
	return n
}

// raise brings a window frontmost unless it is pinned. A pinned window keeps
// its stack order even when focused or mutated: it must not jump above
// freshly-focused windows.
func (st *State) raise(w *model.Window) {
	if w.Pinned {
		return
	}
	w.StackOrder = st.nextStackOrder()
}

// AddWindow creates a window at the next cascaded position and returns it.
// When initial is non-nil it becomes the window's first content item.
func (st *State) AddWindow(label string, initial *model.GroupBlock) *model.Window {
	offset := float64(len(st.Windows)%cascadeSlots) * cascadeStep
	w := &model.Window{
		ID:         newID("win"),
		Label:      label,
		Position:   model.Position{X: baseX + offset, Y: baseY + offset},
		Size:       model.Size{Width: defaultWidth, Height: defaultHeight},
		StackOrder: st.nextStackOrder(),
	}
	if initial != nil {
		if initial.ID == "" {
			initial.ID = newID("grp")
		}
		// The caller's slice may repeat identities; the block must not.
		arts := initial.Articles
		initial.Articles = nil
		appendDedup(initial, arts)
		w.Content = append(w.Content, initial)
	}
	st.Windows = append(st.Windows, w)
	return w
}

// removeWindow drops a window from the list. Used by the empty-window
// cascade and by explicit removal.
func (st *State) removeWindow(windowID string) {
	for i, w := range st.Windows {
		if w.ID == windowID {
			st.Windows = append(st.Windows[:i], st.Windows[i+1:]...)
			return
		}
	}
}

// pruneIfEmpty applies the empty-window cascade: a window with zero content
// items must not exist.
func (st *State) pruneIfEmpty(w *model.Window) {
	if w != nil && len(w.Content) == 0 {
		st.removeWindow(w.ID)
	}
}

// RemoveWindow deletes a window explicitly, regardless of content.
func (st *State) RemoveWindow(windowID string) {
	st.removeWindow(windowID)
}

// BringToFront assigns the next global stack order to the window, unless it
// is pinned, in which case the stack order is left untouched.
func (st *State) BringToFront(windowID string) {
	if w, ok := st.FindWindow(windowID); ok {
		st.raise(w)
	}
}

func (st *State) TogglePin(windowID string) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Pinned = !w.Pinned
	}
}

func (st *State) ToggleMinimize(windowID string) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Minimized = !w.Minimized
	}
}

func (st *State) ToggleHidden(windowID string) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Hidden = !w.Hidden
	}
}

func (st *State) RenameWindow(windowID, label string) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Label = label
	}
}

// SetWindowPosition commits a window position (geometry engine commit point).
func (st *State) SetWindowPosition(windowID string, pos model.Position) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Position = pos
	}
}

// SetWindowSize commits a window size.
func (st *State) SetWindowSize(windowID string, size model.Size) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Size = size
	}
}

// SetWindowBounds commits position and size together (resize handles on
// left/top edges move both).
func (st *State) SetWindowBounds(windowID string, pos model.Position, size model.Size) {
	if w, ok := st.FindWindow(windowID); ok {
		w.Position = pos
		w.Size = size
	}
}

// BeginArticleLoad marks a window as loading an article. It returns false
// when another load is already in flight for that window; the new request
// is ignored, not queued.
func (st *State) BeginArticleLoad(windowID, articleUniqueID string) bool {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return false
	}
	if w.LoadingArticleID != "" {
		return false
	}
	w.LoadingArticleID = articleUniqueID
	return true
}

// EndArticleLoad clears the loading flag. Always called, success or failure.
func (st *State) EndArticleLoad(windowID string) {
	if w, ok := st.FindWindow(windowID); ok {
		w.LoadingArticleID = ""
	}
}
