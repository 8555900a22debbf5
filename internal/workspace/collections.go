package workspace

import (
	"lexdesk/internal/model"
)

// CreateCollection appends a new empty named collection to the window.
func (st *State) CreateCollection(windowID, label string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	w.Content = append(w.Content, &model.Collection{ID: newID("col"), Label: label})
}

// RenameCollection sets a collection's label. No other effect.
func (st *State) RenameCollection(windowID, collectionID, newLabel string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(collectionID)
	if !ok {
		return
	}
	if c, ok := it.(*model.Collection); ok {
		c.Label = newLabel
	}
}

// ToggleCollapse flips the collapsed flag on a group block or collection.
// Standalone articles have no collapsed state; toggling them is a no-op.
func (st *State) ToggleCollapse(windowID, itemID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(itemID)
	if !ok {
		return
	}
	switch v := it.(type) {
	case *model.GroupBlock:
		v.Collapsed = !v.Collapsed
	case *model.Collection:
		v.Collapsed = !v.Collapsed
	case *model.StandaloneArticle:
		// nothing to collapse
	}
}
