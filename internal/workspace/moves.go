package workspace

import (
	"lexdesk/internal/model"
)

// removeItem drops an item from a window's content list. It does not apply
// the empty-window cascade; callers decide whether the window may be pruned
// (extract keeps the window alive by construction, moves do not).
func (st *State) removeItem(w *model.Window, itemID string) {
	for i, it := range w.Content {
		if it.ItemID() == itemID {
			w.Content = append(w.Content[:i], w.Content[i+1:]...)
			return
		}
	}
}

// RemoveItemFromWindow removes a content item and applies the empty-window
// cascade.
func (st *State) RemoveItemFromWindow(windowID, itemID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	if _, ok := w.FindItem(itemID); !ok {
		return
	}
	st.removeItem(w, itemID)
	st.pruneIfEmpty(w)
}

// MoveItemBetweenWindows reparents an item: removed from the source content
// list, appended to the target's. Moving onto the same window is a no-op.
// The target is raised; an emptied source window is deleted.
func (st *State) MoveItemBetweenWindows(itemID, sourceWindowID, targetWindowID string) {
	if sourceWindowID == targetWindowID {
		return
	}
	src, ok := st.FindWindow(sourceWindowID)
	if !ok {
		return
	}
	dst, ok := st.FindWindow(targetWindowID)
	if !ok {
		return
	}
	it, ok := src.FindItem(itemID)
	if !ok {
		return
	}
	st.removeItem(src, itemID)
	dst.Content = append(dst.Content, it)
	st.raise(dst)
	st.pruneIfEmpty(src)
}

// MergeStandaloneIntoGroup folds a standalone article into a group block.
// The standalone's source act must exactly equal the group's act (type,
// number, date); on mismatch nothing changes. The group's dedup rule
// applies, the standalone item is removed, and its window is pruned if
// emptied. The target group may live in any window.
func (st *State) MergeStandaloneIntoGroup(windowID, standaloneItemID, targetGroupID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(standaloneItemID)
	if !ok {
		return
	}
	sa, ok := it.(*model.StandaloneArticle)
	if !ok {
		return
	}
	gw, git, ok := st.FindItem(targetGroupID)
	if !ok {
		return
	}
	g, ok := git.(*model.GroupBlock)
	if !ok {
		return
	}
	if !sa.SourceAct.SameAct(g.Act) {
		return
	}
	appendDedup(g, []model.Article{sa.Article})
	st.removeItem(w, sa.ID)
	st.raise(gw)
	st.pruneIfEmpty(w)
}

// MoveStandaloneIntoCollection moves a standalone article's {article, source
// act} pair into a collection and removes the standalone item, pruning its
// window if emptied. The collection may live in any window.
func (st *State) MoveStandaloneIntoCollection(windowID, standaloneItemID, collectionID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(standaloneItemID)
	if !ok {
		return
	}
	sa, ok := it.(*model.StandaloneArticle)
	if !ok {
		return
	}
	_, cit, ok := st.FindItem(collectionID)
	if !ok {
		return
	}
	c, ok := cit.(*model.Collection)
	if !ok {
		return
	}
	c.Entries = append(c.Entries, model.CollectionEntry{Article: sa.Article, SourceAct: sa.SourceAct})
	st.removeItem(w, sa.ID)
	st.pruneIfEmpty(w)
}
