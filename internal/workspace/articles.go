package workspace

import (
	"sort"

	"lexdesk/internal/identity"
	"lexdesk/internal/model"
)

// articleSortKey parses the leading integer of an article number. Non-numeric
// identifiers parse to 0, so they sort first and keep insertion order among
// themselves. This is an intentional simplification, not a bug.
func articleSortKey(number string) int {
	n := 0
	seen := false
	for _, r := range number {
		if r < '0' || r > '9' {
			break
		}
		seen = true
		n = n*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return n
}

// sortArticles orders a group's articles ascending by the numeric value of
// their number. Stable, so ties (including all non-numeric numbers) keep
// insertion order.
func sortArticles(articles []model.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articleSortKey(articles[i].Number) < articleSortKey(articles[j].Number)
	})
}

// groupHasArticle reports whether the block already holds an article with the
// same canonical identity.
func groupHasArticle(g *model.GroupBlock, a model.Article) bool {
	for _, existing := range g.Articles {
		if identity.Same(existing, a) {
			return true
		}
	}
	return false
}

// appendDedup appends only articles whose canonical identity is not already
// present in the block, then re-sorts. Returns true if anything was added.
func appendDedup(g *model.GroupBlock, articles []model.Article) bool {
	added := false
	for _, a := range articles {
		if groupHasArticle(g, a) {
			continue
		}
		g.Articles = append(g.Articles, a)
		added = true
	}
	if added {
		sortArticles(g.Articles)
	}
	return added
}

// AddArticlesToGroup merges articles into the window's group block for the
// given act, creating the block if the window has none. Act equality is
// exact (type, number, date); dedup inside the block is by canonical article
// identity, also across duplicates within the input batch. An input that
// contributes nothing creates no block. The window is raised either way.
func (st *State) AddArticlesToGroup(windowID string, act model.ActRef, articles []model.Article) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	for _, it := range w.Content {
		if g, ok := it.(*model.GroupBlock); ok && g.Act.SameAct(act) {
			appendDedup(g, articles)
			st.raise(w)
			return
		}
	}
	g := &model.GroupBlock{ID: newID("grp"), Act: act}
	if appendDedup(g, articles) {
		w.Content = append(w.Content, g)
	}
	st.raise(w)
}

// AddStandaloneArticle appends a new standalone article item to the window.
func (st *State) AddStandaloneArticle(windowID string, article model.Article, sourceAct model.ActRef) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	w.Content = append(w.Content, &model.StandaloneArticle{
		ID:        newID("art"),
		Article:   article,
		SourceAct: sourceAct,
	})
	st.raise(w)
}

// ExtractArticleFromGroup detaches an article from a group into a new
// standalone item in the same window, carrying the group's act as source.
// An emptied group is deleted.
func (st *State) ExtractArticleFromGroup(windowID, groupID, articleUniqueID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(groupID)
	if !ok {
		return
	}
	g, ok := it.(*model.GroupBlock)
	if !ok {
		return
	}
	want := identity.Normalize(articleUniqueID)
	for i, a := range g.Articles {
		if identity.Normalize(identity.UniqueID(a)) != want {
			continue
		}
		g.Articles = append(g.Articles[:i], g.Articles[i+1:]...)
		w.Content = append(w.Content, &model.StandaloneArticle{
			ID:        newID("art"),
			Article:   a,
			SourceAct: g.Act,
		})
		if len(g.Articles) == 0 {
			st.removeItem(w, g.ID)
		}
		return
	}
}

// RemoveArticleFromGroup removes an article outright. Emptied groups are
// deleted; an emptied window goes with them.
func (st *State) RemoveArticleFromGroup(windowID, groupID, articleUniqueID string) {
	w, ok := st.FindWindow(windowID)
	if !ok {
		return
	}
	it, ok := w.FindItem(groupID)
	if !ok {
		return
	}
	g, ok := it.(*model.GroupBlock)
	if !ok {
		return
	}
	want := identity.Normalize(articleUniqueID)
	for i, a := range g.Articles {
		if identity.Normalize(identity.UniqueID(a)) != want {
			continue
		}
		g.Articles = append(g.Articles[:i], g.Articles[i+1:]...)
		if len(g.Articles) == 0 {
			st.removeItem(w, g.ID)
			st.pruneIfEmpty(w)
		}
		return
	}
}
