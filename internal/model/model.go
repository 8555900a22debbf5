package model

// ActRef identifies a legal act (law, decree, code) by type, number and date.
//
// Two acts are the same source act iff Type, Number and Date are exactly
// equal as strings. URN is a display/fetch concern and never participates
// in equality.
type ActRef struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Date   string `json:"date"`
	URN    string `json:"urn,omitempty"`
}

func (a ActRef) SameAct(b ActRef) bool {
	return a.Type == b.Type && a.Number == b.Number && a.Date == b.Date
}

// Article is a single article of an act. Annex is empty for articles of the
// main text; otherwise it names the annex the article belongs to ("2" for
// "Allegato 2"). Articles sharing a Number may still be distinct entities
// when their Annex differs.
type Article struct {
	Number  string `json:"number"`
	Annex   string `json:"annex,omitempty"`
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Position is a window's top-left corner in viewport coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a window's outer size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Window is a top-level movable/resizable container of content items.
//
// StackOrder values are unique across all windows; the highest value renders
// frontmost. A window with zero content items must not exist: the workspace
// operations delete it as soon as its last item is removed.
type Window struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Position   Position    `json:"position"`
	Size       Size        `json:"size"`
	StackOrder int         `json:"stackOrder"`
	Pinned     bool        `json:"pinned,omitempty"`
	Minimized  bool        `json:"minimized,omitempty"`
	Hidden     bool        `json:"hidden,omitempty"`
	Content    ContentList `json:"content"`

	// LoadingArticleID serializes article loads per window: at most one
	// outstanding load; a new request while one is in flight is ignored.
	// Transient, never persisted.
	LoadingArticleID string `json:"-"`
}

// FindItem returns the content item with the given id, if present.
func (w *Window) FindItem(itemID string) (ContentItem, bool) {
	for _, it := range w.Content {
		if it.ItemID() == itemID {
			return it, true
		}
	}
	return nil, false
}
