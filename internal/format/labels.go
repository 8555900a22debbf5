package format

import (
	"fmt"
	"strings"

	"lexdesk/internal/model"
)

// ActLabel renders an act reference the way Italian practice cites it:
// "legge 241/1990". Falls back gracefully when the date is missing.
func ActLabel(a model.ActRef) string {
	year := ""
	if len(a.Date) >= 4 {
		year = a.Date[:4]
	}
	switch {
	case a.Number != "" && year != "":
		return fmt.Sprintf("%s %s/%s", a.Type, a.Number, year)
	case a.Number != "":
		return fmt.Sprintf("%s %s", a.Type, a.Number)
	default:
		return a.Type
	}
}

// ArticleLabel renders an article identifier: "art. 3-bis", with the annex
// appended when the article lives in one: "art. 3-bis, all. 2".
func ArticleLabel(art model.Article) string {
	var b strings.Builder
	b.WriteString("art. ")
	b.WriteString(art.Number)
	if art.Annex != "" {
		b.WriteString(", all. ")
		b.WriteString(art.Annex)
	}
	return b.String()
}

// ItemLabel gives a one-line summary for any window content item.
func ItemLabel(it model.ContentItem) string {
	switch v := it.(type) {
	case *model.GroupBlock:
		return fmt.Sprintf("%s (%d)", ActLabel(v.Act), len(v.Articles))
	case *model.StandaloneArticle:
		return fmt.Sprintf("%s (%s)", ArticleLabel(v.Article), ActLabel(v.SourceAct))
	case *model.Collection:
		return fmt.Sprintf("%s (%d)", v.Label, len(v.Entries))
	default:
		return it.ItemID()
	}
}
