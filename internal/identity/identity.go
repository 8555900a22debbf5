// Package identity canonicalizes article identifiers for equality and dedup
// comparisons. Callers keep the original display string; only comparisons go
// through the normalized form.
package identity

import (
	"strings"

	"lexdesk/internal/model"
)

// Normalize canonicalizes a human-entered or tree-derived identifier:
// trim, lowercase, collapse internal whitespace runs to single hyphens,
// strip one trailing period. "3 bis", "3-bis" and "3 Bis." all normalize
// to "3-bis".
func Normalize(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.Join(strings.Fields(s), "-")
	s = strings.TrimSuffix(s, ".")
	return s
}

// UniqueID qualifies an article number with its annex, so "Art. 3 of the
// main text" and "Art. 3 of Annex 2" stay distinct entities.
func UniqueID(a model.Article) string {
	if a.Annex != "" {
		return "all" + a.Annex + ":" + a.Number
	}
	return a.Number
}

// Same reports whether two articles are the same entity: equal canonical
// identity including the annex qualifier. Fuzzy suffix variants of the same
// article match; articles from different annexes never do.
func Same(a, b model.Article) bool {
	return Normalize(UniqueID(a)) == Normalize(UniqueID(b))
}

// SameNumberAnyAnnex compares article numbers ignoring annexes. Matching
// across annexes is always this explicit operation, never a side effect of
// Normalize or UniqueID.
func SameNumberAnyAnnex(a, b model.Article) bool {
	return Normalize(a.Number) == Normalize(b.Number)
}
