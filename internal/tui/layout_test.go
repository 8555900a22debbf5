package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"lexdesk/internal/model"
)

var testAct = model.ActRef{Type: "legge", Number: "241", Date: "1990-08-07", URN: "urn:nir:stato:legge:1990-08-07;241"}

func TestWindowRows_GroupExpandsAndCollapses(t *testing.T) {
	t.Parallel()

	g := &model.GroupBlock{
		ID:       "g1",
		Act:      testAct,
		Articles: []model.Article{{Number: "1"}, {Number: "2"}},
	}
	w := &model.Window{ID: "w1", Content: model.ContentList{g}}

	rows := windowRows(w)
	if len(rows) != 3 {
		t.Fatalf("expanded group rows = %d; want 3", len(rows))
	}
	if rows[0].kind != rowGroupHeader || rows[1].kind != rowGroupArticle {
		t.Fatalf("unexpected row kinds: %+v", rows)
	}
	for _, r := range rows {
		if r.itemID != "g1" {
			t.Fatalf("every group row must resolve to the group item")
		}
	}

	g.Collapsed = true
	rows = windowRows(w)
	if len(rows) != 1 {
		t.Fatalf("collapsed group rows = %d; want 1", len(rows))
	}
}

func TestWindowRows_CollectionEntries(t *testing.T) {
	t.Parallel()

	c := &model.Collection{
		ID:    "c1",
		Label: "silenzio assenso",
		Entries: []model.CollectionEntry{
			{Article: model.Article{Number: "20"}, SourceAct: testAct},
		},
	}
	w := &model.Window{ID: "w1", Content: model.ContentList{c}}

	rows := windowRows(w)
	if len(rows) != 2 {
		t.Fatalf("rows = %d; want header + entry", len(rows))
	}
	if rows[1].kind != rowCollectionEntry || rows[1].itemID != "c1" {
		t.Fatalf("entry row = %+v", rows[1])
	}
	if !strings.Contains(rows[0].text, "silenzio assenso") {
		t.Fatalf("header text = %q", rows[0].text)
	}
}

func TestFitRows_Overflow(t *testing.T) {
	t.Parallel()

	rows := make([]contentRow, 10)
	got := fitRows(rows, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d; want 4", len(got))
	}
	last := got[3]
	if last.kind != rowOverflow || !strings.Contains(last.text, "+7") {
		t.Fatalf("overflow row = %+v", last)
	}
	if got := fitRows(rows[:3], 4); len(got) != 3 {
		t.Fatalf("no overflow expected when rows fit")
	}
}

func TestNormalizeLine(t *testing.T) {
	t.Parallel()

	if got := normalizeLine("abc", 5); got != "abc  " {
		t.Fatalf("pad = %q", got)
	}
	got := normalizeLine("abcdefgh", 5)
	if xansi.StringWidth(got) != 5 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q", got)
	}
}

func TestOverlayAt_ClipsAndPreservesWidth(t *testing.T) {
	t.Parallel()

	const screenW = 20
	screen := []string{
		strings.Repeat(".", screenW),
		strings.Repeat(".", screenW),
		strings.Repeat(".", screenW),
	}
	overlayAt(screen, "AAAA\nBBBB", 18, 1, screenW)

	for i, ln := range screen {
		if w := xansi.StringWidth(ln); w != screenW {
			t.Fatalf("line %d width = %d; want %d", i, w, screenW)
		}
	}
	if got := xansi.Strip(screen[1]); got != strings.Repeat(".", 18)+"AA" {
		t.Fatalf("clipped overlay = %q", got)
	}
	if got := xansi.Strip(screen[0]); got != strings.Repeat(".", screenW) {
		t.Fatalf("row above must be untouched, got %q", got)
	}
}

func TestWindowCellRect_QuantizesWithMinimum(t *testing.T) {
	t.Parallel()

	w := &model.Window{
		Position: model.Position{X: 80, Y: 32},
		Size:     model.Size{Width: 160, Height: 96},
	}
	r := windowCellRect(w)
	if r.x != 10 || r.y != 2 || r.w != 20 || r.h != 6 {
		t.Fatalf("rect = %+v", r)
	}

	tiny := &model.Window{Size: model.Size{Width: 8, Height: 16}}
	r = windowCellRect(tiny)
	if r.w < 12 || r.h < 3 {
		t.Fatalf("minimum frame not enforced: %+v", r)
	}
}
