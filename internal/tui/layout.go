package tui

import (
	"fmt"
	"math"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"lexdesk/internal/format"
	"lexdesk/internal/model"
)

// The workspace model measures geometry in abstract viewport units; the
// terminal measures in cells. One cell maps to 8x16 units (the classic cell
// aspect ratio), so the snap threshold and activation distance keep sensible
// proportions on screen.
const (
	cellW = 8.0
	cellH = 16.0
)

// cellRect is a window's bounds in terminal cells.
type cellRect struct {
	x, y, w, h int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// windowCellRect quantizes a window's unit-space bounds to cells. Panels are
// never smaller than a frame with one content row.
func windowCellRect(w *model.Window) cellRect {
	r := cellRect{
		x: int(math.Round(w.Position.X / cellW)),
		y: int(math.Round(w.Position.Y / cellH)),
		w: int(math.Round(w.Size.Width / cellW)),
		h: int(math.Round(w.Size.Height / cellH)),
	}
	if r.w < 12 {
		r.w = 12
	}
	if r.h < 3 {
		r.h = 3
	}
	return r
}

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowGroupArticle
	rowStandalone
	rowCollectionHeader
	rowCollectionEntry
	rowOverflow
)

// contentRow is one rendered line of a window body, tagged with the item it
// belongs to so mouse hits resolve back to model identities.
type contentRow struct {
	kind   rowKind
	itemID string
	act    model.ActRef
	text   string
}

func collapseGlyph(collapsed bool) string {
	if collapsed {
		return "▸"
	}
	return "▾"
}

// windowRows flattens a window's content into display rows. The hit test and
// the renderer both consume this, so what you click is what you see.
func windowRows(w *model.Window) []contentRow {
	var rows []contentRow
	for _, it := range w.Content {
		switch v := it.(type) {
		case *model.GroupBlock:
			rows = append(rows, contentRow{
				kind:   rowGroupHeader,
				itemID: v.ID,
				act:    v.Act,
				text:   fmt.Sprintf("%s %s (%d)", collapseGlyph(v.Collapsed), format.ActLabel(v.Act), len(v.Articles)),
			})
			if !v.Collapsed {
				for _, a := range v.Articles {
					rows = append(rows, contentRow{
						kind:   rowGroupArticle,
						itemID: v.ID,
						act:    v.Act,
						text:   "   " + format.ArticleLabel(a),
					})
				}
			}
		case *model.StandaloneArticle:
			rows = append(rows, contentRow{
				kind:   rowStandalone,
				itemID: v.ID,
				act:    v.SourceAct,
				text:   "◦ " + format.ItemLabel(v),
			})
		case *model.Collection:
			rows = append(rows, contentRow{
				kind:   rowCollectionHeader,
				itemID: v.ID,
				text:   fmt.Sprintf("%s ⛁ %s (%d)", collapseGlyph(v.Collapsed), v.Label, len(v.Entries)),
			})
			if !v.Collapsed {
				for _, e := range v.Entries {
					rows = append(rows, contentRow{
						kind:   rowCollectionEntry,
						itemID: v.ID,
						act:    e.SourceAct,
						text:   "   " + format.ArticleLabel(e.Article),
					})
				}
			}
		}
	}
	return rows
}

// fitRows truncates the row list to the panel height, replacing the last
// visible row with an overflow marker when content does not fit.
func fitRows(rows []contentRow, height int) []contentRow {
	if height <= 0 {
		return nil
	}
	if len(rows) <= height {
		return rows
	}
	out := make([]contentRow, height)
	copy(out, rows[:height-1])
	out[height-1] = contentRow{
		kind: rowOverflow,
		text: fmt.Sprintf("… +%d", len(rows)-(height-1)),
	}
	return out
}

// normalizeLine forces s to exactly width columns (ANSI-aware), truncating
// with an ellipsis and padding with spaces.
func normalizeLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			return xansi.Cut(s, 0, 1)
		}
		s = xansi.Cut(s, 0, width-1) + "…"
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// overlayAt composites a panel onto the screen lines at cell (x, y),
// clipping to the screen. Every screen line stays exactly screenW columns;
// cut segments are terminated so styling never bleeds across panels.
func overlayAt(screen []string, panel string, x, y, screenW int) {
	for i, pline := range strings.Split(panel, "\n") {
		row := y + i
		if row < 0 || row >= len(screen) {
			continue
		}
		px := x
		if px < 0 {
			pline = xansi.Cut(pline, -px, xansi.StringWidth(pline))
			px = 0
		}
		pw := xansi.StringWidth(pline)
		if px >= screenW || pw == 0 {
			continue
		}
		if px+pw > screenW {
			pline = xansi.Cut(pline, 0, screenW-px)
			pw = xansi.StringWidth(pline)
		}
		left := xansi.Cut(screen[row], 0, px)
		right := xansi.Cut(screen[row], px+pw, screenW)
		screen[row] = left + "\x1b[0m" + pline + "\x1b[0m" + right
	}
}
