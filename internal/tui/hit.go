package tui

import (
	"sort"

	"lexdesk/internal/dragdrop"
	"lexdesk/internal/geometry"
	"lexdesk/internal/model"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTitle
	hitResize
	hitItem
	hitBody
)

type hitResult struct {
	kind     hitKind
	windowID string
	handle   geometry.Handle
	row      contentRow // valid when kind == hitItem
}

// visibleWindows returns the windows that occupy screen space, back to front.
func visibleWindows(ws []*model.Window) []*model.Window {
	var out []*model.Window
	for _, w := range ws {
		if !w.Hidden && !w.Minimized {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StackOrder < out[j].StackOrder })
	return out
}

// hitTest resolves a cell coordinate to whatever is topmost under it:
// a resize handle, the title bar, a content row or the bare window body.
func (m *appModel) hitTest(x, y int) hitResult {
	vis := visibleWindows(m.st.Windows)
	// Front to back; the topmost window under the pointer wins.
	for i := len(vis) - 1; i >= 0; i-- {
		w := vis[i]
		r := windowCellRect(w)
		if !r.contains(x, y) {
			continue
		}
		res := hitResult{windowID: w.ID}

		left := x == r.x
		right := x == r.x+r.w-1
		top := y == r.y
		bottom := y == r.y+r.h-1
		switch {
		case top && left:
			res.kind, res.handle = hitResize, geometry.HandleTopLeft
		case top && right:
			res.kind, res.handle = hitResize, geometry.HandleTopRight
		case bottom && left:
			res.kind, res.handle = hitResize, geometry.HandleBottomLeft
		case bottom && right:
			res.kind, res.handle = hitResize, geometry.HandleBottomRight
		case top:
			res.kind = hitTitle
		case bottom:
			res.kind, res.handle = hitResize, geometry.HandleBottom
		case left:
			res.kind, res.handle = hitResize, geometry.HandleLeft
		case right:
			res.kind, res.handle = hitResize, geometry.HandleRight
		default:
			rows := fitRows(windowRows(w), r.h-2)
			idx := y - r.y - 1
			if idx >= 0 && idx < len(rows) && rows[idx].kind != rowOverflow {
				res.kind = hitItem
				res.row = rows[idx]
			} else {
				res.kind = hitBody
			}
		}
		return res
	}
	return hitResult{kind: hitNone}
}

// payloadForRow maps a pressed content row to a drag payload. Only standalone
// articles and whole groups (by their header) are draggable.
func payloadForRow(windowID string, row contentRow) (dragdrop.Payload, bool) {
	switch row.kind {
	case rowStandalone:
		return dragdrop.Payload{
			Kind:           dragdrop.PayloadStandaloneArticle,
			ItemID:         row.itemID,
			SourceWindowID: windowID,
			SourceAct:      row.act,
		}, true
	case rowGroupHeader:
		return dragdrop.Payload{
			Kind:           dragdrop.PayloadGroupHandle,
			ItemID:         row.itemID,
			SourceWindowID: windowID,
			SourceAct:      row.act,
		}, true
	default:
		return dragdrop.Payload{}, false
	}
}

// dropTarget classifies whatever is under the pointer at release.
func (m *appModel) dropTarget(x, y int) dragdrop.Target {
	h := m.hitTest(x, y)
	switch h.kind {
	case hitItem:
		switch h.row.kind {
		case rowGroupHeader, rowGroupArticle:
			return dragdrop.Target{Kind: dragdrop.TargetGroup, WindowID: h.windowID, ItemID: h.row.itemID}
		case rowCollectionHeader, rowCollectionEntry:
			return dragdrop.Target{Kind: dragdrop.TargetCollection, WindowID: h.windowID, ItemID: h.row.itemID}
		default:
			return dragdrop.Target{Kind: dragdrop.TargetWindow, WindowID: h.windowID}
		}
	case hitTitle, hitBody, hitResize:
		return dragdrop.Target{Kind: dragdrop.TargetWindow, WindowID: h.windowID}
	default:
		return dragdrop.Target{Kind: dragdrop.TargetNone}
	}
}
