package workspace

import (
	"fmt"

	"lexdesk/internal/identity"
	"lexdesk/internal/model"
)

// Issue is one invariant violation found in a workspace.
type Issue struct {
	Severity string `json:"severity"` // "error" or "warning"
	WindowID string `json:"windowId,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	Message  string `json:"message"`
}

type DoctorReport struct {
	Issues []Issue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == "error" {
			return true
		}
	}
	return false
}

// Doctor checks a loaded workspace against the model invariants: no empty
// windows or groups, per-group identity dedup, unique ids, unique stack
// orders, and a stack counter ahead of every assigned order. It never
// mutates; repairs are up to the user.
func Doctor(st *State) DoctorReport {
	var r DoctorReport
	errf := func(windowID, itemID, format string, args ...any) {
		r.Issues = append(r.Issues, Issue{Severity: "error", WindowID: windowID, ItemID: itemID, Message: fmt.Sprintf(format, args...)})
	}
	warnf := func(windowID, itemID, format string, args ...any) {
		r.Issues = append(r.Issues, Issue{Severity: "warning", WindowID: windowID, ItemID: itemID, Message: fmt.Sprintf(format, args...)})
	}

	windowIDs := map[string]bool{}
	stackOrders := map[int]string{}
	itemIDs := map[string]string{}
	maxStack := 0

	for _, w := range st.Windows {
		if windowIDs[w.ID] {
			errf(w.ID, "", "duplicate window id")
		}
		windowIDs[w.ID] = true

		if prev, dup := stackOrders[w.StackOrder]; dup {
			errf(w.ID, "", "stack order %d already used by window %s", w.StackOrder, prev)
		}
		stackOrders[w.StackOrder] = w.ID
		if w.StackOrder > maxStack {
			maxStack = w.StackOrder
		}

		if len(w.Content) == 0 {
			warnf(w.ID, "", "empty window (the cascade removes these on the next content mutation)")
		}

		for _, it := range w.Content {
			if prev, dup := itemIDs[it.ItemID()]; dup {
				errf(w.ID, it.ItemID(), "item id already used in window %s", prev)
			}
			itemIDs[it.ItemID()] = w.ID

			switch v := it.(type) {
			case *model.GroupBlock:
				if len(v.Articles) == 0 {
					errf(w.ID, v.ID, "empty group block")
				}
				seen := map[string]string{}
				for _, a := range v.Articles {
					key := identity.Normalize(identity.UniqueID(a))
					if prev, dup := seen[key]; dup {
						errf(w.ID, v.ID, "articles %q and %q share identity %q", prev, a.Number, key)
					}
					seen[key] = a.Number
				}
			case *model.Collection:
				if v.Label == "" {
					warnf(w.ID, v.ID, "collection without a label")
				}
			}
		}
	}

	if st.NextStack <= maxStack {
		r.Issues = append(r.Issues, Issue{
			Severity: "error",
			Message:  fmt.Sprintf("stack counter %d not ahead of highest assigned order %d", st.NextStack, maxStack),
		})
	}
	return r
}
