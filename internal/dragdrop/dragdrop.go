// Package dragdrop interprets a generic pointer drag session into exactly one
// workspace mutation (or none). The session is a two-state machine: Idle ->
// Dragging once the pointer travels past an activation threshold, and back to
// Idle unconditionally on release or cancel. Each resolution branch is a
// single atomic workspace call, so a completed session can never leave the
// model half-applied.
package dragdrop

import (
	"math"

	"github.com/google/uuid"

	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

// DefaultActivationDistance is how far the pointer must travel from the
// press point before a drag engages. Prevents accidental drags from clicks.
const DefaultActivationDistance = 5.0

// PayloadKind says what is being dragged.
type PayloadKind int

const (
	// PayloadWindow drags the window itself; geometry, not content.
	PayloadWindow PayloadKind = iota
	// PayloadStandaloneArticle drags a standalone article item.
	PayloadStandaloneArticle
	// PayloadGroupHandle drags a group block by its handle.
	PayloadGroupHandle
)

// Payload describes the dragged thing.
type Payload struct {
	Kind           PayloadKind
	ItemID         string
	SourceWindowID string
	SourceAct      model.ActRef
}

// TargetKind classifies whatever element is under the pointer at release.
type TargetKind int

const (
	// TargetNone: released over nothing droppable; cancel without mutation.
	TargetNone TargetKind = iota
	// TargetGroup: a group block's drop zone.
	TargetGroup
	// TargetCollection: a collection's drop zone.
	TargetCollection
	// TargetWindow: a window's general surface.
	TargetWindow
)

// Target is the resolved drop target.
type Target struct {
	Kind     TargetKind
	WindowID string
	ItemID   string
}

// State reports the session phase.
type State int

const (
	Idle State = iota
	Dragging
)

// Coordinator runs at most one drag session at a time against a workspace.
type Coordinator struct {
	st        *workspace.State
	threshold float64

	state     State
	sessionID string
	payload   Payload
	startX    float64
	startY    float64
}

// New returns a coordinator for the given workspace. threshold <= 0 falls
// back to DefaultActivationDistance.
func New(st *workspace.State, threshold float64) *Coordinator {
	if threshold <= 0 {
		threshold = DefaultActivationDistance
	}
	return &Coordinator{st: st, threshold: threshold}
}

func (c *Coordinator) State() State { return c.state }

// SessionID identifies the active drag session; empty when idle.
func (c *Coordinator) SessionID() string {
	if c.state == Idle {
		return ""
	}
	return c.sessionID
}

// Payload returns the active payload. Valid only while dragging.
func (c *Coordinator) Payload() Payload { return c.payload }

// Press arms a potential drag. Nothing engages until the pointer moves past
// the activation distance.
func (c *Coordinator) Press(p Payload, x, y float64) {
	c.payload = p
	c.startX = x
	c.startY = y
	c.sessionID = uuid.NewString()
}

// Move feeds pointer motion; the session transitions to Dragging once the
// travel distance exceeds the threshold. Returns true while dragging.
func (c *Coordinator) Move(x, y float64) bool {
	if c.state == Dragging {
		return true
	}
	if c.sessionID == "" {
		return false
	}
	if math.Hypot(x-c.startX, y-c.startY) > c.threshold {
		c.state = Dragging
	}
	return c.state == Dragging
}

// Release resolves the session against the drop target and returns to Idle.
// At most one workspace mutation happens, chosen by the branch:
//
//   - no target, or never engaged: nothing
//   - same container as source: nothing
//   - group drop zone: merge, valid only for standalone payloads (the
//     workspace additionally gates on exact act equality)
//   - collection drop zone: move into collection, standalone payloads only
//   - window surface: reparent the item
//
// Window payloads never mutate content here; the geometry engine owns them.
func (c *Coordinator) Release(t Target) {
	defer c.reset()
	if c.state != Dragging {
		return
	}
	if c.payload.Kind == PayloadWindow {
		return
	}

	switch t.Kind {
	case TargetNone:
		// Released over nothing: the gesture dissolves.
	case TargetGroup:
		if c.payload.Kind != PayloadStandaloneArticle {
			return
		}
		if t.ItemID == c.payload.ItemID {
			return
		}
		c.st.MergeStandaloneIntoGroup(c.payload.SourceWindowID, c.payload.ItemID, t.ItemID)
	case TargetCollection:
		if c.payload.Kind != PayloadStandaloneArticle {
			return
		}
		c.st.MoveStandaloneIntoCollection(c.payload.SourceWindowID, c.payload.ItemID, t.ItemID)
	case TargetWindow:
		if t.WindowID == c.payload.SourceWindowID {
			return
		}
		c.st.MoveItemBetweenWindows(c.payload.ItemID, c.payload.SourceWindowID, t.WindowID)
	}
}

// Cancel abandons the session (escape, focus loss). No mutation.
func (c *Coordinator) Cancel() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.state = Idle
	c.sessionID = ""
	c.payload = Payload{}
}
