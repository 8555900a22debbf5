package store

import (
	"encoding/json"
	"sync"
	"time"

	"lexdesk/internal/workspace"
)

// DebouncedSaver persists the workspace after every mutation without
// blocking the UI thread: notifications within the debounce window coalesce
// into one save. Errors are intentionally dropped; the user can always run
// an explicit save via the CLI, and the next mutation retries.
type DebouncedSaver struct {
	store    Store
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	running bool
	state   *workspace.State
}

func NewDebouncedSaver(store Store, debounce time.Duration) *DebouncedSaver {
	if debounce <= 0 {
		debounce = 750 * time.Millisecond
	}
	return &DebouncedSaver{store: store, debounce: debounce}
}

// Notify schedules a save. The state is snapshotted here, on the mutating
// thread, so the timer goroutine never reads the live model; the latest
// notified snapshot wins.
func (d *DebouncedSaver) Notify(st *workspace.State) {
	if d == nil {
		return
	}
	snap := cloneState(st)
	if snap == nil {
		return
	}
	d.mu.Lock()
	d.pending = true
	d.state = snap
	if d.timer == nil {
		d.timer = time.AfterFunc(d.debounce, d.onTimer)
		d.mu.Unlock()
		return
	}
	d.timer.Reset(d.debounce)
	d.mu.Unlock()
}

// Flush saves immediately if a notification is pending. Used on shutdown.
func (d *DebouncedSaver) Flush() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	st := d.state
	pending := d.pending
	d.pending = false
	d.mu.Unlock()
	if !pending || st == nil {
		return nil
	}
	return d.store.Save(st)
}

func (d *DebouncedSaver) onTimer() {
	d.mu.Lock()
	if d.running {
		// Another save is in flight; come back for the pending changes.
		if d.timer != nil {
			d.timer.Reset(d.debounce)
		}
		d.mu.Unlock()
		return
	}
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.running = true
	st := d.state
	d.mu.Unlock()

	_ = d.store.Save(st)

	d.mu.Lock()
	d.running = false
	if d.pending && d.timer != nil {
		d.timer.Reset(d.debounce)
	}
	d.mu.Unlock()
}

// cloneState deep-copies via the JSON round-trip the model already supports
// for persistence. Returns nil if the state cannot be encoded.
func cloneState(st *workspace.State) *workspace.State {
	if st == nil {
		return nil
	}
	b, err := json.Marshal(st)
	if err != nil {
		return nil
	}
	var out workspace.State
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return &out
}
