package ecs

import "sort"

// DeferredKey identifies one outstanding deferred action. An entity holds at
// most one pending action per slot.
type DeferredKey struct {
	Entity Entity
	Slot   string
}

type deferredAction struct {
	key DeferredKey
	due float64
	seq uint64
	fn  func()
}

// Deferred runs callbacks after a delay measured in world time. Scheduling on
// a key that already has a pending action replaces it, so a stale callback
// never fires once its owner has moved on.
type Deferred struct {
	now     float64
	seq     uint64
	pending map[DeferredKey]*deferredAction
}

// Schedule queues fn to run delay seconds from now under (e, slot) and
// returns the sequence number of the new action.
func (d *Deferred) Schedule(e Entity, slot string, delay float64, fn func()) uint64 {
	if d == nil || fn == nil {
		return 0
	}
	if d.pending == nil {
		d.pending = make(map[DeferredKey]*deferredAction)
	}
	if delay < 0 {
		delay = 0
	}
	d.seq++
	key := DeferredKey{Entity: e, Slot: slot}
	d.pending[key] = &deferredAction{key: key, due: d.now + delay, seq: d.seq, fn: fn}
	return d.seq
}

// Cancel drops the pending action for (e, slot). It reports whether one existed.
func (d *Deferred) Cancel(e Entity, slot string) bool {
	if d == nil || d.pending == nil {
		return false
	}
	key := DeferredKey{Entity: e, Slot: slot}
	if _, ok := d.pending[key]; !ok {
		return false
	}
	delete(d.pending, key)
	return true
}

// CancelEntity drops every pending action owned by e.
func (d *Deferred) CancelEntity(e Entity) {
	if d == nil {
		return
	}
	for key := range d.pending {
		if key.Entity == e {
			delete(d.pending, key)
		}
	}
}

// Pending reports whether (e, slot) has an action waiting.
func (d *Deferred) Pending(e Entity, slot string) bool {
	if d == nil || d.pending == nil {
		return false
	}
	_, ok := d.pending[DeferredKey{Entity: e, Slot: slot}]
	return ok
}

// Len returns the number of pending actions.
func (d *Deferred) Len() int {
	if d == nil {
		return 0
	}
	return len(d.pending)
}

func (d *Deferred) runDue(now float64) {
	d.now = now
	if len(d.pending) == 0 {
		return
	}
	due := make([]*deferredAction, 0, 4)
	for _, a := range d.pending {
		if a.due <= now {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, a := range due {
		// an earlier callback may have cancelled or replaced this one
		cur, ok := d.pending[a.key]
		if !ok || cur.seq != a.seq {
			continue
		}
		delete(d.pending, a.key)
		a.fn()
	}
}
