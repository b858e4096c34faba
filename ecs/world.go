package ecs

import "github.com/rishiskhare/gorillavs100men/ecs/component"

// FrameTime is the clock state for the frame being stepped.
type FrameTime struct {
	Delta float64
	Now   float64
	Frame uint64
}

// World owns entities, components, the event queue and deferred actions.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	deferred Deferred
	time     FrameTime
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// Advance moves the world clock forward and runs deferred actions that came due.
func (w *World) Advance(delta float64) {
	if w == nil {
		return
	}
	if delta < 0 {
		delta = 0
	}
	w.time.Delta = delta
	w.time.Now += delta
	w.time.Frame++
	w.deferred.runDue(w.time.Now)
}

// Time returns the current frame clock.
func (w *World) Time() FrameTime {
	if w == nil {
		return FrameTime{}
	}
	return w.time
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Deferred returns the deferred action queue.
func (w *World) Deferred() *Deferred {
	if w == nil {
		return nil
	}
	return &w.deferred
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value for e under the component id.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(id, true).Set(int(e.id()), value)
	return nil
}

// GetComponent returns the raw component value for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(id, false)
	if s == nil {
		return nil, false
	}
	v := s.Get(int(e.id()))
	return v, v != nil
}

// HasComponent reports whether e carries the component id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	_, ok := w.GetComponent(e, id)
	return ok
}

// RemoveComponent drops the component id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Remove(int(e.id()))
}

// KindID is satisfied by every component.ComponentKind.
type KindID interface {
	ID() component.ComponentID
}

// Query returns the live entities that carry every listed kind.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	var ids []int
	rest := sets[1:]
	if len(sets) == 1 {
		ids = append(ids, sets[0].Entities()...)
	} else {
		ids = IntersectEntities(sets[0], sets[1])
		rest = sets[2:]
	}
	for _, s := range rest {
		kept := ids[:0]
		for _, id := range ids {
			if s.Has(id) {
				kept = append(kept, id)
			}
		}
		ids = kept
	}
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.handle(entityID(id)); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying kind.
func (w *World) First(kind KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
