package system

import "github.com/rishiskhare/gorillavs100men/ecs"

// Roster is the ordered adversary population. Dying adversaries stay listed
// until their fade completes.
type Roster struct {
	// OnCount receives the population size after every change.
	OnCount func(n int)
	// OnCleared fires once, when a roster that was populated becomes empty.
	OnCleared func()

	entities  []ecs.Entity
	populated bool
	cleared   bool
}

func NewRoster() *Roster {
	return &Roster{}
}

func (r *Roster) Add(e ecs.Entity) {
	r.entities = append(r.entities, e)
	r.populated = true
	r.notify()
}

// Remove drops e and compacts the roster, preserving order.
func (r *Roster) Remove(e ecs.Entity) bool {
	for i, cur := range r.entities {
		if cur != e {
			continue
		}
		copy(r.entities[i:], r.entities[i+1:])
		r.entities = r.entities[:len(r.entities)-1]
		r.notify()
		if r.populated && len(r.entities) == 0 && !r.cleared {
			r.cleared = true
			if r.OnCleared != nil {
				r.OnCleared()
			}
		}
		return true
	}
	return false
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entities)
}

// Entities returns a snapshot safe to iterate while the roster changes.
func (r *Roster) Entities() []ecs.Entity {
	if r == nil {
		return nil
	}
	return append([]ecs.Entity(nil), r.entities...)
}

// Cleared reports whether every adversary has been removed.
func (r *Roster) Cleared() bool {
	return r != nil && r.cleared
}

func (r *Roster) notify() {
	if r.OnCount != nil {
		r.OnCount(len(r.entities))
	}
}
