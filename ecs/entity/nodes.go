package entity

import "github.com/rishiskhare/gorillavs100men/ecs/component"

// Nodes hands out scene node handles with match-unique ids.
type Nodes struct {
	next uint64
}

func (n *Nodes) New(kind component.NodeKind, name string) *component.Node {
	n.next++
	return &component.Node{ID: n.next, Kind: kind, Name: name}
}
