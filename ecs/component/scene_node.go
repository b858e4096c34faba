package component

type NodeKind int

const (
	NodeGorilla NodeKind = iota
	NodeHuman
	NodeHealthBar
)

func (k NodeKind) String() string {
	switch k {
	case NodeGorilla:
		return "gorilla"
	case NodeHuman:
		return "human"
	case NodeHealthBar:
		return "health_bar"
	default:
		return "unknown"
	}
}

// Node is the handle a scene collaborator uses for one render object.
type Node struct {
	ID   uint64
	Kind NodeKind
	Name string
}

// Renderable binds an actor to its scene node.
type Renderable struct {
	Node *Node
}

var RenderableComponent = NewComponent[Renderable]()

// HealthBar binds an adversary to its floating bar while it is alive.
type HealthBar struct {
	Node *Node
}

var HealthBarComponent = NewComponent[HealthBar]()
