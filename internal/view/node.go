package view

// Node is a minimal retained view-tree node. Concrete cells compose nodes;
// the adapter only ever walks Children to locate the nested list surface.
type Node interface {
	Children() []Node
}

// Box is a plain container node.
type Box struct {
	children []Node
}

// NewBox creates a container holding the given children in order.
func NewBox(children ...Node) *Box {
	return &Box{children: children}
}

// Add appends a child node.
func (b *Box) Add(n Node) {
	b.children = append(b.children, n)
}

func (b *Box) Children() []Node { return b.children }

// Leaf is a childless node, useful as a stand-in for plain content views.
type Leaf struct{}

func (Leaf) Children() []Node { return nil }
