package layout

import "github.com/matzehuels/treeview/pkg/tree"

// Node is the positioned projection of a [tree.Node].
type Node struct {
	Name     string
	X, Y     float64
	Depth    int
	Index    int // breadth-first position, root = 0
	Parent   *Node
	Children []*Node
	Source   *tree.Node
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// Link is a parent-to-child edge.
type Link struct {
	Source, Target *Node
}

// Layout is the result of [Compute].
type Layout struct {
	Width, Height float64
	Nodes         []*Node // breadth-first, root first
	Links         []Link  // one per non-root node, ordered like Nodes
}

// Root returns the root node, or nil for an empty layout.
func (l Layout) Root() *Node {
	if len(l.Nodes) == 0 {
		return nil
	}
	return l.Nodes[0]
}

// Depth returns the depth of the deepest node.
func (l Layout) Depth() int {
	d := 0
	for _, n := range l.Nodes {
		d = max(d, n.Depth)
	}
	return d
}

// SeparationFunc returns the minimum horizontal distance, in abstract units,
// between two adjacent nodes on the same level.
type SeparationFunc func(a, b *Node) float64

// DefaultSeparation keeps siblings one unit apart and cousins two.
func DefaultSeparation(a, b *Node) float64 {
	if a.Parent == b.Parent {
		return 1
	}
	return 2
}

// Options configures [Compute].
type Options struct {
	Width      float64        // horizontal extent available to the layout
	Height     float64        // vertical extent; the deepest level sits here
	Separation SeparationFunc // nil means DefaultSeparation
}
