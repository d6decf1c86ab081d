package tree

import (
	"fmt"

	"github.com/matzehuels/treeview/pkg/errors"
)

// Node is a single element of a tree.
type Node struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// New creates a node with the given name and children.
func New(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			return
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Leaves returns the leaf nodes in left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// Height returns the number of edges on the longest root-to-leaf path.
// A single node has height 0.
func (n *Node) Height() int {
	h := 0
	n.Walk(func(_ *Node, depth int) bool {
		h = max(h, depth)
		return true
	})
	return h
}

// Follow resolves a path of names starting at n itself. Each later name
// selects the first child of the previous match with that name. It returns
// the matched prefix, which is empty when n's own name differs from path[0].
func (n *Node) Follow(path []string) []*Node {
	if n == nil || len(path) == 0 || n.Name != path[0] {
		return nil
	}
	out := []*Node{n}
	cur := n
	for _, name := range path[1:] {
		var next *Node
		for _, c := range cur.Children {
			if c != nil && c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}

// Validate checks that the structure reachable from n is a tree: no nil
// children and no node reachable twice. Labels are checked with
// [errors.ValidateLabel].
func (n *Node) Validate() error {
	if n == nil {
		return errors.InvalidInput("root node is nil")
	}
	seen := make(map[*Node]bool)
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			return errors.InvalidInput("node %q is reachable more than once", cur.Name)
		}
		seen[cur] = true
		if err := errors.ValidateLabel(cur.Name); err != nil {
			return err
		}
		for i, c := range cur.Children {
			if c == nil {
				return errors.InvalidInput("node %q has nil child at index %d", cur.Name, i)
			}
			stack = append(stack, c)
		}
	}
	return nil
}

// String returns a compact single-line rendering, e.g. "root(A B(C))".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return n.Name
	}
	s := n.Name + "("
	for i, c := range n.Children {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(c)
	}
	return s + ")"
}
