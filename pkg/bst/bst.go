package bst

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

type node struct {
	value       int
	left, right *node
}

// Tree is an unbalanced integer binary search tree. The zero value is an
// empty tree ready to use.
type Tree struct {
	root *node
	size int
}

// Order selects a depth-first traversal.
type Order string

const (
	PreOrder  Order = "pre"
	InOrder   Order = "in"
	PostOrder Order = "post"
)

// ParseOrder accepts "pre", "in" and "post" (and the long forms "preorder" etc).
func ParseOrder(s string) (Order, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return "", errors.InvalidInput("unknown traversal order %q (want pre, in or post)", s)
}

// New returns a tree with values inserted in the given order.
func New(values ...int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// BuildBalanced returns a height-balanced tree holding values. The middle of
// the sorted values (index len/2) becomes the root, recursively.
func BuildBalanced(values []int) *Tree {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return &Tree{root: balanced(sorted), size: len(sorted)}
}

func balanced(sorted []int) *node {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) / 2
	return &node{
		value: sorted[mid],
		left:  balanced(sorted[:mid]),
		right: balanced(sorted[mid+1:]),
	}
}

// Len reports the number of stored values.
func (t *Tree) Len() int { return t.size }

// Insert adds v. Duplicates are kept and go right.
func (t *Tree) Insert(v int) {
	t.size++
	if t.root == nil {
		t.root = &node{value: v}
		return
	}
	cur := t.root
	for {
		if v < cur.value {
			if cur.left == nil {
				cur.left = &node{value: v}
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = &node{value: v}
				return
			}
			cur = cur.right
		}
	}
}

// Delete removes one occurrence of v and reports whether it was present. A
// node with two children is replaced by its in-order successor.
func (t *Tree) Delete(v int) bool {
	var found bool
	t.root, found = remove(t.root, v)
	if found {
		t.size--
	}
	return found
}

func remove(n *node, v int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var found bool
	switch {
	case v < n.value:
		n.left, found = remove(n.left, v)
		return n, found
	case v > n.value:
		n.right, found = remove(n.right, v)
		return n, found
	}
	switch {
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	}
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.value = succ.value
	n.right, _ = remove(n.right, succ.value)
	return n, true
}

// Search reports whether v is stored and returns the values visited on the
// way, ending with v when found.
func (t *Tree) Search(v int) (path []int, found bool) {
	for cur := t.root; cur != nil; {
		path = append(path, cur.value)
		switch {
		case v == cur.value:
			return path, true
		case v < cur.value:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return path, false
}

// Contains reports whether v is stored.
func (t *Tree) Contains(v int) bool {
	_, ok := t.Search(v)
	return ok
}

// Height returns the number of nodes on the longest root-to-leaf path; an
// empty tree has height 0.
func (t *Tree) Height() int { return height(t.root) }

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Traverse returns the values in the given order.
func (t *Tree) Traverse(o Order) []int {
	out := make([]int, 0, t.size)
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if o == PreOrder {
			out = append(out, n.value)
		}
		walk(n.left)
		if o == InOrder {
			out = append(out, n.value)
		}
		walk(n.right)
		if o == PostOrder {
			out = append(out, n.value)
		}
	}
	walk(t.root)
	return out
}

func (t *Tree) Preorder() []int  { return t.Traverse(PreOrder) }
func (t *Tree) Inorder() []int   { return t.Traverse(InOrder) }
func (t *Tree) Postorder() []int { return t.Traverse(PostOrder) }

// Balance rebuilds the tree from its in-order values.
func (t *Tree) Balance() {
	vals := t.Inorder()
	t.root = balanced(vals)
}

// ToNode converts the tree for rendering. It returns nil for an empty tree.
func (t *Tree) ToNode() *tree.Node {
	return toNode(t.root)
}

func toNode(n *node) *tree.Node {
	if n == nil {
		return nil
	}
	out := tree.New(strconv.Itoa(n.value))
	for _, c := range []*node{n.left, n.right} {
		if c != nil {
			out.Children = append(out.Children, toNode(c))
		}
	}
	return out
}

// ParseValues parses a comma-separated list of integers such as "5, 3, 8".
// Empty entries are ignored; at least one value is required.
func ParseValues(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid value %q", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.InvalidInput("no values in %q", s)
	}
	return out, nil
}
