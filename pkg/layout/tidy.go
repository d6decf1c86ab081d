package layout

import (
	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

// wnode carries the per-node working state of the tidy-tree passes.
type wnode struct {
	node     *Node
	parent   *wnode
	children []*wnode
	i        int // index among siblings

	ancestor *wnode // a: candidate greatest distinct ancestor
	defAnc   *wnode // A: default ancestor, stored on the parent
	thread   *wnode // t
	prelim   float64
	mod      float64
	change   float64
	shift    float64
}

// Compute lays out the tree rooted at root within opts.Width × opts.Height.
// It returns an INVALID_INPUT error when root is nil or the area is negative.
func Compute(root *tree.Node, opts Options) (Layout, error) {
	if root == nil {
		return Layout{}, errors.InvalidInput("root node is nil")
	}
	if opts.Width < 0 || opts.Height < 0 {
		return Layout{}, errors.InvalidInput("layout area %gx%g is negative", opts.Width, opts.Height)
	}
	sep := opts.Separation
	if sep == nil {
		sep = DefaultSeparation
	}

	nodes, top := build(root)

	// The virtual parent lets the root be handled like any other child.
	virtual := &wnode{children: []*wnode{top}}
	top.parent = virtual

	for _, v := range postOrder(top) {
		firstWalk(v, sep)
	}
	virtual.mod = -top.prelim
	for _, v := range preOrder(top) {
		v.node.X = v.prelim + v.parent.mod
		v.mod += v.parent.mod
	}

	scale(nodes, opts, sep)

	links := make([]Link, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		links = append(links, Link{Source: n.Parent, Target: n})
	}
	return Layout{Width: opts.Width, Height: opts.Height, Nodes: nodes, Links: links}, nil
}

// build mirrors the input tree into layout nodes (breadth-first order) and
// working nodes.
func build(root *tree.Node) ([]*Node, *wnode) {
	top := &wnode{node: &Node{Name: root.Name, Source: root}}
	top.ancestor = top

	nodes := []*Node{top.node}
	queue := []*wnode{top}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for i, c := range v.node.Source.Children {
			n := &Node{Name: c.Name, Source: c, Parent: v.node, Depth: v.node.Depth + 1}
			w := &wnode{node: n, parent: v, i: i}
			w.ancestor = w
			v.node.Children = append(v.node.Children, n)
			v.children = append(v.children, w)
			nodes = append(nodes, n)
			queue = append(queue, w)
		}
	}
	for i, n := range nodes {
		n.Index = i
	}
	return nodes, top
}

func postOrder(top *wnode) []*wnode {
	var out []*wnode
	stack := []*wnode{top}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		stack = append(stack, v.children...)
	}
	// out is root, right-to-left pre-order; reversed it is left-to-right post-order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func preOrder(top *wnode) []*wnode {
	var out []*wnode
	stack := []*wnode{top}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		for i := len(v.children) - 1; i >= 0; i-- {
			stack = append(stack, v.children[i])
		}
	}
	return out
}

func firstWalk(v *wnode, sep SeparationFunc) {
	siblings := v.parent.children
	var w *wnode
	if v.i > 0 {
		w = siblings[v.i-1]
	}

	if len(v.children) > 0 {
		executeShifts(v)
		mid := (v.children[0].prelim + v.children[len(v.children)-1].prelim) / 2
		if w != nil {
			v.prelim = w.prelim + sep(v.node, w.node)
			v.mod = v.prelim - mid
		} else {
			v.prelim = mid
		}
	} else if w != nil {
		v.prelim = w.prelim + sep(v.node, w.node)
	}

	anc := v.parent.defAnc
	if anc == nil {
		anc = siblings[0]
	}
	v.parent.defAnc = apportion(v, w, anc, sep)
}

// apportion pushes the subtree of v right until its left contour clears the
// right contour of everything to its left, and threads the shorter contour.
func apportion(v, w, ancestor *wnode, sep SeparationFunc) *wnode {
	if w == nil {
		return ancestor
	}

	vip, vop := v, v
	vim := w
	vom := v.parent.children[0]
	sip, sop := vip.mod, vop.mod
	sim, som := vim.mod, vom.mod

	for {
		vim = nextRight(vim)
		vip = nextLeft(vip)
		if vim == nil || vip == nil {
			break
		}
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.ancestor = v

		shift := vim.prelim + sim - vip.prelim - sip + sep(vim.node, vip.node)
		if shift > 0 {
			moveSubtree(nextAncestor(vim, v, ancestor), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.mod
		sip += vip.mod
		som += vom.mod
		sop += vop.mod
	}

	if vim != nil && nextRight(vop) == nil {
		vop.thread = vim
		vop.mod += sim - sop
	}
	if vip != nil && nextLeft(vom) == nil {
		vom.thread = vip
		vom.mod += sip - som
		ancestor = v
	}
	return ancestor
}

func nextLeft(v *wnode) *wnode {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.thread
}

func nextRight(v *wnode) *wnode {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.thread
}

func nextAncestor(vim, v, ancestor *wnode) *wnode {
	if vim.ancestor.parent == v.parent {
		return vim.ancestor
	}
	return ancestor
}

func moveSubtree(wm, wp *wnode, shift float64) {
	change := shift / float64(wp.i-wm.i)
	wp.change -= change
	wp.shift += shift
	wm.change += change
	wp.prelim += shift
	wp.mod += shift
}

// executeShifts spreads the shifts recorded by moveSubtree evenly over the
// smaller subtrees between two moved siblings.
func executeShifts(v *wnode) {
	shift, change := 0.0, 0.0
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.prelim += shift
		w.mod += shift
		change += w.change
		shift += w.shift + change
	}
}

// scale maps abstract positions onto the requested area.
func scale(nodes []*Node, opts Options, sep SeparationFunc) {
	left, right := nodes[0], nodes[0]
	bottom := 0
	for _, n := range nodes {
		if n.X < left.X {
			left = n
		}
		if n.X > right.X {
			right = n
		}
		bottom = max(bottom, n.Depth)
	}

	s := 1.0
	if left != right {
		s = sep(left, right) / 2
	}
	tx := s - left.X
	kx := opts.Width / (right.X + s + tx)
	ky := opts.Height
	if bottom > 0 {
		ky = opts.Height / float64(bottom)
	}
	for _, n := range nodes {
		n.X = (n.X + tx) * kx
		n.Y = float64(n.Depth) * ky
	}
}
