// Package layout computes tidy-tree coordinates for a [tree.Node] hierarchy.
//
// # Algorithm
//
// [Compute] implements the linear-time Reingold–Tilford algorithm as refined by
// Buchheim, Jünger and Leipert:
//
//  1. A post-order pass places every node relative to its left sibling and
//     centres parents over the span of their first and last child. Subtrees
//     are pushed apart along their contours (threads) so that no two nodes
//     on the same level come closer than the separation.
//  2. A pre-order pass accumulates modifiers into absolute positions.
//  3. Positions are scaled into the requested width and height.
//
// Separation is expressed in abstract units. The default, [DefaultSeparation],
// keeps siblings one unit apart and cousins two units apart. After layout the
// extreme nodes sit half a separation in from the left and right edges and the
// deepest level sits on the bottom edge; depth maps linearly to Y, so the root
// is always at Y = 0.
//
// # Output
//
// A [Layout] lists nodes in breadth-first order (root first) and one [Link]
// per non-root node, in the same order. Each layout [Node] keeps a
// non-owning pointer to its parent for edge drawing.
//
//	l, err := layout.Compute(root, layout.Options{Width: 700, Height: 500})
//	for _, link := range l.Links {
//	    fmt.Println(link.Source.Name, "->", link.Target.Name)
//	}
//
// [tree.Node]: github.com/matzehuels/treeview/pkg/tree.Node
package layout
