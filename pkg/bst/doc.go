// Package bst provides an integer binary search tree that can be rendered
// with the tree renderer.
//
// Values smaller than a node go left, everything else (duplicates included)
// goes right. [BuildBalanced] builds the tree from the sorted values by
// repeatedly picking the middle element, which is how `treeview bst` builds
// its input unless --ordered is given.
//
//	values, err := bst.ParseValues("5, 3, 8, 1")
//	root := bst.BuildBalanced(values).ToNode()
//
// [Tree.ToNode] converts the tree into a [tree.Node] whose names are the
// decimal values; missing children are skipped, left before right.
package bst
