// Package tree provides the hierarchical data model rendered by treeview.
//
// A [Node] has a display name and an ordered list of children. Trees are
// rooted, acyclic and strictly hierarchical: a node is owned by exactly one
// parent and holds no back-reference to it. The renderer treats a tree as
// read-only for the duration of a render call.
//
// Trees are usually decoded from JSON, YAML or TOML documents shaped like
//
//	{"name": "root", "children": [{"name": "A"}, {"name": "B"}]}
//
// (see the io package), built by hand with [New], or produced from a binary
// search tree by the bst package.
package tree
