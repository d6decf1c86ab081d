// Package pkg provides the core libraries for Treeview tree visualization.
//
// # Overview
//
// Treeview lays out hierarchical data with a tidy tree algorithm and draws
// it as a node-link diagram: circles for nodes, labels above them, and edges
// that grow from parent to child over one second. The pkg directory is
// organized into four main areas:
//
//  1. [tree], [bst] - Domain types (labelled trees, binary search trees)
//  2. [layout], [render] - Positioning and drawing
//  3. [io], [cache] - File formats and the artifact cache
//  4. [pipeline] - Orchestration (load → layout → render)
//
// # Architecture
//
// The typical data flow through Treeview:
//
//	JSON/YAML/TOML file or in-memory tree
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [layout] package (tidy x/y positions)
//	         ↓
//	    [render] package (background, edges, nodes, labels)
//	         ↓
//	    SVG/PNG/PDF/JSON output or terminal preview
//
// # Quick Start
//
// Render a tree to an animated SVG:
//
//	import (
//	    "github.com/matzehuels/treeview/pkg/render"
//	    "github.com/matzehuels/treeview/pkg/render/sink"
//	    "github.com/matzehuels/treeview/pkg/tree"
//	)
//
//	root := tree.New("root",
//	    tree.New("A", tree.New("A1"), tree.New("A2")),
//	    tree.New("B"))
//
//	scene := render.NewScene()
//	if err := render.Render(root, scene, render.DefaultConfig()); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(scene)
//
// # Main Packages
//
// [tree] - The labelled tree value type with traversal and validation.
//
// [bst] - Integer binary search tree (insert, delete, search, traversals)
// that converts to a [tree.Node] for drawing.
//
// [layout] - Tidy tree layout: parents centred over children, siblings
// separated per depth, compact subtrees.
//
// [render] - Draws a layout onto a [render.Surface] and records it in a
// [render.Scene].
//
//   - [render/sink]: Output formats (SVG, PNG, PDF, JSON)
//   - [render/nodelink]: Graphviz rendering of the same tree
//   - [render/term]: Character-grid surface for terminal preview
//
// [io] - Tree and render-config files in JSON, YAML and TOML.
//
// [cache] - Content-addressed artifact cache (file and null backends).
//
// [pipeline] - Complete load → layout → render pipeline used by the CLI.
//
// [observability] - Hooks around layout and render stages.
//
// [errors] - Error codes shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/tree
// [bst]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/bst
// [layout]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/render/nodelink
// [render/term]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/render/term
// [io]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/errors
package pkg
