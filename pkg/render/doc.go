// Package render draws a laid-out tree onto a drawing surface.
//
// # Overview
//
// [Render] is the tree renderer. Given a root [tree.Node], a [Surface] and a
// [Config], it computes a tidy-tree layout and appends, in order:
//
//  1. one background rectangle with rounded corners and a drop shadow
//  2. one translation of the outer group by (Margin, Margin)
//  3. one [Line] per parent→child edge, so edges sit under nodes
//  4. one [Circle] and one [Text] label per node
//
// Edges and nodes are emitted breadth-first. Every edge carries a [Tween]:
// it starts as a zero-length segment at its source and grows linearly to the
// target over Config.EdgeAnimationDuration. Surfaces decide how to present
// the tween; [Line.At] gives the end point at any elapsed time.
//
// Render validates its arguments before touching the surface. A nil root is
// reported as an INVALID_INPUT error (see [errors.IsInvalidInput]) and leaves
// the surface unchanged.
//
// # Surfaces
//
// [Scene] records glyphs in memory and is the surface most callers want: the
// sink subpackage serialises a Scene to SVG, PNG, PDF or JSON, and the term
// subpackage provides a character-grid surface for terminal previews.
//
//	scene := render.NewScene()
//	if err := render.Render(root, scene, render.DefaultConfig()); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(scene)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG bytes using the external rsvg-convert tool
// (from librsvg). They are shared by the sink and nodelink subpackages.
//
// [tree.Node]: github.com/matzehuels/treeview/pkg/tree.Node
// [errors.IsInvalidInput]: github.com/matzehuels/treeview/pkg/errors.IsInvalidInput
package render
