// Package nodelink renders trees through Graphviz instead of the built-in
// tidy layout.
//
// # Overview
//
// The tidy engine in [render] places nodes itself. This package hands the
// tree to Graphviz's dot layout and keeps only the look: circle nodes with
// the same fill, stroke and edge colours as the tidy renderer. It is selected
// with `treeview render --engine graphviz`.
//
// # Usage
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// The Graphviz output is static; edge animation is only produced by the
// tidy engine.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
