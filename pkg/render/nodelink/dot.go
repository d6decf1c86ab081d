package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
)

// pointsPerInch converts pixel sizes to Graphviz inches.
const pointsPerInch = 72.0

// Options configures node-link diagram generation.
type Options struct {
	// Style supplies colours and sizes. Zero fields fall back to
	// [render.DefaultStyle].
	Style render.Style

	// NodeRadius is the circle radius in pixels (default 20).
	NodeRadius float64

	// Highlight is a name path from the root, resolved with
	// [tree.Node.Follow]. Matched nodes use Style.HighlightFill.
	Highlight []string
}

// ToDOT converts a tree to Graphviz DOT format. Nodes are identified by their
// pre-order position so repeated names stay distinct.
func ToDOT(root *tree.Node, opts Options) string {
	style := opts.Style
	style.SetDefaults()
	r := opts.NodeRadius
	if r <= 0 {
		r = render.DefaultNodeRadius
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%.3f, style=filled, fillcolor=%q, color=%q, penwidth=%g, fontcolor=%q, fontsize=%g];\n",
		2*r/pointsPerInch, style.NodeFill, style.NodeStroke, style.NodeStrokeWidth, style.LabelFill, style.FontSize)
	fmt.Fprintf(&buf, "  edge [arrowhead=none, color=%q, penwidth=%g];\n", style.EdgeStroke, style.EdgeStrokeWidth)
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	if root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	marked := make(map[*tree.Node]bool)
	for _, n := range root.Follow(opts.Highlight) {
		marked[n] = true
	}

	ids := make(map[*tree.Node]string)
	root.Walk(func(n *tree.Node, _ int) bool {
		id := "n" + strconv.Itoa(len(ids))
		ids[n] = id
		if marked[n] {
			fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q];\n", id, n.Name, style.HighlightFill)
		} else {
			fmt.Fprintf(&buf, "  %s [label=%q];\n", id, n.Name)
		}
		return true
	})

	buf.WriteString("\n")
	root.Walk(func(n *tree.Node, _ int) bool {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a pixel
// viewBox anchored at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
