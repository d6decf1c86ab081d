package render

import (
	"fmt"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/tree"
)

// Render lays out root and draws it onto s. Zero fields of cfg take their
// defaults. Nothing is drawn if an argument is invalid.
func Render(root *tree.Node, s Surface, cfg Config) error {
	if root == nil {
		return errors.InvalidInput("root node is nil")
	}
	if s == nil {
		return errors.InvalidInput("surface is nil")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := layout.Compute(root, layout.Options{Width: cfg.InnerWidth(), Height: cfg.InnerHeight()})
	if err != nil {
		return err
	}
	Draw(l, s, cfg)
	return nil
}

// Draw paints an already computed layout. cfg must have its defaults set.
func Draw(l layout.Layout, s Surface, cfg Config) {
	st := cfg.Style

	s.DrawBackground(Background{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Radius:      st.CornerRadius,
		Fill:        st.Background,
		ShadowX:     value(st.ShadowX),
		ShadowY:     value(st.ShadowY),
		ShadowBlur:  st.ShadowBlur,
		ShadowColor: st.ShadowColor,
	})
	s.Translate(cfg.Margin, cfg.Margin)

	for _, link := range l.Links {
		src, dst := link.Source, link.Target
		s.DrawLine(Line{
			ID:          fmt.Sprintf("edge-%d", dst.Index),
			X1:          src.X,
			Y1:          src.Y,
			X2:          dst.X,
			Y2:          dst.Y,
			Stroke:      st.EdgeStroke,
			StrokeWidth: st.EdgeStrokeWidth,
			Tween: Tween{
				From:     Point{X: src.X, Y: src.Y},
				Duration: cfg.EdgeAnimationDuration,
			},
		})
	}

	marked := highlighted(l, cfg.Highlight)
	for _, n := range l.Nodes {
		fill := st.NodeFill
		if marked[n] {
			fill = st.HighlightFill
		}
		s.DrawCircle(Circle{
			ID:          fmt.Sprintf("node-%d", n.Index),
			CX:          n.X,
			CY:          n.Y,
			R:           cfg.NodeRadius,
			Fill:        fill,
			Stroke:      st.NodeStroke,
			StrokeWidth: st.NodeStrokeWidth,
		})
		s.DrawText(Text{
			ID:       fmt.Sprintf("label-%d", n.Index),
			X:        n.X,
			Y:        n.Y,
			DY:       value(st.LabelOffset),
			Content:  n.Name,
			Anchor:   "middle",
			Fill:     st.LabelFill,
			FontSize: st.FontSize,
		})
	}
}

// highlighted resolves a name path against the layout, starting at the root.
func highlighted(l layout.Layout, path []string) map[*layout.Node]bool {
	root := l.Root()
	if root == nil || root.Source == nil {
		return nil
	}
	src := make(map[*tree.Node]bool)
	for _, n := range root.Source.Follow(path) {
		src[n] = true
	}
	marked := make(map[*layout.Node]bool, len(src))
	for _, n := range l.Nodes {
		if src[n.Source] {
			marked[n] = true
		}
	}
	return marked
}
