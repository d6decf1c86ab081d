package sink

import (
	"context"
	"time"

	"github.com/matzehuels/treeview/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the final frame of the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s *render.Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svgOpts := append([]SVGOption{WithFrame(finalFrame(s)), WithoutPanelCSS()}, r.svgOpts...)
	return render.ToPDF(ctx, RenderSVG(s, svgOpts...))
}

// finalFrame returns the elapsed time at which every edge tween has ended.
func finalFrame(s *render.Scene) (d time.Duration) {
	for _, l := range s.Lines {
		d = max(d, l.Tween.Duration)
	}
	return d
}
