package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/treeview/pkg/cache"
	"github.com/matzehuels/treeview/pkg/render/nodelink"
	"github.com/matzehuels/treeview/pkg/render/sink"
	"github.com/matzehuels/treeview/pkg/tree"
)

// artifactTTL bounds how long rendered outputs stay cached.
const artifactTTL = 7 * 24 * time.Hour

// Render produces every requested format for a loaded and laid-out result,
// serving formats from the cache where possible. The bool reports whether
// all formats were cache hits.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	hits := 0

	for _, format := range opts.Formats {
		key := artifactKey(res.TreeHash, format, opts)
		if !opts.Refresh && res.TreeHash != "" {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				r.Logger.Debug("cache hit", "format", format)
				artifacts[format] = data
				hits++
				continue
			}
		}

		data, err := renderFormat(ctx, res, format, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if res.TreeHash != "" {
			if err := r.Cache.Set(ctx, key, data, artifactTTL); err != nil {
				r.Logger.Warn("cache write failed", "format", format, "error", err)
			}
		}
	}

	return artifacts, hits == len(opts.Formats), nil
}

func renderFormat(ctx context.Context, res *Result, format string, opts Options) ([]byte, error) {
	if opts.IsGraphviz() {
		return renderGraphviz(ctx, res.DOT, format, opts)
	}

	s := res.Scene
	switch format {
	case FormatSVG:
		return sink.RenderSVG(s, buildSVGOptions(opts)...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.PNGScale)}
		if !opts.Animated() {
			pngOpts = append(pngOpts, sink.WithElapsed(opts.Elapsed))
		}
		return sink.RenderPNG(s, pngOpts...)
	case FormatPDF:
		var pdfOpts []sink.PDFOption
		if !opts.Animated() {
			pdfOpts = append(pdfOpts, sink.WithPDFSVGOptions(sink.WithFrame(opts.Elapsed)))
		}
		return sink.RenderPDF(ctx, s, pdfOpts...)
	case FormatJSON:
		return sink.RenderJSON(s)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if !opts.Animated() {
		svgOpts = append(svgOpts, sink.WithFrame(opts.Elapsed))
	}
	return svgOpts
}

// renderGraphviz generates graphviz-engine outputs from DOT source.
func renderGraphviz(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.PNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported graphviz format: %s", format)
	}
}

// treeHash identifies a tree by the hash of its JSON form. It returns "" if
// the tree cannot be encoded, which disables caching for the run.
func treeHash(root *tree.Node) string {
	data, err := json.Marshal(root)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func artifactKey(hash, format string, opts Options) string {
	return cache.ArtifactKey(hash, cache.ArtifactKeyOpts{
		Format:   format,
		Engine:   opts.Engine,
		Elapsed:  opts.Elapsed,
		Scale:    opts.PNGScale,
		Settings: opts.Config,
	})
}
