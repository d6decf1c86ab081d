package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeview/pkg/cache"
	"github.com/matzehuels/treeview/pkg/io"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/observability"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/render/nodelink"
	"github.com/matzehuels/treeview/pkg/tree"
)

// Runner executes pipeline runs with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	root, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Root = root
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = root.Count()
	result.Stats.EdgeCount = result.Stats.NodeCount - 1
	result.Stats.Depth = root.Height()
	result.TreeHash = treeHash(root)

	r.Logger.Info("loaded tree",
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.Depth,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Render().OnLayoutStart(ctx, opts.Engine, result.Stats.NodeCount)
	if opts.IsGraphviz() {
		result.DOT = nodelink.ToDOT(root, nodelink.Options{
			Style:      opts.Config.Style,
			NodeRadius: opts.Config.NodeRadius,
			Highlight:  opts.Config.Highlight,
		})
	} else {
		result.Layout, err = r.Layout(root, opts)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Render().OnLayoutComplete(ctx, opts.Engine, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.Logger.Info("computed layout",
		"engine", opts.Engine,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	if !opts.IsGraphviz() {
		result.Scene = render.NewScene()
		render.Draw(result.Layout, result.Scene, opts.Config)
	}
	result.Artifacts, result.CacheInfo.RenderHit, err = r.Render(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", result.CacheInfo.RenderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load returns opts.Root, or reads opts.Input when no tree is given.
func (r *Runner) Load(opts Options) (*tree.Node, error) {
	if opts.Root != nil {
		if err := opts.Root.Validate(); err != nil {
			return nil, err
		}
		return opts.Root, nil
	}
	r.Logger.Debug("reading tree", "path", opts.Input)
	return io.ImportTree(opts.Input)
}

// Layout computes tidy positions inside the area left by the margins.
func (r *Runner) Layout(root *tree.Node, opts Options) (layout.Layout, error) {
	cfg := opts.Config
	cfg.SetDefaults()
	l, err := layout.Compute(root, layout.Options{Width: cfg.InnerWidth(), Height: cfg.InnerHeight()})
	if err != nil {
		return layout.Layout{}, err
	}
	r.Logger.Debug("tidy layout",
		"nodes", len(l.Nodes),
		"depth", l.Depth(),
		"area", fmt.Sprintf("%gx%g", l.Width, l.Height))
	return l, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
