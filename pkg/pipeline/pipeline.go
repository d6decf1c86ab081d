// Package pipeline provides the load → layout → render pipeline behind the
// treeview commands.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a tree file (JSON, YAML or TOML) or take a tree in memory
//  2. Layout: place the nodes, either with the built-in tidy layout or by
//     generating Graphviz DOT
//  3. Render: produce output in the requested formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "tree.yaml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
)

// DefaultPNGScale is the PNG resolution multiplier.
const DefaultPNGScale = 1.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Engine constants for layout engines.
const (
	EngineTidy     = "tidy"
	EngineGraphviz = "graphviz"
)

// DefaultEngine is the layout engine used when none is given.
const DefaultEngine = EngineTidy

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidEngines is the set of supported layout engines.
var ValidEngines = map[string]bool{
	EngineTidy:     true,
	EngineGraphviz: true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is a tree file path. Ignored when Root is set.
	Input string `json:"input,omitempty"`

	// Root is an in-memory tree to render instead of Input.
	Root *tree.Node `json:"root,omitempty"`

	Formats []string      `json:"formats,omitempty"`
	Engine  string        `json:"engine,omitempty"`
	Config  render.Config `json:"-"`

	// Elapsed freezes edge animation at this point in time. Zero keeps SVG
	// animated and draws raster formats at the end of the tween.
	Elapsed time.Duration `json:"elapsed,omitempty"`

	PNGScale float64 `json:"png_scale,omitempty"`

	// Refresh re-renders every format even when cached.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the loaded tree.
	Root *tree.Node

	// Layout holds node positions; empty for the graphviz engine.
	Layout layout.Layout

	// Scene is the recorded drawing; nil for the graphviz engine.
	Scene *render.Scene

	// DOT is the Graphviz source; empty for the tidy engine.
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// TreeHash is the SHA-256 of the tree's JSON form.
	TreeHash string

	// CacheInfo reports which stages were served from the cache.
	CacheInfo CacheInfo

	// Stats contains timing and size information.
	Stats Stats
}

// CacheInfo contains cache hit information for a pipeline run.
type CacheInfo struct {
	RenderHit bool // every requested format came from the cache
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Depth      int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that a layout engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid engine: %q (must be one of: tidy, graphviz)", engine)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Root == nil && o.Input == "" {
		return errors.InvalidInput("input file or tree is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.IsGraphviz() {
		for _, f := range o.Formats {
			if f == FormatJSON {
				return errors.New(errors.ErrCodeUnsupported, "format json is not available with the graphviz engine")
			}
		}
	}
	if o.Elapsed < 0 {
		return errors.InvalidInput("elapsed time %s is negative", o.Elapsed)
	}
	if o.PNGScale < 0 {
		return errors.InvalidInput("png scale %g is negative", o.PNGScale)
	}

	o.Config.SetDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// IsGraphviz returns true if the graphviz engine is selected.
func (o *Options) IsGraphviz() bool {
	return o.Engine == EngineGraphviz
}

// Animated returns true if SVG output keeps its edge animation.
func (o *Options) Animated() bool {
	return o.Elapsed == 0
}
