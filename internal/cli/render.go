package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/pipeline"
	"github.com/matzehuels/treeview/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	renderFlags
	output  string        // output file path (or base path for multiple outputs)
	formats []string      // output formats: "svg", "pdf", "png", "json"
	engine  string        // layout engine: "tidy" or "graphviz"
	frame   time.Duration // freeze edge animation at this time
	scale   float64       // PNG scale factor
	refresh bool          // ignore cached artifacts
	mark    []string      // highlight path of node names from the root
}

// renderCommand creates the render command for drawing a tree file.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{engine: pipeline.DefaultEngine, scale: pipeline.DefaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree file (JSON, YAML or TOML) to SVG, PNG, PDF or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateEngine(opts.engine); err != nil {
				return err
			}
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			cfg.Highlight = opts.mark
			return c.runRender(cmd.Context(), pipeline.Options{
				Input:    args[0],
				Formats:  opts.formats,
				Engine:   opts.engine,
				Config:   cfg,
				Elapsed:  opts.frame,
				PNGScale: opts.scale,
				Refresh:  opts.refresh,
			}, args[0], opts.output)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "layout engine: tidy (default), graphviz")
	cmd.Flags().DurationVar(&opts.frame, "frame", 0, "render a still frame at this point of the edge animation")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if the output is cached")
	cmd.Flags().StringArrayVar(&opts.mark, "highlight", nil, "highlight a path of node names from the root (repeat once per level)")

	cmd.ValidArgsFunction = completeTreeFile
	_ = cmd.RegisterFlagCompletionFunc("format", completeFrom(formatSet, true))
	_ = cmd.RegisterFlagCompletionFunc("engine", completeFrom(engineSet, false))

	return cmd
}

// runRender executes the pipeline and writes every artifact. name is used to
// derive output paths when output is empty.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, name, output string) error {
	prog := newProgress(c.Logger)

	spin := startSpinner(ctx, os.Stderr, "Rendering "+filepath.Base(name))
	res, err := c.newRunner().Execute(ctx, opts)
	spin.stop()
	if err != nil {
		return err
	}

	paths := outputPaths(output, name, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeOutput(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
		c.Logger.Debugf("Generated %s: %d bytes", format, len(res.Artifacts[format]))
	}

	prog.done("render finished", "nodes", res.Stats.NodeCount, "formats", opts.Formats)
	printSuccess("Rendered %s", filepath.Base(name))
	if res.CacheInfo.RenderHit {
		printInfo("%s", StyleDim.Render("served from cache"))
	}
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.Depth)
	for _, format := range opts.Formats {
		if p := paths[format]; p != "-" {
			printFile(p)
		}
	}
	return nil
}

// outputPaths maps each format to its output file. A single format uses
// output as given; several formats share a base path with per-format
// extensions.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// renderTree runs the pipeline for an in-memory tree.
func (c *CLI) renderTree(ctx context.Context, root *tree.Node, opts pipeline.Options, name, output string) error {
	opts.Root = root
	return c.runRender(ctx, opts, name, output)
}
