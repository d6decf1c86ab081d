package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/io"
	"github.com/matzehuels/treeview/pkg/render"
)

// renderFlags holds the flags shared by every command that draws a tree.
// Flags set on the command line override values from --config.
type renderFlags struct {
	config   string
	width    float64
	height   float64
	margin   float64
	radius   float64
	duration time.Duration
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "render config file (.json, .yaml or .toml)")
	cmd.Flags().Float64Var(&f.width, "width", render.DefaultWidth, "surface width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", render.DefaultHeight, "surface height in pixels")
	cmd.Flags().Float64Var(&f.margin, "margin", render.DefaultMargin, "margin around the tree in pixels")
	cmd.Flags().Float64Var(&f.radius, "radius", render.DefaultNodeRadius, "node circle radius in pixels")
	cmd.Flags().DurationVar(&f.duration, "duration", render.DefaultEdgeAnimationDuration, "edge animation duration")
}

// resolve builds the render config: defaults, then the config file, then
// explicitly set flags.
func (f *renderFlags) resolve(cmd *cobra.Command) (render.Config, error) {
	cfg := render.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = io.LoadConfig(f.config); err != nil {
			return render.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("margin") {
		cfg.Margin = f.margin
	}
	if flags.Changed("radius") {
		cfg.NodeRadius = f.radius
	}
	if flags.Changed("duration") {
		cfg.EdgeAnimationDuration = f.duration
	}

	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}
