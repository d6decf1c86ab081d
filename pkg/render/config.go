package render

import (
	"strconv"
	"time"

	"github.com/matzehuels/treeview/pkg/errors"
)

// Default values used by [Config.SetDefaults].
const (
	DefaultWidth                 = 800.0
	DefaultHeight                = 600.0
	DefaultMargin                = 50.0
	DefaultNodeRadius            = 20.0
	DefaultEdgeAnimationDuration = 1000 * time.Millisecond
)

// Config controls the size and look of a rendered diagram.
//
// Zero values mean "use the default", so a zero Margin, NodeRadius or
// EdgeAnimationDuration cannot be requested: Margin 0 renders with a 50px
// margin. Use a small positive value instead.
type Config struct {
	Width                 float64       // surface width in pixels
	Height                float64       // surface height in pixels
	Margin                float64       // offset of the drawn group on both axes
	NodeRadius            float64       // circle radius in pixels
	EdgeAnimationDuration time.Duration // edge tween length
	Style                 Style

	// Highlight is a path of node names from the root downwards. Each name
	// selects the first child of the previous match with that name; matched
	// nodes are filled with Style.HighlightFill. Matching stops at the first
	// name that is not found.
	Highlight []string
}

// DefaultConfig returns an 800×600 configuration with the default style.
func DefaultConfig() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// SetDefaults replaces zero fields with their defaults and merges Style over
// [DefaultStyle].
func (c *Config) SetDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	if c.NodeRadius == 0 {
		c.NodeRadius = DefaultNodeRadius
	}
	if c.EdgeAnimationDuration == 0 {
		c.EdgeAnimationDuration = DefaultEdgeAnimationDuration
	}
	c.Style.SetDefaults()
}

// Validate reports negative sizes and a margin that leaves no drawing area.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.InvalidInput("surface size %gx%g is negative", c.Width, c.Height)
	case c.Margin < 0:
		return errors.InvalidInput("margin %g is negative", c.Margin)
	case c.InnerWidth() < 0 || c.InnerHeight() < 0:
		return errors.InvalidInput("margin %g leaves no room in a %gx%g surface", c.Margin, c.Width, c.Height)
	case c.NodeRadius < 0:
		return errors.InvalidInput("node radius %g is negative", c.NodeRadius)
	case c.EdgeAnimationDuration < 0:
		return errors.InvalidInput("edge animation duration %s is negative", c.EdgeAnimationDuration)
	}
	return c.Style.Validate()
}

// InnerWidth is the horizontal extent available to the layout.
func (c Config) InnerWidth() float64 { return c.Width - 2*c.Margin }

// InnerHeight is the vertical extent available to the layout.
func (c Config) InnerHeight() float64 { return c.Height - 2*c.Margin }

func formatPx(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
