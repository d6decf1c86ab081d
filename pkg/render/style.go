package render

import "github.com/matzehuels/treeview/pkg/errors"

// Style holds the visual constants of a diagram.
//
// Offsets are pointers so an explicit 0 can be told apart from an unset
// field; [Style.SetDefaults] fills only the nil ones.
type Style struct {
	Background   string   `json:"background" yaml:"background" toml:"background"`
	CornerRadius float64  `json:"corner_radius" yaml:"corner_radius" toml:"corner_radius"`
	ShadowX      *float64 `json:"shadow_x,omitempty" yaml:"shadow_x,omitempty" toml:"shadow_x,omitempty"`
	ShadowY      *float64 `json:"shadow_y,omitempty" yaml:"shadow_y,omitempty" toml:"shadow_y,omitempty"`
	ShadowBlur   float64  `json:"shadow_blur" yaml:"shadow_blur" toml:"shadow_blur"`
	ShadowColor  string   `json:"shadow_color" yaml:"shadow_color" toml:"shadow_color"`

	NodeFill        string  `json:"node_fill" yaml:"node_fill" toml:"node_fill"`
	NodeStroke      string  `json:"node_stroke" yaml:"node_stroke" toml:"node_stroke"`
	NodeStrokeWidth float64 `json:"node_stroke_width" yaml:"node_stroke_width" toml:"node_stroke_width"`

	EdgeStroke      string  `json:"edge_stroke" yaml:"edge_stroke" toml:"edge_stroke"`
	EdgeStrokeWidth float64 `json:"edge_stroke_width" yaml:"edge_stroke_width" toml:"edge_stroke_width"`

	LabelFill   string   `json:"label_fill" yaml:"label_fill" toml:"label_fill"`
	LabelOffset *float64 `json:"label_offset,omitempty" yaml:"label_offset,omitempty" toml:"label_offset,omitempty"` // vertical, from node centre
	FontSize    float64  `json:"font_size" yaml:"font_size" toml:"font_size"`

	// HighlightFill colours the nodes on [Config.Highlight].
	HighlightFill string `json:"highlight_fill" yaml:"highlight_fill" toml:"highlight_fill"`
}

// Offset returns a pointer to v for use in [Style] literals.
func Offset(v float64) *float64 { return &v }

// DefaultStyle returns the stock look: blue nodes with white labels above
// them and light grey edges on a translucent white panel.
func DefaultStyle() Style {
	return Style{
		Background:   "rgba(255, 255, 255, 0.1)",
		CornerRadius: 10,
		ShadowX:      Offset(0),
		ShadowY:      Offset(4),
		ShadowBlur:   6,
		ShadowColor:  "rgba(0, 0, 0, 0.2)",

		NodeFill:        "#3498db",
		NodeStroke:      "#2980b9",
		NodeStrokeWidth: 2,

		EdgeStroke:      "#ccc",
		EdgeStrokeWidth: 2,

		LabelFill:   "#fff",
		LabelOffset: Offset(-30),
		FontSize:    16,

		HighlightFill: "#f1c40f",
	}
}

// SetDefaults fills empty colours, non-positive sizes and nil offsets from
// [DefaultStyle].
func (s *Style) SetDefaults() {
	d := DefaultStyle()
	setOffset(&s.ShadowX, d.ShadowX)
	setOffset(&s.ShadowY, d.ShadowY)
	setOffset(&s.LabelOffset, d.LabelOffset)
	setString(&s.Background, d.Background)
	setString(&s.ShadowColor, d.ShadowColor)
	setString(&s.NodeFill, d.NodeFill)
	setString(&s.NodeStroke, d.NodeStroke)
	setString(&s.EdgeStroke, d.EdgeStroke)
	setString(&s.LabelFill, d.LabelFill)
	setString(&s.HighlightFill, d.HighlightFill)
	setFloat(&s.CornerRadius, d.CornerRadius)
	setFloat(&s.ShadowBlur, d.ShadowBlur)
	setFloat(&s.NodeStrokeWidth, d.NodeStrokeWidth)
	setFloat(&s.EdgeStrokeWidth, d.EdgeStrokeWidth)
	setFloat(&s.FontSize, d.FontSize)
}

// Validate checks every colour with [errors.ValidateColor].
func (s Style) Validate() error {
	for _, c := range []string{s.Background, s.ShadowColor, s.NodeFill, s.NodeStroke, s.EdgeStroke, s.LabelFill, s.HighlightFill} {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// ShadowCSS formats the shadow as a CSS box-shadow value.
func (s Style) ShadowCSS() string {
	return formatPx(value(s.ShadowX)) + " " + formatPx(value(s.ShadowY)) + " " + formatPx(s.ShadowBlur) + " " + s.ShadowColor
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setFloat(dst *float64, def float64) {
	if *dst <= 0 {
		*dst = def
	}
}

func setOffset(dst **float64, def *float64) {
	if *dst == nil {
		*dst = Offset(*def)
	}
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
