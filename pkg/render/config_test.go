package render

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.Width != 800 || c.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", c.Width, c.Height)
	}
	if c.Margin != 50 {
		t.Errorf("Margin = %v, want 50", c.Margin)
	}
	if c.NodeRadius != 20 {
		t.Errorf("NodeRadius = %v, want 20", c.NodeRadius)
	}
	if c.EdgeAnimationDuration != time.Second {
		t.Errorf("EdgeAnimationDuration = %v, want 1s", c.EdgeAnimationDuration)
	}
	if c.InnerWidth() != 700 || c.InnerHeight() != 500 {
		t.Errorf("inner = %vx%v, want 700x500", c.InnerWidth(), c.InnerHeight())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	c := Config{Width: 1024, Margin: 10, Style: Style{NodeFill: "#ff0000", LabelOffset: Offset(25), ShadowY: Offset(0)}}
	c.SetDefaults()

	if c.Width != 1024 || c.Height != 600 || c.Margin != 10 {
		t.Errorf("config = %+v", c)
	}
	if c.Style.NodeFill != "#ff0000" {
		t.Errorf("NodeFill = %q, want #ff0000", c.Style.NodeFill)
	}
	if *c.Style.LabelOffset != 25 {
		t.Errorf("LabelOffset = %v, want 25", *c.Style.LabelOffset)
	}
	if *c.Style.ShadowY != 0 {
		t.Errorf("ShadowY = %v, want explicit 0", *c.Style.ShadowY)
	}
	if c.Style.EdgeStroke != "#ccc" {
		t.Errorf("EdgeStroke = %q, want #ccc", c.Style.EdgeStroke)
	}
}

func TestSetDefaultsPartialStyle(t *testing.T) {
	c := Config{Style: Style{NodeFill: "#ff0000"}}
	c.SetDefaults()

	if c.Style.LabelOffset == nil || *c.Style.LabelOffset != -30 {
		t.Errorf("LabelOffset = %v, want -30", c.Style.LabelOffset)
	}
	if c.Style.ShadowY == nil || *c.Style.ShadowY != 4 {
		t.Errorf("ShadowY = %v, want 4", c.Style.ShadowY)
	}
	if c.Style.ShadowX == nil || *c.Style.ShadowX != 0 {
		t.Errorf("ShadowX = %v, want 0", c.Style.ShadowX)
	}
	if c.Style.HighlightFill != "#f1c40f" {
		t.Errorf("HighlightFill = %q, want #f1c40f", c.Style.HighlightFill)
	}
}

func TestSetDefaultsDoesNotAliasDefaults(t *testing.T) {
	a := Config{}
	a.SetDefaults()
	*a.Style.LabelOffset = 99

	if got := *DefaultConfig().Style.LabelOffset; got != -30 {
		t.Errorf("default LabelOffset = %v after mutating a copy, want -30", got)
	}
}

func TestShadowCSS(t *testing.T) {
	if got, want := DefaultStyle().ShadowCSS(), "0 4px 6px rgba(0, 0, 0, 0.2)"; got != want {
		t.Errorf("ShadowCSS() = %q, want %q", got, want)
	}
}

func TestZeroMarginMeansDefault(t *testing.T) {
	scene := NewScene()
	if err := Render(scenarioA(), scene, Config{Margin: 0}); err != nil {
		t.Fatal(err)
	}
	if scene.Offset != (Point{X: DefaultMargin, Y: DefaultMargin}) {
		t.Errorf("offset = %+v, want the default margin on both axes", scene.Offset)
	}
}
