package render

import "time"

// Surface is an append-only drawing target. Implementations own the pixels;
// the renderer only adds glyphs to them.
type Surface interface {
	// DrawBackground paints the panel behind the diagram.
	DrawBackground(b Background)
	// Translate offsets every glyph drawn afterwards.
	Translate(dx, dy float64)
	// DrawLine adds an edge.
	DrawLine(l Line)
	// DrawCircle adds a node glyph.
	DrawCircle(c Circle)
	// DrawText adds a node label.
	DrawText(t Text)
}

// Point is a position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Background is the rounded, shadowed panel behind a diagram.
type Background struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius"`
	Fill        string  `json:"fill"`
	ShadowX     float64 `json:"shadow_x"`
	ShadowY     float64 `json:"shadow_y"`
	ShadowBlur  float64 `json:"shadow_blur"`
	ShadowColor string  `json:"shadow_color"`
}

// Tween animates the end point of a line from From to the line's target.
type Tween struct {
	From     Point         `json:"from"`
	Duration time.Duration `json:"duration"`
}

// Line is an edge from (X1, Y1) to (X2, Y2).
type Line struct {
	ID          string  `json:"id"`
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	Tween       Tween   `json:"tween"`
}

// At returns the end point of the line after elapsed time. Before the tween
// starts the line has zero length; after it ends it reaches (X2, Y2).
func (l Line) At(elapsed time.Duration) Point {
	t := l.Progress(elapsed)
	return Point{
		X: l.Tween.From.X + (l.X2-l.Tween.From.X)*t,
		Y: l.Tween.From.Y + (l.Y2-l.Tween.From.Y)*t,
	}
}

// Progress returns the linear tween fraction in [0, 1].
func (l Line) Progress(elapsed time.Duration) float64 {
	switch {
	case elapsed <= 0:
		return 0
	case l.Tween.Duration <= 0 || elapsed >= l.Tween.Duration:
		return 1
	}
	return float64(elapsed) / float64(l.Tween.Duration)
}

// Circle is a node glyph.
type Circle struct {
	ID          string  `json:"id"`
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Text is a node label anchored at (X, Y+DY).
type Text struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	DY       float64 `json:"dy"`
	Content  string  `json:"content"`
	Anchor   string  `json:"anchor"`
	Fill     string  `json:"fill"`
	FontSize float64 `json:"font_size"`
}
