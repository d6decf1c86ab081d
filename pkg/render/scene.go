package render

// Scene is a [Surface] that records every glyph in memory.
type Scene struct {
	Background *Background `json:"background,omitempty"`
	Offset     Point       `json:"offset"`
	Lines      []Line      `json:"lines"`
	Circles    []Circle    `json:"circles"`
	Texts      []Text      `json:"texts"`
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) DrawBackground(b Background) { s.Background = &b }
func (s *Scene) DrawLine(l Line)             { s.Lines = append(s.Lines, l) }
func (s *Scene) DrawCircle(c Circle)         { s.Circles = append(s.Circles, c) }
func (s *Scene) DrawText(t Text)             { s.Texts = append(s.Texts, t) }

// Translate accumulates the group offset.
func (s *Scene) Translate(dx, dy float64) {
	s.Offset.X += dx
	s.Offset.Y += dy
}

// Empty reports whether nothing has been drawn.
func (s *Scene) Empty() bool {
	return s.Background == nil && len(s.Lines) == 0 && len(s.Circles) == 0 && len(s.Texts) == 0
}

// Size returns the background size, or zero if no background was drawn.
func (s *Scene) Size() (w, h float64) {
	if s.Background == nil {
		return 0, 0
	}
	return s.Background.Width, s.Background.Height
}

// Replay draws the recorded glyphs onto another surface in recording order.
func (s *Scene) Replay(dst Surface) {
	if s.Background != nil {
		dst.DrawBackground(*s.Background)
	}
	if s.Offset != (Point{}) {
		dst.Translate(s.Offset.X, s.Offset.Y)
	}
	for _, l := range s.Lines {
		dst.DrawLine(l)
	}
	for i, c := range s.Circles {
		dst.DrawCircle(c)
		if i < len(s.Texts) {
			dst.DrawText(s.Texts[i])
		}
	}
}

var _ Surface = (*Scene)(nil)
