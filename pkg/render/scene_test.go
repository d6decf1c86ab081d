package render

import "testing"

func TestSceneReplay(t *testing.T) {
	src := NewScene()
	if err := Render(scenarioA(), src, Config{}); err != nil {
		t.Fatal(err)
	}

	dst := NewScene()
	src.Replay(dst)

	if dst.Offset != src.Offset {
		t.Errorf("Offset = %+v, want %+v", dst.Offset, src.Offset)
	}
	if len(dst.Lines) != len(src.Lines) || len(dst.Circles) != len(src.Circles) || len(dst.Texts) != len(src.Texts) {
		t.Errorf("replayed %d/%d/%d glyphs, want %d/%d/%d",
			len(dst.Lines), len(dst.Circles), len(dst.Texts),
			len(src.Lines), len(src.Circles), len(src.Texts))
	}
	if w, h := dst.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %vx%v, want 800x600", w, h)
	}
}

func TestSceneEmpty(t *testing.T) {
	s := NewScene()
	if !s.Empty() {
		t.Error("new scene not empty")
	}
	s.DrawCircle(Circle{R: 1})
	if s.Empty() {
		t.Error("scene with a circle reported empty")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size() without background = %vx%v, want 0x0", w, h)
	}
}
