package sink

import (
	"bytes"
	"image"
	"math"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   float64
	elapsed time.Duration
	frame   bool
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithElapsed draws the edge tween at elapsed instead of its final frame.
func WithElapsed(d time.Duration) PNGOption {
	return func(r *pngRenderer) { r.elapsed = d; r.frame = true }
}

var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

func loadFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// RenderPNG rasterises the scene.
func RenderPNG(s *render.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale %g must be positive", r.scale)
	}

	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene has no background size")
	}

	pw, ph := int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale))
	dc := gg.NewContext(pw, ph)

	if bg := s.Background; bg != nil {
		shadow, err := drawShadow(pw, ph, r.scale, *bg)
		if err != nil {
			return nil, err
		}
		if shadow != nil {
			dc.DrawImage(shadow, 0, 0)
		}
	}
	dc.Scale(r.scale, r.scale)

	if bg := s.Background; bg != nil {
		c, err := parseColor(bg.Fill)
		if err != nil {
			return nil, err
		}
		dc.SetColor(c)
		dc.DrawRoundedRectangle(0, 0, bg.Width, bg.Height, bg.Radius)
		dc.Fill()
	}

	dc.Translate(s.Offset.X, s.Offset.Y)

	for _, l := range s.Lines {
		end := render.Point{X: l.X2, Y: l.Y2}
		if r.frame {
			end = l.At(r.elapsed)
		}
		c, err := parseColor(l.Stroke)
		if err != nil {
			return nil, err
		}
		dc.SetColor(c)
		dc.SetLineWidth(l.StrokeWidth)
		dc.DrawLine(l.X1, l.Y1, end.X, end.Y)
		dc.Stroke()
	}

	faces := make(map[float64]font.Face)
	defer func() {
		for _, f := range faces {
			f.Close()
		}
	}()

	for i, c := range s.Circles {
		if err := drawCircle(dc, c); err != nil {
			return nil, err
		}
		if i >= len(s.Texts) {
			continue
		}
		t := s.Texts[i]
		face, ok := faces[t.FontSize]
		if !ok {
			var err error
			if face, err = newFace(t.FontSize); err != nil {
				return nil, err
			}
			faces[t.FontSize] = face
		}
		if err := drawText(dc, face, t); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawShadow paints the panel's drop shadow on its own layer: the panel shape
// offset by (ShadowX, ShadowY), Gaussian-blurred with a standard deviation of
// half ShadowBlur. It returns nil for a fully transparent shadow colour.
func drawShadow(w, h int, scale float64, bg render.Background) (image.Image, error) {
	c, err := parseColor(bg.ShadowColor)
	if err != nil {
		return nil, err
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return nil, nil
	}

	layer := gg.NewContext(w, h)
	layer.Scale(scale, scale)
	layer.SetColor(c)
	layer.DrawRoundedRectangle(bg.ShadowX, bg.ShadowY, bg.Width, bg.Height, bg.Radius)
	layer.Fill()

	if bg.ShadowBlur <= 0 {
		return layer.Image(), nil
	}
	return imaging.Blur(layer.Image(), bg.ShadowBlur/2*scale), nil
}

func newFace(size float64) (font.Face, error) {
	f, err := loadFont()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "font face")
	}
	return face, nil
}

func drawCircle(dc *gg.Context, c render.Circle) error {
	fill, err := parseColor(c.Fill)
	if err != nil {
		return err
	}
	stroke, err := parseColor(c.Stroke)
	if err != nil {
		return err
	}
	dc.DrawCircle(c.CX, c.CY, c.R)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(c.StrokeWidth)
	dc.Stroke()
	return nil
}

func drawText(dc *gg.Context, face font.Face, t render.Text) error {
	c, err := parseColor(t.Fill)
	if err != nil {
		return err
	}
	ax := 0.5
	switch t.Anchor {
	case "start":
		ax = 0
	case "end":
		ax = 1
	}
	dc.SetFontFace(face)
	dc.SetColor(c)
	// ay = 0 puts the baseline on y, like SVG text.
	dc.DrawStringAnchored(t.Content, t.X, t.Y+t.DY, ax, 0)
	return nil
}
