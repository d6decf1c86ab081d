package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/render"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

var nodeBlue = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(scene(t, scenarioA()))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img := decodePNG(t, data)

	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}

	// Node centres: root (400, 50), A (225, 550), B (575, 550).
	assertPixel(t, img, 400, 50, nodeBlue)
	assertPixel(t, img, 225, 550, nodeBlue)
	assertPixel(t, img, 575, 550, nodeBlue)
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(scene(t, scenarioA()), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img := decodePNG(t, data)
	if b := img.Bounds(); b.Dx() != 1600 || b.Dy() != 1200 {
		t.Errorf("size = %dx%d, want 1600x1200", b.Dx(), b.Dy())
	}
	assertPixel(t, img, 800, 100, nodeBlue)
}

func TestRenderPNGFrame(t *testing.T) {
	s := scene(t, scenarioA())

	// Midpoint of the edge root→A lies at (312.5, 300) in canvas space.
	start, err := RenderPNG(s, WithElapsed(0))
	if err != nil {
		t.Fatal(err)
	}
	end, err := RenderPNG(s, WithElapsed(time.Second))
	if err != nil {
		t.Fatal(err)
	}

	isEdge := func(img image.Image) bool {
		c := color.NRGBAModel.Convert(img.At(312, 300)).(color.NRGBA)
		return c.A > 200 && c.R > 0xb0 && c.R < 0xe0
	}
	if !isEdge(decodePNG(t, end)) {
		t.Error("edge missing at t=1s")
	}
	if isEdge(decodePNG(t, start)) {
		t.Error("edge already drawn at t=0")
	}
}

func TestRenderPNGErrors(t *testing.T) {
	if _, err := RenderPNG(render.NewScene()); !errors.IsInvalidInput(err) {
		t.Errorf("RenderPNG(empty) error = %v, want INVALID_INPUT", err)
	}
	if _, err := RenderPNG(scene(t, scenarioA()), WithScale(0)); !errors.IsInvalidInput(err) {
		t.Errorf("RenderPNG(scale 0) error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderPNGShadow(t *testing.T) {
	alphaAt := func(img image.Image, x, y int) uint8 {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
	}

	data, err := RenderPNG(scene(t, scenarioA()))
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, data)

	// The shadow sits 4px lower than the panel, so the top rows only catch
	// its blurred edge while the middle is fully covered.
	top, mid := alphaAt(img, 400, 0), alphaAt(img, 400, 300)
	if int(mid) <= int(top)+10 {
		t.Errorf("alpha top = %d, middle = %d; want the shadow to darken the middle", top, mid)
	}

	s := scene(t, scenarioA())
	s.Background.ShadowColor = "transparent"
	data, err = RenderPNG(s)
	if err != nil {
		t.Fatal(err)
	}
	img = decodePNG(t, data)
	if top, mid := alphaAt(img, 400, 0), alphaAt(img, 400, 300); !near(top, mid) {
		t.Errorf("alpha top = %d, middle = %d without a shadow; want equal", top, mid)
	}
}
