package sink

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
)

func scene(t *testing.T, root *tree.Node) *render.Scene {
	t.Helper()
	s := render.NewScene()
	if err := render.Render(root, s, render.DefaultConfig()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func scenarioA() *tree.Node {
	return tree.New("root", tree.New("A"), tree.New("B"))
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(scene(t, scenarioA()), WithID("doc")))

	contains := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" id="doc" viewBox="0 0 800 600" width="800" height="600"`,
		`style="background: rgba(255, 255, 255, 0.1); border-radius: 10px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.2)"`,
		`<filter id="doc-shadow"`,
		`<rect class="background" width="800" height="600" rx="10" ry="10" fill="rgba(255, 255, 255, 0.1)" filter="url(#doc-shadow)"/>`,
		`<g transform="translate(50, 50)">`,
		`<g class="node" id="doc-node-0" transform="translate(350, 0)">`,
		`<circle r="20" style="fill: #3498db; stroke: #2980b9; stroke-width: 2"/>`,
		`<text x="0" y="0" dy="-30" text-anchor="middle" style="font-size: 16px; fill: #fff">root</text>`,
		`>A</text>`,
		`>B</text>`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %s", want)
		}
	}

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("circles = %d, want 3", got)
	}
	if got := strings.Count(svg, "<line"); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	if got := strings.Count(svg, "<text"); got != 3 {
		t.Errorf("labels = %d, want 3", got)
	}

	// edges come before nodes so they render underneath
	if strings.Index(svg, "<line") > strings.Index(svg, "<circle") {
		t.Error("edges are drawn after nodes")
	}
}

func TestRenderSVGAnimatedEdges(t *testing.T) {
	svg := string(RenderSVG(scene(t, scenarioA()), WithID("doc")))

	// Edge to A starts zero-length at the root and grows to (175, 500).
	want := []string{
		`<line class="link" id="doc-edge-1" x1="350" y1="0" x2="350" y2="0" style="stroke: #ccc; stroke-width: 2">`,
		`<animate attributeName="x2" from="350" to="175" begin="0s" dur="1000ms" fill="freeze"/>`,
		`<animate attributeName="y2" from="0" to="500" begin="0s" dur="1000ms" fill="freeze"/>`,
	}
	for _, w := range want {
		if !strings.Contains(svg, w) {
			t.Errorf("SVG missing %s", w)
		}
	}
}

func TestRenderSVGFrame(t *testing.T) {
	s := scene(t, scenarioA())

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"start", 0, `x2="350" y2="0"`},
		{"half", 500 * time.Millisecond, `x2="262.50" y2="250"`},
		{"end", time.Second, `x2="175" y2="500"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(s, WithID("doc"), WithFrame(tt.elapsed)))
			if strings.Contains(svg, "<animate") {
				t.Error("static frame contains animation")
			}
			if !strings.Contains(svg, tt.want) {
				t.Errorf("frame at %v missing %s", tt.elapsed, tt.want)
			}
		})
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	svg := RenderSVG(scene(t, tree.New(`<a & "b">`)))
	if bytes.Contains(svg, []byte(`<a & "b">`)) {
		t.Error("label not escaped")
	}
	if !bytes.Contains(svg, []byte(`&lt;a &amp; &#34;b&#34;&gt;`)) {
		t.Errorf("escaped label missing in %s", svg)
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	root := tree.New("root",
		tree.New("A", tree.New("A1"), tree.New("A2")),
		tree.New("B", tree.New("B1")),
	)
	for _, opts := range [][]SVGOption{nil, {WithFrame(time.Second)}, {WithoutPanelCSS()}} {
		svg := RenderSVG(scene(t, root), opts...)
		dec := xml.NewDecoder(bytes.NewReader(svg))
		for {
			_, err := dec.Token()
			if err != nil {
				if err.Error() != "EOF" {
					t.Fatalf("invalid XML: %v", err)
				}
				break
			}
		}
	}
}

func TestDocumentIDDeterministic(t *testing.T) {
	a := RenderSVG(scene(t, scenarioA()))
	b := RenderSVG(scene(t, scenarioA()))
	if !bytes.Equal(a, b) {
		t.Error("identical scenes produced different SVG")
	}

	idA := DocumentID(scene(t, scenarioA()))
	idB := DocumentID(scene(t, tree.New("other")))
	if idA == idB {
		t.Errorf("DocumentID() collision: %s", idA)
	}
	if !strings.HasPrefix(idA, "tv-") {
		t.Errorf("DocumentID() = %s, want tv- prefix", idA)
	}
}

func TestWithoutPanelCSS(t *testing.T) {
	svg := string(RenderSVG(scene(t, scenarioA()), WithoutPanelCSS()))
	if strings.Contains(svg, "box-shadow") {
		t.Error("panel CSS present")
	}
	if !strings.Contains(svg, `class="background"`) {
		t.Error("background rect missing")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{262.5, "262.50"},
		{-0.001, "0"},
		{1.234, "1.23"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
