package sink

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/treeview/pkg/render"
)

// documentNamespace seeds name-based document ids.
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/treeview"))

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	id       string
	static   bool
	elapsed  time.Duration
	embedCSS bool
}

// WithID sets the document id used to prefix element ids.
func WithID(id string) SVGOption { return func(r *svgRenderer) { r.id = id } }

// WithFrame renders a static snapshot of the edge tween at elapsed instead of
// SMIL animation.
func WithFrame(elapsed time.Duration) SVGOption {
	return func(r *svgRenderer) { r.static = true; r.elapsed = elapsed }
}

// WithoutPanelCSS drops the CSS background/border-radius/box-shadow from the
// root element, leaving only the drawn panel.
func WithoutPanelCSS() SVGOption { return func(r *svgRenderer) { r.embedCSS = false } }

// DocumentID returns the name-based UUID of a scene's content.
func DocumentID(s *render.Scene) string {
	data, _ := json.Marshal(s)
	return "tv-" + uuid.NewSHA1(documentNamespace, data).String()
}

// RenderSVG serialises the scene as an SVG document.
func RenderSVG(s *render.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{embedCSS: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = DocumentID(s)
	}

	w, h := s.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f"`,
		escapeXML(r.id), w, h, w, h)
	if r.embedCSS && s.Background != nil {
		fmt.Fprintf(&buf, ` style="%s"`, escapeXML(panelCSS(*s.Background)))
	}
	buf.WriteString(">\n")

	if s.Background != nil {
		renderPanel(&buf, r.id, *s.Background)
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%s, %s)">`+"\n", num(s.Offset.X), num(s.Offset.Y))
	for _, l := range s.Lines {
		r.renderLine(&buf, l)
	}
	for i, c := range s.Circles {
		var t *render.Text
		if i < len(s.Texts) {
			t = &s.Texts[i]
		}
		r.renderNode(&buf, c, t)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func panelCSS(b render.Background) string {
	return fmt.Sprintf("background: %s; border-radius: %spx; box-shadow: %s %s %s %s",
		b.Fill, num(b.Radius), px(b.ShadowX), px(b.ShadowY), px(b.ShadowBlur), b.ShadowColor)
}

func renderPanel(buf *bytes.Buffer, id string, b render.Background) {
	filter := id + "-shadow"
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <filter id="%s" x="-10%%" y="-10%%" width="120%%" height="130%%">`+"\n", escapeXML(filter))
	fmt.Fprintf(buf, `      <feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s"/>`+"\n",
		num(b.ShadowX), num(b.ShadowY), num(b.ShadowBlur/2), escapeXML(b.ShadowColor))
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
	fmt.Fprintf(buf, `  <rect class="background" width="%s" height="%s" rx="%s" ry="%s" fill="%s" filter="url(#%s)"/>`+"\n",
		num(b.Width), num(b.Height), num(b.Radius), num(b.Radius), escapeXML(b.Fill), escapeXML(filter))
}

func (r *svgRenderer) renderLine(buf *bytes.Buffer, l render.Line) {
	style := fmt.Sprintf("stroke: %s; stroke-width: %s", l.Stroke, num(l.StrokeWidth))
	id := r.id + "-" + l.ID

	if r.static {
		p := l.At(r.elapsed)
		fmt.Fprintf(buf, `    <line class="link" id="%s" x1="%s" y1="%s" x2="%s" y2="%s" style="%s"/>`+"\n",
			escapeXML(id), num(l.X1), num(l.Y1), num(p.X), num(p.Y), escapeXML(style))
		return
	}

	from := l.Tween.From
	fmt.Fprintf(buf, `    <line class="link" id="%s" x1="%s" y1="%s" x2="%s" y2="%s" style="%s">`+"\n",
		escapeXML(id), num(l.X1), num(l.Y1), num(from.X), num(from.Y), escapeXML(style))
	dur := fmt.Sprintf("%dms", l.Tween.Duration.Milliseconds())
	fmt.Fprintf(buf, `      <animate attributeName="x2" from="%s" to="%s" begin="0s" dur="%s" fill="freeze"/>`+"\n",
		num(from.X), num(l.X2), dur)
	fmt.Fprintf(buf, `      <animate attributeName="y2" from="%s" to="%s" begin="0s" dur="%s" fill="freeze"/>`+"\n",
		num(from.Y), num(l.Y2), dur)
	buf.WriteString("    </line>\n")
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, c render.Circle, t *render.Text) {
	fmt.Fprintf(buf, `    <g class="node" id="%s" transform="translate(%s, %s)">`+"\n",
		escapeXML(r.id+"-"+c.ID), num(c.CX), num(c.CY))
	fmt.Fprintf(buf, `      <circle r="%s" style="fill: %s; stroke: %s; stroke-width: %s"/>`+"\n",
		num(c.R), escapeXML(c.Fill), escapeXML(c.Stroke), num(c.StrokeWidth))
	if t != nil {
		// Label position is relative to the node group.
		fmt.Fprintf(buf, `      <text x="%s" y="%s" dy="%s" text-anchor="%s" style="font-size: %spx; fill: %s">%s</text>`+"\n",
			num(t.X-c.CX), num(t.Y-c.CY), num(t.DY), escapeXML(t.Anchor), num(t.FontSize), escapeXML(t.Fill), escapeXML(t.Content))
	}
	buf.WriteString("    </g>\n")
}

// num formats a coordinate with two decimals, dropping a ".00" suffix.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if len(s) > 3 && s[len(s)-3:] == ".00" {
		s = s[:len(s)-3]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return num(v) + "px"
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
