package sink

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/matzehuels/treeview/pkg/errors"
)

// parseColor understands the colour notations used by render.Style:
// #rgb, #rrggbb, rgb(r, g, b), rgba(r, g, b, a) and CSS colour names.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	case s == "transparent" || s == "none":
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown colour %q", s)
}

func parseHex(h string) (color.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid hex colour #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex colour #%s", h)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func parseFunc(s string) (color.Color, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid colour %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid colour %q", s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid colour %q", s)
		}
		ch[i] = v
	}
	clamp := func(v, hi float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(v, hi))))
	}
	c := color.NRGBA{
		R: clamp(ch[0], 255),
		G: clamp(ch[1], 255),
		B: clamp(ch[2], 255),
		A: clamp(ch[3]*255, 255),
	}
	return c, nil
}
