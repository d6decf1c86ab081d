package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/render"
)

type configFile struct {
	Width           float64      `json:"width" yaml:"width" toml:"width"`
	Height          float64      `json:"height" yaml:"height" toml:"height"`
	Margin          float64      `json:"margin" yaml:"margin" toml:"margin"`
	NodeRadius      float64      `json:"node_radius" yaml:"node_radius" toml:"node_radius"`
	EdgeAnimationMS int64        `json:"edge_animation_ms" yaml:"edge_animation_ms" toml:"edge_animation_ms"`
	Style           render.Style `json:"style" yaml:"style" toml:"style"`
}

// ReadConfig decodes a render configuration from r. Missing keys keep the
// values of [render.DefaultConfig]; the result is validated.
func ReadConfig(r io.Reader, format Format) (render.Config, error) {
	def := render.DefaultConfig()
	cf := configFile{
		Width:           def.Width,
		Height:          def.Height,
		Margin:          def.Margin,
		NodeRadius:      def.NodeRadius,
		EdgeAnimationMS: def.EdgeAnimationDuration.Milliseconds(),
		Style:           def.Style,
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return render.Config{}, fmt.Errorf("read: %w", err)
	}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cf)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cf); err == io.EOF {
			err = nil
		}
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &cf)
		if err == nil {
			if keys := md.Undecoded(); len(keys) > 0 {
				names := make([]string, len(keys))
				for i, k := range keys {
					names[i] = k.String()
				}
				err = fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
			}
		}
	default:
		return render.Config{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if err != nil {
		return render.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s config", format)
	}

	cfg := render.Config{
		Width:                 cf.Width,
		Height:                cf.Height,
		Margin:                cf.Margin,
		NodeRadius:            cf.NodeRadius,
		EdgeAnimationDuration: time.Duration(cf.EdgeAnimationMS) * time.Millisecond,
		Style:                 cf.Style,
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a config file, choosing the format from its extension.
func LoadConfig(path string) (render.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return render.Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return render.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return render.Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadConfig(f, format)
}
