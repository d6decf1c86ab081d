package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

// WriteTree encodes root in the given format and writes it to w.
// The output can be re-imported with [ReadTree].
func WriteTree(root *tree.Node, w io.Writer, format Format) error {
	if root == nil {
		return errors.InvalidInput("root node is nil")
	}
	switch format {
	case FormatJSON:
		return WriteJSON(root, w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(root); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// WriteJSON encodes a tree as indented JSON and writes it to w.
func WriteJSON(root *tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTree writes a tree to path, choosing the format from its extension.
func ExportTree(root *tree.Node, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTree(root, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
