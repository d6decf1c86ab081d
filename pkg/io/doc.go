// Package io reads and writes trees and render configuration files.
//
// # Tree Format
//
// A tree is a nested object with a name and an optional list of children.
// The same shape is accepted as JSON, YAML or TOML:
//
//	{
//	  "name": "root",
//	  "children": [
//	    {"name": "A", "children": [{"name": "A1"}, {"name": "A2"}]},
//	    {"name": "B"}
//	  ]
//	}
//
// Names may also be numbers (as produced by binary-tree exports); they are
// converted to their decimal text. All names are normalised to Unicode NFC
// so that visually identical labels compare equal and measure the same.
//
// # Import
//
// Use [ImportTree] to read a file, picking the format from the extension, or
// [ReadTree] to read from any io.Reader:
//
//	root, err := io.ImportTree("tree.yaml")
//
// Imported trees are validated with [tree.Node.Validate].
//
// # Export
//
// [WriteTree] and [ExportTree] write a tree back out in any of the three
// formats. A tree exported and re-imported compares equal.
//
// # Config Files
//
// [LoadConfig] reads a [render.Config] from a JSON, YAML or TOML file:
//
//	width = 1024
//	height = 768
//	margin = 40
//	node_radius = 16
//	edge_animation_ms = 500
//
//	[style]
//	node_fill = "#e67e22"
//
// Keys missing from the file keep their default values. Unknown keys are an
// INVALID_CONFIG error so that typos do not go unnoticed.
package io
