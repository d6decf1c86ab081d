// Package sink serialises a recorded [render.Scene] into output formats.
//
// # Overview
//
// A "sink" transforms the glyphs recorded by [render.Render] into a final
// output format:
//
//   - SVG: scalable vector graphics with the edge tween as SMIL animation
//   - PNG: native raster output drawn with fogleman/gg, one frame of the tween
//   - PDF: print-ready output via rsvg-convert (requires librsvg)
//   - JSON: the scene's glyphs for external tools
//
// # SVG Output
//
// [RenderSVG] mirrors what a browser would build for the diagram: an <svg>
// element carrying the panel style, a translated group, one <line> per edge
// that starts at its source node and animates its end point to the target,
// and one node group holding a circle and a label.
//
//	scene := render.NewScene()
//	_ = render.Render(root, scene, render.DefaultConfig())
//	svg := sink.RenderSVG(scene)
//
// Element ids are prefixed with a document id so several diagrams can live in
// one HTML page. By default the id is a name-based UUID of the scene content,
// so identical scenes produce identical bytes; [WithID] overrides it.
//
// Viewers that ignore SMIL (rsvg, most image converters) would show every
// edge at zero length. [WithFrame] emits a static snapshot of the tween
// instead; [RenderPDF] uses the final frame.
//
// # PNG Output
//
// [RenderPNG] rasterises the scene natively with the Go Regular font; it does
// not need librsvg. The box shadow falls outside the canvas and is not drawn.
//
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//
// [render.Scene]: github.com/matzehuels/treeview/pkg/render.Scene
// [render.Render]: github.com/matzehuels/treeview/pkg/render.Render
package sink
