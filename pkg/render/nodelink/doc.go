// Package nodelink renders circuits as directed node-link diagrams.
//
// # Overview
//
// This package produces data-flow visualizations of a circuit using
// Graphviz: each instruction appears as a box, and arrows connect
// instructions that share a wire. It's an alternative to the ASCII
// renderers for cases where a graphical artifact is preferred.
//
// # Usage
//
// Convert a circuit to DOT format, then render:
//
//	dot := nodelink.ToDOT(c, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the scheduled moment index
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) so time flows
// the way circuit diagrams are usually read, and pins instructions of the
// same moment to the same rank.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is required.
package nodelink
