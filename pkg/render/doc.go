// Package render groups the visualization renderers for circuit analyses.
//
// # Overview
//
// Rendering is split into subpackages by output medium:
//
//   - [text]: the six ASCII renderers (probability histogram, state vector
//     table, Bloch sphere projection, phase diagram, amplitude
//     distribution, entanglement heatmap)
//   - [report]: the comprehensive multi-section report and the compact
//     key/value rendering assembled from the text renderers
//   - [nodelink]: Graphviz node-link diagrams of a circuit's instruction
//     dependencies (DOT, SVG, PNG)
//
// All text output is plain ASCII plus box-drawing and block characters, so
// it renders identically in terminals and log files. The text renderers are
// pure functions over analysis data: they never fail, degrading to short
// placeholder messages when the data they need is absent.
//
// [text]: github.com/matzehuels/qscope/pkg/render/text
// [report]: github.com/matzehuels/qscope/pkg/render/report
// [nodelink]: github.com/matzehuels/qscope/pkg/render/nodelink
package render
