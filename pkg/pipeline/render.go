package pipeline

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/qscope/pkg/analyze"
	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/format"
	circuitio "github.com/matzehuels/qscope/pkg/io"
	"github.com/matzehuels/qscope/pkg/render/nodelink"
	"github.com/matzehuels/qscope/pkg/render/report"
)

// RenderReport renders the comprehensive text report for a record.
func RenderReport(rec *analyze.Record, opts Options) string {
	opts.SetRenderDefaults()
	return report.Comprehensive(rec, opts.ReportOptions())
}

// RenderArtifacts encodes the circuit in every requested artifact format.
func RenderArtifacts(c *circuit.Circuit, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		data, err := renderArtifact(c, name, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		artifacts[name] = data
	}
	return artifacts, nil
}

// renderArtifact dispatches a single format to its encoder. Circuit
// interchange formats go through the format registry; gate-graph formats
// through Graphviz; LaTeX and JavaScript sketches through the io writers.
func renderArtifact(c *circuit.Circuit, name string, opts Options) ([]byte, error) {
	switch name {
	case FormatQASM, FormatTOML, FormatJSON:
		f, err := format.Get(name)
		if err != nil {
			return nil, err
		}
		return f.Encode(c)

	case FormatDOT:
		return []byte(nodelink.ToDOT(c, nodelink.Options{Detailed: opts.Detailed})), nil

	case FormatSVG:
		return nodelink.RenderSVG(nodelink.ToDOT(c, nodelink.Options{Detailed: opts.Detailed}))

	case FormatPNG:
		return nodelink.RenderPNG(nodelink.ToDOT(c, nodelink.Options{Detailed: opts.Detailed}))

	case FormatLatex:
		var buf bytes.Buffer
		if err := circuitio.WriteLatex(c, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatJS:
		var buf bytes.Buffer
		if err := circuitio.WriteJavaScript(c, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported artifact format %q", name)
	}
}
