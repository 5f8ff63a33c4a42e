package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/qscope/pkg/circuit"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the moment index in node labels.
	// When false, only the instruction is shown.
	Detailed bool
}

// ToDOT converts a circuit's instruction dependency graph to Graphviz DOT
// format. Every instruction becomes a node; an edge connects each
// instruction to the previous one on any wire it touches, so the diagram
// reads as the circuit's data flow. Instructions scheduled into the same
// moment share a rank, which keeps columns aligned with the circuit's
// time steps. The resulting DOT string can be rendered using [RenderSVG]
// or [RenderPNG].
//
// Barriers are rendered with dashed outlines and grey fill to distinguish
// directives from gates; measurements get a light blue fill.
func ToDOT(c *circuit.Circuit, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph circuit {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	moments := c.Moments()
	momentOf := make([]int, len(c.Ops))
	for m, ops := range moments {
		for _, i := range ops {
			momentOf[i] = m + 1
		}
	}

	for i, op := range c.Ops {
		label := opLabel(op, opts.Detailed, momentOf[i])
		attrs := opAttrs(op, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range wireEdges(c) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.from), nodeID(e.to))
	}

	buf.WriteString("\n")
	for _, ops := range moments {
		buf.WriteString("  { rank=same;")
		for _, i := range ops {
			fmt.Fprintf(&buf, " %q;", nodeID(i))
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("op%d", i)
}

func opLabel(op circuit.Op, detailed bool, moment int) string {
	label := op.Gate
	if len(op.Params) > 0 {
		params := make([]string, len(op.Params))
		for i, p := range op.Params {
			params[i] = strconv.FormatFloat(p, 'g', 4, 64)
		}
		label += "(" + strings.Join(params, ",") + ")"
	}

	args := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		args[i] = fmt.Sprintf("q[%d]", q)
	}
	label += " " + strings.Join(args, ",")

	if op.Gate == "measure" {
		clbits := op.TargetClbits()
		targets := make([]string, len(clbits))
		for i, cl := range clbits {
			targets[i] = fmt.Sprintf("c[%d]", cl)
		}
		label += " -> " + strings.Join(targets, ",")
	}

	if detailed {
		label += fmt.Sprintf("\nmoment: %d", moment)
	}
	return label
}

func opAttrs(op circuit.Op, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch op.Gate {
	case "barrier":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	case "measure":
		attrs = append(attrs, "fillcolor=lightblue")
	}
	return attrs
}

type edge struct {
	from, to int
}

// wireEdges builds the dependency edges: for every wire an instruction
// touches, an edge from the previous instruction on that wire. Duplicate
// edges (a two-qubit gate following another on both wires) collapse to one.
func wireEdges(c *circuit.Circuit) []edge {
	lastQubit := make([]int, c.Qubits)
	lastClbit := make([]int, c.Clbits)
	for i := range lastQubit {
		lastQubit[i] = -1
	}
	for i := range lastClbit {
		lastClbit[i] = -1
	}

	var edges []edge
	for i, op := range c.Ops {
		seen := make(map[int]bool)
		var preds []int
		addPred := func(last int) {
			if last >= 0 && !seen[last] {
				seen[last] = true
				preds = append(preds, last)
			}
		}
		for _, q := range op.Qubits {
			addPred(lastQubit[q])
		}
		if op.Gate == "measure" {
			for _, cl := range op.TargetClbits() {
				addPred(lastClbit[cl])
			}
		}

		slices.Sort(preds)
		for _, p := range preds {
			edges = append(edges, edge{from: p, to: i})
		}

		for _, q := range op.Qubits {
			lastQubit[q] = i
		}
		if op.Gate == "measure" {
			for _, cl := range op.TargetClbits() {
				lastClbit[cl] = i
			}
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	svg, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's built-in
// rasterizer.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
