// Package pkg provides the core libraries for Qscope quantum circuit analysis.
//
// # Overview
//
// Qscope loads quantum circuits, simulates their statevector, derives
// analysis metrics, and renders reports and diagrams. The pkg directory is
// organized into four main areas:
//
//  1. Circuit model (circuit, gate, algorithm, format)
//  2. Analysis (simulate, analyze, document)
//  3. Rendering (render/text, render/report, render/nodelink, io)
//  4. Infrastructure (pipeline, cache, store, httputil, observability, errors)
//
// # Architecture
//
// The typical data flow through Qscope:
//
//	QASM/TOML/JSON source or algorithm template
//	         ↓
//	    [format] / [algorithm] package (build the circuit)
//	         ↓
//	    [simulate] package (statevector evolution)
//	         ↓
//	    [analyze] package (metrics + entanglement)
//	         ↓
//	    [render] packages (reports, histograms, diagrams)
//	         ↓
//	    text/JSON/QASM/DOT/SVG/PNG/LaTeX/JS output
//
// # Quick Start
//
// Analyze a built-in algorithm and print the comprehensive report:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/qscope/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Algorithm: "grover",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report)
//
// # Main Packages
//
// ## Circuit Model
//
// [circuit] - The circuit data structure: qubit and classical registers plus
// an ordered instruction list. Includes validation, depth computation, and
// canonical hashing.
//
// [gate] - The gate catalog. Definitions carry display metadata and unitary
// matrices for every supported gate, grouped by category.
//
// [algorithm] - Built-in algorithm templates (Grover, QFT, teleportation,
// BB84, Deutsch-Jozsa, bit flip code, VQE ansatz) constructed
// programmatically.
//
// [format] - Circuit interchange codecs for QASM 2.0, TOML, and JSON with
// extension- and content-based detection.
//
// ## Analysis
//
// [simulate] - Dense statevector simulator. Applies gate unitaries in
// instruction order and degrades gracefully on mid-circuit measurement.
//
// [analyze] - Derives the analysis record from a circuit and its final
// state: operation counts, depth, probabilities, and gonum-backed
// entanglement metrics over reduced density matrices.
//
// [document] - The serialized analysis document stored in report archives
// and returned by the HTTP API.
//
// ## Rendering
//
// [render/text] - ASCII visualizations: probability histogram, state table,
// Bloch projections, phase diagram, amplitude distribution, entanglement
// heatmap.
//
// [render/report] - Comprehensive multi-section report and compact summary
// assembled from the text renderers.
//
// [render/nodelink] - Gate dependency diagrams via Graphviz (DOT, SVG, PNG).
//
// [io] - Import/export helpers plus LaTeX (quantikz) and JavaScript sketch
// writers.
//
// ## Infrastructure
//
// [pipeline] - The load → simulate → analyze → render orchestration shared
// by the CLI and the HTTP server, with result caching.
//
// [cache] - Cache backends: file (CLI), Redis (server deployments), memory,
// and null, behind one interface with scoped key derivation.
//
// [store] - Report archive backends: JSON files under the XDG data
// directory, MongoDB for shared deployments, and memory for tests.
//
// [httputil] - Remote circuit fetching with size limits and retry.
//
// [observability] - Process-wide hook registry that the CLI uses for
// progress reporting.
//
// [errors] - Coded errors shared across packages; codes map to HTTP
// statuses in the server and to user-facing messages in the CLI.
//
// # Common Workflows
//
// Parse a circuit file:
//
//	f, _ := format.Get("qasm")
//	c, err := f.Decode(data)
//
// Simulate and analyze directly:
//
//	state, err := simulate.StateVector(c)
//	rec, err := analyze.Analyze(c)
//
// Render a single artifact:
//
//	dot := nodelink.ToDOT(c, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/simulate/...   # Specific package
//	go test -run Example         # Examples only
//
// [circuit]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/circuit
// [gate]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/gate
// [algorithm]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/algorithm
// [format]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/format
// [simulate]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/simulate
// [analyze]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/analyze
// [document]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/render/text
// [render/report]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/render/report
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/store
// [httputil]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/qscope/pkg/errors
package pkg
