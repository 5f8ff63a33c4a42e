// Package io provides file import and export for analysis documents and
// circuit artifacts.
//
// # Overview
//
// This package handles the serialization endpoints of the toolchain:
//
//   - Analysis documents as JSON, for saving results and feeding external
//     tools. The format round-trips: export a document, re-import it, and
//     rebuild the full analysis record.
//   - LaTeX circuit sketches using the qcircuit package, one wire row per
//     qubit with the circuit depth as column count.
//   - JavaScript circuit modules for embedding in web front ends.
//
// Circuit interchange formats (TOML, OpenQASM, JSON circuits) live in
// [github.com/matzehuels/qscope/pkg/format]; this package covers outputs
// that are written but never sniffed back into circuits.
//
// # Document Format
//
// Documents serialize with the shape defined by
// [github.com/matzehuels/qscope/pkg/document]:
//
//	{
//	  "backend": "qscope",
//	  "qubits": 2,
//	  "depth": 2,
//	  "operations": 3,
//	  "operations_by_type": {"h": 1, "cx": 1, "measure": 1},
//	  "state_vector": [{"real": 0.7071, "imag": 0}, ...],
//	  "probabilities": {"00": 0.5, "11": 0.5},
//	  "measurements": 1,
//	  "has_measurements": true
//	}
//
// state_vector and probabilities encode as null for degraded analyses.
//
// # Import and Export
//
// Each format has a Write variant taking an io.Writer and an Export
// variant taking a file path:
//
//	if err := io.ExportDocument(doc, "bell_analysis.json"); err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := io.ImportDocument("bell_analysis.json")
//
// Errors are wrapped with the file path or a short stage description for
// context.
//
// # Concurrency
//
// All functions are pure writers and readers; they are safe to call
// concurrently as long as the underlying writer or file is not shared.
package io
