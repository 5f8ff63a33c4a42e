package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/qscope/pkg/document"
)

// WriteDocument encodes an analysis document as JSON and writes it to w.
// The output uses two-space indentation and can be re-imported with
// [ReadDocument] for round-trip processing.
func WriteDocument(doc document.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportDocument writes an analysis document to a JSON file at path.
// This is a convenience wrapper around [WriteDocument] for file-based
// output.
func ExportDocument(doc document.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(doc, f)
}
