package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/qscope/pkg/document"
)

// ReadDocument decodes a JSON analysis document from r.
//
// The input must carry the document wire shape (see the package
// documentation). ReadDocument validates only the JSON structure; use
// [document.Document.ToRecord] to revalidate the analysis fields when the
// data comes from an untrusted source.
//
// ReadDocument does not close r.
func ReadDocument(r io.Reader) (document.Document, error) {
	var doc document.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return document.Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ImportDocument reads a JSON file at path and returns the decoded
// analysis document.
//
// ImportDocument opens the file, decodes it using [ReadDocument], and
// closes the file. Errors wrap the underlying cause with the file path
// for context.
func ImportDocument(path string) (document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return document.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}
