package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactFileName(t *testing.T) {
	tests := []struct {
		base   string
		format string
		want   string
	}{
		{"bell", "qasm", "bell.qasm"},
		{"bell", "svg", "bell.svg"},
		{"bell", "png", "bell.png"},
		{"bell", "dot", "bell.dot"},
		{"bell", "js", "bell.js"},
		{"bell", "latex", "bell.tex"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := artifactFileName(tt.base, tt.format); got != tt.want {
				t.Errorf("artifactFileName(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
			}
		})
	}
}

func TestExportBaseName(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"file path", "circuits/bell.qasm", "bell"},
		{"bare file", "ghz.toml", "ghz"},
		{"algorithm", "teleport", "teleport"},
		{"stdin", "-", "circuit"},
		{"url", "https://example.com/circuits/bell.qasm", "bell"},
		{"url with query", "https://example.com/bell.qasm?token=abc", "bell"},
		{"extension only", ".qasm", "circuit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exportBaseName(tt.arg); got != tt.want {
				t.Errorf("exportBaseName(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestExportAnalysisFileName(t *testing.T) {
	if got := exportAnalysisFileName("bell", analysisFormatText); got != "bell_analysis.txt" {
		t.Errorf("text format = %q", got)
	}
	if got := exportAnalysisFileName("bell", analysisFormatJSON); got != "bell_analysis.json" {
		t.Errorf("json format = %q", got)
	}
	if got := exportAnalysisFileName("bell", analysisFormatReport); got != "bell_analysis.txt" {
		t.Errorf("report format = %q", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	artifacts := map[string][]byte{
		"qasm": []byte("OPENQASM 2.0;\n"),
		"svg":  []byte("<svg></svg>"),
	}

	paths, err := writeArtifacts(dir, "bell", []string{"qasm", "svg", "png"}, artifacts)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	// png was requested but not rendered, so only two files appear, in
	// format order.
	want := []string{
		filepath.Join(dir, "bell.qasm"),
		filepath.Join(dir, "bell.svg"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "bell.qasm"))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(data) != "OPENQASM 2.0;\n" {
		t.Errorf("exported content = %q", data)
	}
}

func TestWriteArtifactsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	if _, err := writeArtifacts(dir, "c", []string{"json"}, map[string][]byte{"json": []byte("{}")}); err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.json")); err != nil {
		t.Errorf("expected file in created directory: %v", err)
	}
}
