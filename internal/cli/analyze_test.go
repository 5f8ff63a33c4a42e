package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qscope/pkg/pipeline"
)

func quietResult(t *testing.T, opts pipeline.Options) *pipeline.Result {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, nil, logger)
	defer runner.Close()

	opts.Logger = logger
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	return result
}

func TestAnalysisContentText(t *testing.T) {
	result := quietResult(t, pipeline.Options{Algorithm: "grover"})

	content, err := analysisContent(result, analysisFormatText, "")
	if err != nil {
		t.Fatalf("analysisContent() error: %v", err)
	}
	if !strings.Contains(content, "Qubits:") {
		t.Errorf("text content missing qubit summary:\n%s", content)
	}

	labeled, err := analysisContent(result, analysisFormatText, "Analysis")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(labeled, "Analysis") {
		t.Errorf("labeled content should start with the label:\n%s", labeled)
	}
}

func TestAnalysisContentJSON(t *testing.T) {
	result := quietResult(t, pipeline.Options{Algorithm: "grover"})

	content, err := analysisContent(result, analysisFormatJSON, "")
	if err != nil {
		t.Fatalf("analysisContent() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		t.Fatalf("json content does not parse: %v", err)
	}
	if _, ok := doc["qubits"]; !ok {
		t.Error("json content missing qubits field")
	}
}

func TestAnalysisContentReport(t *testing.T) {
	result := quietResult(t, pipeline.Options{Algorithm: "grover"})

	content, err := analysisContent(result, analysisFormatReport, "")
	if err != nil {
		t.Fatalf("analysisContent() error: %v", err)
	}
	if !strings.Contains(content, "COMPREHENSIVE QUANTUM CIRCUIT ANALYSIS REPORT") {
		t.Error("report content missing report header")
	}
}

func TestAnalysisFileName(t *testing.T) {
	if got := analysisFileName(analysisFormatJSON); got != "circuit_analysis.json" {
		t.Errorf("json file name = %q", got)
	}
	for _, format := range []string{analysisFormatText, analysisFormatReport} {
		if got := analysisFileName(format); got != "circuit_analysis.txt" {
			t.Errorf("analysisFileName(%q) = %q, want circuit_analysis.txt", format, got)
		}
	}
}

func TestValidateAnalysisFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "report"} {
		if err := validateAnalysisFormat(valid); err != nil {
			t.Errorf("validateAnalysisFormat(%q) = %v, want nil", valid, err)
		}
	}
	if err := validateAnalysisFormat("yaml"); err == nil {
		t.Error("expected error for unknown analysis format")
	}
}

func TestWriteTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.txt")
	if err := writeTextFile(path, "no trailing newline"); err != nil {
		t.Fatalf("writeTextFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "no trailing newline\n" {
		t.Errorf("content = %q, want trailing newline appended", data)
	}
}
