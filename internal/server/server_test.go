package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/pipeline"
	"github.com/matzehuels/qscope/pkg/store"
)

const bellQASM = `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
creg c[2];

h q[0];
cx q[0], q[1];
measure q -> c;
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(Config{
		Logger: logger,
		Runner: pipeline.NewRunner(nil, nil, logger),
		Store:  store.NewMemoryStore(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		buf = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
	if resp["version"] == "" {
		t.Error("version is empty")
	}
}

func TestAnalyzeInline(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/analyze",
		map[string]any{"circuit": bellQASM})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success     bool           `json:"success"`
		CircuitHash string         `json:"circuit_hash"`
		Report      string         `json:"report"`
		Analysis    map[string]any `json:"analysis"`
		Cached      bool           `json:"cached"`
		ReportID    string         `json:"report_id"`
	}
	decodeBody(t, rec, &resp)

	if !resp.Success {
		t.Error("success = false")
	}
	if len(resp.CircuitHash) != 64 {
		t.Errorf("circuit_hash length = %d, want 64", len(resp.CircuitHash))
	}
	if !strings.Contains(resp.Report, "COMPREHENSIVE QUANTUM CIRCUIT ANALYSIS REPORT") {
		t.Error("report missing header")
	}
	if got := resp.Analysis["qubits"]; got != float64(2) {
		t.Errorf("analysis qubits = %v, want 2", got)
	}
	if resp.ReportID != "" {
		t.Errorf("report_id = %q without save", resp.ReportID)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		raw        string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty options",
			body:       map[string]any{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "source rejected",
			body:       map[string]any{"source": "https://example.com/bell.qasm"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "malformed json",
			raw:        "{not json",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "unknown algorithm",
			body:       map[string]any{"algorithm": "shor"},
			wantStatus: http.StatusNotFound,
			wantCode:   "ALGORITHM_NOT_FOUND",
		},
		{
			name:       "unknown artifact format",
			body:       map[string]any{"algorithm": "qft", "formats": []string{"pdf"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
		{
			name:       "unparsable circuit",
			body:       map[string]any{"circuit": "this is not a circuit"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
	}

	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec *httptest.ResponseRecorder
			if tt.raw != "" {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze",
					strings.NewReader(tt.raw))
				rec = httptest.NewRecorder()
				srv.Handler().ServeHTTP(rec, req)
			} else {
				rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/analyze", tt.body)
			}

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var env errorEnvelope
			decodeBody(t, rec, &env)
			if env.Success {
				t.Error("success = true on error")
			}
			if env.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Code, tt.wantCode)
			}
			if env.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestAnalyzeArtifacts(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/analyze",
		map[string]any{"algorithm": "qft", "formats": []string{"qasm", "dot"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Artifacts map[string][]byte `json:"artifacts"`
	}
	decodeBody(t, rec, &resp)

	if len(resp.Artifacts) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(resp.Artifacts))
	}
	if !bytes.HasPrefix(resp.Artifacts["qasm"], []byte("OPENQASM 2.0;")) {
		t.Error("qasm artifact missing version header")
	}
	if !bytes.HasPrefix(resp.Artifacts["dot"], []byte("digraph circuit {")) {
		t.Error("dot artifact missing digraph opening")
	}
}

func TestAnalyzeSaveAndReportLifecycle(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/analyze",
		map[string]any{"algorithm": "teleport", "save": true, "name": "teleport run"})
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		CircuitHash string `json:"circuit_hash"`
		ReportID    string `json:"report_id"`
	}
	decodeBody(t, rec, &created)
	if created.ReportID == "" {
		t.Fatal("report_id is empty after save")
	}

	// Fetch it back.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/reports/"+created.ReportID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got struct {
		Report store.Report `json:"report"`
	}
	decodeBody(t, rec, &got)
	if got.Report.Name != "teleport run" {
		t.Errorf("name = %q, want %q", got.Report.Name, "teleport run")
	}
	if got.Report.CircuitHash != created.CircuitHash {
		t.Errorf("circuit_hash = %q, want %q", got.Report.CircuitHash, created.CircuitHash)
	}
	if got.Report.Document.Qubits != 3 {
		t.Errorf("document qubits = %d, want 3", got.Report.Document.Qubits)
	}

	// Listing sees it, with and without the circuit filter.
	for _, tt := range []struct {
		name string
		path string
		want int
	}{
		{"all", "/api/v1/reports", 1},
		{"matching circuit", "/api/v1/reports?circuit=" + created.CircuitHash, 1},
		{"other circuit", "/api/v1/reports?circuit=" + strings.Repeat("0", 64), 0},
		{"limit zero keeps all", "/api/v1/reports?limit=0", 1},
	} {
		t.Run("list "+tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var list struct {
				Count int `json:"count"`
			}
			decodeBody(t, rec, &list)
			if list.Count != tt.want {
				t.Errorf("count = %d, want %d", list.Count, tt.want)
			}
		})
	}

	// Delete, then the report is gone.
	rec = doJSON(t, h, http.MethodDelete, "/api/v1/reports/"+created.ReportID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/api/v1/reports/"+created.ReportID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
	var env errorEnvelope
	decodeBody(t, rec, &env)
	if env.Code != string(errors.ErrCodeReportNotFound) {
		t.Errorf("code = %q, want REPORT_NOT_FOUND", env.Code)
	}
}

func TestListReportsBadLimit(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/reports?limit=many", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env errorEnvelope
	decodeBody(t, rec, &env)
	if env.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", env.Code)
	}
}

func TestDeleteAbsentReport(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodDelete, "/api/v1/reports/no-such-id", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGatesCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/gates", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Success    bool `json:"success"`
		Categories []struct {
			Category string     `json:"category"`
			Gates    []gateInfo `json:"gates"`
		} `json:"categories"`
	}
	decodeBody(t, rec, &resp)

	if !resp.Success || len(resp.Categories) == 0 {
		t.Fatalf("success = %v, categories = %d", resp.Success, len(resp.Categories))
	}

	found := false
	for _, g := range resp.Categories {
		for _, d := range g.Gates {
			if d.Name == "h" {
				found = true
				if d.Qubits != 1 {
					t.Errorf("h qubits = %d, want 1", d.Qubits)
				}
			}
		}
	}
	if !found {
		t.Error("hadamard missing from catalog")
	}
}

func TestAlgorithmsCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/algorithms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Categories []struct {
			Category  string          `json:"category"`
			Templates []algorithmInfo `json:"templates"`
		} `json:"categories"`
	}
	decodeBody(t, rec, &resp)

	found := false
	for _, g := range resp.Categories {
		for _, tmpl := range g.Templates {
			if tmpl.Name == "teleport" {
				found = true
			}
		}
	}
	if !found {
		t.Error("teleport missing from catalog")
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("X-Request-ID = %q, want caller-supplied", got)
	}
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidInput, http.StatusBadRequest},
		{errors.ErrCodeInvalidCircuit, http.StatusBadRequest},
		{errors.ErrCodeInvalidFormat, http.StatusBadRequest},
		{errors.ErrCodeReportNotFound, http.StatusNotFound},
		{errors.ErrCodeAlgorithmNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusUnprocessableEntity},
		{errors.ErrCodeRateLimited, http.StatusTooManyRequests},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeNetwork, http.StatusBadGateway},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.Code(""), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := statusForCode(tt.code); got != tt.want {
				t.Errorf("statusForCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}
