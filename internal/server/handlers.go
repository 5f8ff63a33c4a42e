package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/qscope/pkg/algorithm"
	"github.com/matzehuels/qscope/pkg/buildinfo"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/gate"
	"github.com/matzehuels/qscope/pkg/pipeline"
	"github.com/matzehuels/qscope/pkg/store"
)

// maxBodyBytes caps analyze request bodies. Inline circuits are small;
// anything past this is a client mistake, not a bigger circuit.
const maxBodyBytes = 1 << 20

// analyzeRequest is the POST /analyze body. Circuits are submitted inline;
// the Source field of the embedded options is rejected so the server never
// reads files or URLs on a caller's behalf.
type analyzeRequest struct {
	pipeline.Options

	// Save archives the resulting analysis document in the report store.
	Save bool `json:"save,omitempty"`

	// Name labels the archived report. Defaults to the circuit name.
	Name string `json:"name,omitempty"`
}

// analyzeResponse is the POST /analyze success payload. Artifacts are
// base64-encoded by the standard []byte JSON encoding.
type analyzeResponse struct {
	Success     bool              `json:"success"`
	CircuitHash string            `json:"circuit_hash"`
	Report      string            `json:"report"`
	Analysis    any               `json:"analysis"`
	Cached      bool              `json:"cached"`
	Artifacts   map[string][]byte `json:"artifacts,omitempty"`
	ReportID    string            `json:"report_id,omitempty"`
}

// errorResponse is the JSON error envelope shared by all endpoints.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// handleHealth responds to health checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleAnalyze runs the full pipeline on an inline circuit.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Source != "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
			"source is not accepted over the API; submit the circuit inline"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := analyzeResponse{
		Success:     true,
		CircuitHash: result.CircuitHash,
		Report:      result.Report,
		Analysis:    result.Document,
		Cached:      result.CacheInfo.AnalysisHit,
		Artifacts:   result.Artifacts,
	}

	if req.Save {
		name := req.Name
		if name == "" {
			name = result.Circuit.Name
		}
		if name == "" {
			name = "circuit"
		}
		rep := store.NewReport(name, result.CircuitHash, result.Document)
		if err := s.store.Set(r.Context(), rep); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "archive report"))
			return
		}
		resp.ReportID = rep.ID
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// gateInfo is the wire form of a gate catalog entry.
type gateInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Qubits      int    `json:"qubits"`
	Params      int    `json:"params"`
}

// handleGates returns the gate catalog grouped by category.
func (s *Server) handleGates(w http.ResponseWriter, r *http.Request) {
	type group struct {
		Category string     `json:"category"`
		Gates    []gateInfo `json:"gates"`
	}

	groups := gate.Categories()
	out := make([]group, 0, len(groups))
	for _, g := range groups {
		infos := make([]gateInfo, 0, len(g.Gates))
		for _, d := range g.Gates {
			infos = append(infos, gateInfo{
				Name:        d.Name,
				DisplayName: d.DisplayName,
				Category:    d.Category,
				Description: d.Description,
				Qubits:      d.Qubits,
				Params:      d.Params,
			})
		}
		out = append(out, group{Category: g.Category, Gates: infos})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": out,
	})
}

// algorithmInfo is the wire form of an algorithm template.
type algorithmInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// handleAlgorithms returns the algorithm template catalog grouped by
// category.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	type group struct {
		Category  string          `json:"category"`
		Templates []algorithmInfo `json:"templates"`
	}

	groups := algorithm.Categories()
	out := make([]group, 0, len(groups))
	for _, g := range groups {
		infos := make([]algorithmInfo, 0, len(g.Templates))
		for _, t := range g.Templates {
			infos = append(infos, algorithmInfo{
				Name:        t.Name,
				DisplayName: t.DisplayName,
				Category:    t.Category,
				Description: t.Description,
				Tags:        t.Tags,
			})
		}
		out = append(out, group{Category: g.Category, Templates: infos})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": out,
	})
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

// writeError writes the JSON error envelope with a status derived from the
// structured error code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"error", err,
			"request_id", requestID(r.Context()))
	} else {
		s.log.Debug("request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"error", err,
			"request_id", requestID(r.Context()))
	}

	s.writeJSON(w, status, errorResponse{
		Success: false,
		Error:   errors.UserMessage(err),
		Code:    string(code),
	})
}

// statusForCode maps structured error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidCircuit,
		errors.ErrCodeInvalidGate, errors.ErrCodeInvalidState,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRenderer,
		errors.ErrCodeInvalidAlgorithm, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeGateNotFound,
		errors.ErrCodeAlgorithmNotFound, errors.ErrCodeFileNotFound,
		errors.ErrCodeReportNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
