package web

import (
	"errors"
	"net/http"

	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/httputil"
	"github.com/shamikhz/UUID-Generator/pkg/metrics"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
)

// VersionInfo describes one selectable version.
type VersionInfo struct {
	Version     generator.Version `json:"version"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
}

// BatchResponse is returned by GET /api/generate.
type BatchResponse struct {
	Version     generator.Version `json:"version"`
	Identifiers []string          `json:"identifiers"`
}

// DescriptionResponse is returned by GET /api/descriptions/{version}.
type DescriptionResponse struct {
	Version     generator.Version `json:"version"`
	Description string            `json:"description"`
}

// SelectRequest is the body of POST /api/panel/select.
type SelectRequest struct {
	Version string `json:"version"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  int    `json:"uptime"`
	Version string `json:"version"`
}

func (s *Server) handleListVersions(w http.ResponseWriter, _ *http.Request) {
	versions := generator.Versions()
	out := make([]VersionInfo, 0, len(versions))
	for _, v := range versions {
		out = append(out, VersionInfo{Version: v, Label: v.Label(), Description: generator.Describe(v)})
	}
	httputil.WriteOK(w, out)
}

// handleGenerate is stateless. A missing version falls back to plain v4
// tokens, like the panel's default branch.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	v := generator.Unset
	if raw := r.URL.Query().Get("version"); raw != "" {
		parsed, err := generator.ParseVersion(raw)
		if err != nil {
			httputil.WriteBadRequest(w, httputil.CodeInvalidVersion, err.Error())
			return
		}
		v = parsed
	}

	batch := s.gen.Generate(v)
	s.metrics.ObserveBatch(string(v), metrics.TriggerAPI, len(batch))
	httputil.WriteOK(w, BatchResponse{Version: v, Identifiers: batch})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("version")
	v := generator.Unset
	if raw != "unset" {
		parsed, err := generator.ParseVersion(raw)
		if err != nil {
			httputil.WriteBadRequest(w, httputil.CodeInvalidVersion, err.Error())
			return
		}
		v = parsed
	}
	httputil.WriteOK(w, DescriptionResponse{Version: v, Description: generator.Describe(v)})
}

func (s *Server) handleGetPanel(w http.ResponseWriter, r *http.Request) {
	st, err := s.withPanel(w, r, func(*panel.Panel) error { return nil })
	if err != nil {
		s.writePanelError(w, err)
		return
	}
	httputil.WriteOK(w, st)
}

func (s *Server) handlePanelSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteBadRequest(w, httputil.CodeInvalidJSON, err.Error())
		return
	}
	v, err := generator.ParseVersion(req.Version)
	if err != nil {
		httputil.WriteBadRequest(w, httputil.CodeInvalidVersion, err.Error())
		return
	}

	st, err := s.withPanel(w, r, func(p *panel.Panel) error { return p.Select(v) })
	if err != nil {
		s.writePanelError(w, err)
		return
	}
	httputil.WriteOK(w, st)
}

func (s *Server) handlePanelGenerate(w http.ResponseWriter, r *http.Request) {
	st, err := s.withPanel(w, r, func(p *panel.Panel) error { return p.Generate() })
	if err != nil {
		s.writePanelError(w, err)
		return
	}
	httputil.WriteOK(w, st)
}

func (s *Server) writePanelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, panel.ErrNoSelection):
		httputil.WriteConflict(w, httputil.CodeNoSelection, err.Error())
	case errors.Is(err, generator.ErrUnknownVersion):
		httputil.WriteBadRequest(w, httputil.CodeInvalidVersion, err.Error())
	default:
		s.log.Error("panel operation failed", "error", err)
		httputil.WriteInternalError(w, httputil.CodeInternal, "internal error")
	}
}

// handleAPINotFound answers unknown API paths in the API's error format.
func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	httputil.WriteNotFound(w, httputil.CodeNotFound, "no API route for "+r.Method+" "+r.URL.Path)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, HealthResponse{Status: "ok", Uptime: s.Uptime(), Version: s.version})
}
