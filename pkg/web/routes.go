package web

import "net/http"

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Page
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /select", s.handleSelectForm)
	mux.HandleFunc("POST /generate", s.handleGenerateForm)

	// JSON API
	mux.HandleFunc("GET /api/versions", s.handleListVersions)
	mux.HandleFunc("GET /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/descriptions/{version}", s.handleDescribe)
	mux.HandleFunc("GET /api/panel", s.handleGetPanel)
	mux.HandleFunc("POST /api/panel/select", s.handlePanelSelect)
	mux.HandleFunc("POST /api/panel/generate", s.handlePanelGenerate)
	mux.HandleFunc("GET /api/openapi.json", s.handleOpenAPI)
	mux.HandleFunc("/api/", s.handleAPINotFound)

	// Stream
	mux.HandleFunc("GET /ws", s.handleStream)

	// Operations
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())
}
