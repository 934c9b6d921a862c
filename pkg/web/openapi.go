package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shamikhz/UUID-Generator/pkg/httputil"
)

// loadOpenAPI parses and validates the embedded API description.
func loadOpenAPI() (*openapi3.T, error) {
	data, err := assets.ReadFile("assets/openapi.yaml")
	if err != nil {
		return nil, fmt.Errorf("read OpenAPI document: %w", err)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, s.openapi)
}
