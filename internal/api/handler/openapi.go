package handler

import (
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/jkmfoundation/site-api/internal/api/middleware"
	"github.com/jkmfoundation/site-api/internal/api/response"
)

// OpenAPIHandler serves the API description as JSON.
type OpenAPIHandler struct {
	rawYAML  []byte
	jsonOnce sync.Once
	jsonSpec []byte
	jsonErr  error
}

// NewOpenAPIHandler creates a handler that converts the YAML document to JSON on first request.
func NewOpenAPIHandler(yamlSpec []byte) *OpenAPIHandler {
	return &OpenAPIHandler{rawYAML: yamlSpec}
}

// ServeHTTP writes the cached JSON form of the document.
func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.jsonOnce.Do(func() {
		h.jsonSpec, h.jsonErr = yaml.YAMLToJSON(h.rawYAML)
	})

	if h.jsonErr != nil {
		middleware.Logger(r.Context()).Error("failed to convert OpenAPI document to JSON", "error", h.jsonErr)
		response.Err(w, http.StatusInternalServerError, "Failed to convert OpenAPI document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.jsonSpec); err != nil {
		middleware.Logger(r.Context()).Error("failed to write OpenAPI response", "error", err)
	}
}
