package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkmfoundation/site-api/internal/api/handler"
)

func TestOpenAPIHandler_ConvertsYAML(t *testing.T) {
	h := handler.NewOpenAPIHandler([]byte("openapi: 3.0.3\ninfo:\n  title: test\n"))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"openapi":"3.0.3","info":{"title":"test"}}`, w.Body.String())
	}
}

func TestOpenAPIHandler_InvalidYAML(t *testing.T) {
	h := handler.NewOpenAPIHandler([]byte("key: [unclosed"))
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
