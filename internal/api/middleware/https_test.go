package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkmfoundation/site-api/internal/api/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireHTTPS(t *testing.T) {
	tests := []struct {
		name         string
		enabled      bool
		proto        string
		wantStatus   int
		wantLocation string
	}{
		{name: "disabled passes plain http", enabled: false, proto: "http", wantStatus: http.StatusOK},
		{name: "disabled passes missing header", enabled: false, proto: "", wantStatus: http.StatusOK},
		{name: "enabled passes https", enabled: true, proto: "https", wantStatus: http.StatusOK},
		{
			name: "enabled redirects http", enabled: true, proto: "http",
			wantStatus: http.StatusFound, wantLocation: "https://foundation.example.org/submit-form?x=1",
		},
		{
			name: "enabled redirects missing header", enabled: true, proto: "",
			wantStatus: http.StatusFound, wantLocation: "https://foundation.example.org/submit-form?x=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireHTTPS(tt.enabled)(okHandler())
			req := httptest.NewRequest(http.MethodGet, "http://foundation.example.org/submit-form?x=1", nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}
