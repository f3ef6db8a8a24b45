package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkmfoundation/site-api/internal/api/handler"
)

type mockTotaler struct {
	total int64
	err   error
}

func (m *mockTotaler) Total(_ context.Context) (int64, error) {
	return m.total, m.err
}

func TestDonationTotal_Success(t *testing.T) {
	t.Parallel()

	h := handler.NewDonationHandler(&mockTotaler{total: 125000})

	req, w := makeRequest(http.MethodGet, "/api/donations/total", nil)
	h.Total(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalDonations":125000}`, w.Body.String())
}

func TestDonationTotal_ProviderError(t *testing.T) {
	t.Parallel()

	h := handler.NewDonationHandler(&mockTotaler{err: errors.New("listing charges: invalid api key")})

	req, w := makeRequest(http.MethodGet, "/api/donations/total", nil)
	h.Total(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "listing charges: invalid api key", parseBody(t, w)["error"])
}
