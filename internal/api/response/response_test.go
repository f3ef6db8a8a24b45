package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkmfoundation/site-api/internal/api/response"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	response.JSON(w, http.StatusOK, map[string]int64{"totalDonations": 1200})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"totalDonations":1200}`, w.Body.String())
}

func TestErr(t *testing.T) {
	w := httptest.NewRecorder()

	response.Err(w, http.StatusInternalServerError, "Error processing your request")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error processing your request", body["error"])
	_, hasDetails := body["details"]
	assert.False(t, hasDetails, "details must be omitted when empty")
}

func TestErrWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	details := []map[string]string{{"field": "teamName", "message": "teamName is required"}}
	response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Input validation failed", body["error"])
	assert.Len(t, body["details"], 1)
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()

	response.Text(w, http.StatusOK, "Email already registered for newsletter")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Email already registered for newsletter", w.Body.String())
}
