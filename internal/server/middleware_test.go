package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTimeHeader(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/add", `{"a": 1, "b": 2}`)
	require.Equal(t, http.StatusOK, rr.Code)

	header := rr.Header().Get("X-Process-Time")
	require.NotEmpty(t, header)

	seconds, err := strconv.ParseFloat(header, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seconds, 0.0)
}

func TestProcessTimeHeaderOnErrors(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/divide", `{"a": 1, "b": 0}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Process-Time"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Выполняем запрос, чтобы метрики появились
	doJSON(t, srv, "POST", "/add", `{"a": 1, "b": 2}`)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "calc_api_response_time_seconds")
}

func TestJWTMiddlewareRejectsAnonymous(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/history", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
