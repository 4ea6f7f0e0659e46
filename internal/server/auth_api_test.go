package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GGmuzem/calc-api/pkg/models"
)

func registerAndLogin(t *testing.T, srv *Server, login, password string) string {
	t.Helper()

	rr := doJSON(t, srv, "POST", "/api/register", `{"login": "`+login+`", "password": "`+password+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, srv, "POST", "/api/login", `{"login": "`+login+`", "password": "`+password+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	token := registerAndLogin(t, srv, "alice", "secret123")
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicate(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/api/register", `{"login": "bob", "password": "secret"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, srv, "POST", "/api/register", `{"login": "bob", "password": "other"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/api/register", `{"login": "", "password": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/api/register", `{"login": "carol", "password": "secret"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, srv, "POST", "/api/login", `{"login": "carol", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/api/login", `{"login": "ghost", "password": "secret"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHistoryForAuthenticatedUser(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice", "secret123")

	// Операция с токеном попадает в журнал пользователя
	req := httptest.NewRequest("POST", "/divide", bytes.NewBufferString(`{"a": 5, "b": 0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest("POST", "/add", bytes.NewBufferString(`{"a": 2, "b": 3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// Анонимная операция в журнал пользователя не попадает
	doJSON(t, srv, "POST", "/add", `{"a": 1, "b": 1}`)

	req = httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Operations []*models.OperationRecord `json:"operations"`
		Total      int                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Operations, 2)

	statuses := []string{resp.Operations[0].Status, resp.Operations[1].Status}
	assert.Contains(t, statuses, models.OperationStatusSuccess)
	assert.Contains(t, statuses, models.OperationStatusError)
}

func TestLoginSetsCookie(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, "POST", "/api/register", `{"login": "dave", "password": "secret"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, srv, "POST", "/api/login", `{"login": "dave", "password": "secret"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "jwt" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "jwt cookie not set")
}
