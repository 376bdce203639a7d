package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rifa-online/rifa-api/internal/api"
	"github.com/rifa-online/rifa-api/internal/config"
	"github.com/rifa-online/rifa-api/internal/domain"
	"github.com/rifa-online/rifa-api/internal/repository/dao"
)

const adminSenha = "super-secret"

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "8080",
			BaseURL:            "localhost:8080",
			AllowedCORSDomains: []string{"http://localhost:5173"},
			AdminSenha:         adminSenha,
		},
		Gin:      &config.GinConfig{Mode: gin.TestMode},
		Postgres: &config.PostgresConfig{},
	}

	return api.NewServer(conf, db)
}

func performRequest(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func listReservations(t *testing.T, router http.Handler) []domain.Reservation {
	t.Helper()

	w := performRequest(router, http.MethodGet, "/reservas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reservations []domain.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reservations))

	return reservations
}

func TestHandleLogin(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/admin/login", `{"senha":"super-secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"autorizado":true}`, w.Body.String())

	w = performRequest(s.Router, http.MethodPost, "/admin/login", `{"senha":"wrong"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"autorizado":false}`, w.Body.String())

	// The secret may also arrive in the Authorization header.
	w = performRequest(s.Router, http.MethodPost, "/admin/login", "", map[string]string{
		"Authorization": adminSenha,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"autorizado":true}`, w.Body.String())
}

func TestHandleVerify(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodGet, "/api/verificar-admin", "", map[string]string{
		"Authorization": adminSenha,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/api/verificar-admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/api/verificar-admin", "", map[string]string{
		"Authorization": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSettings(t *testing.T) {
	s := newTestServer(t)

	// Empty store renders an empty mapping.
	w := performRequest(s.Router, http.MethodGet, "/configuracoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	// Updating without the admin secret is rejected and stores nothing.
	w = performRequest(s.Router, http.MethodPut, "/configuracoes", `{"rifa":"10"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/configuracoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	// Secret in the Authorization header.
	w = performRequest(s.Router, http.MethodPut, "/configuracoes", `{"rifa":"10"}`, map[string]string{
		"Authorization": adminSenha,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/configuracoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rifa":"10"}`, w.Body.String())

	// Secret in the body; updating premio leaves rifa untouched.
	w = performRequest(s.Router, http.MethodPut, "/configuracoes", `{"premio":"Bike","senha":"super-secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/configuracoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rifa":"10","premio":"Bike"}`, w.Body.String())

	// Overwriting in place.
	w = performRequest(s.Router, http.MethodPut, "/configuracoes", `{"rifa":"20"}`, map[string]string{
		"Authorization": adminSenha,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(s.Router, http.MethodGet, "/configuracoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rifa":"20","premio":"Bike"}`, w.Body.String())
}

func TestCreateAndListReservations(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7","8"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	reservations := listReservations(t, s.Router)
	require.Len(t, reservations, 2)
	assert.Equal(t, domain.Reservation{Numero: "7", Nome: "Ana"}, reservations[0])
	assert.Equal(t, domain.Reservation{Numero: "8", Nome: "Ana"}, reservations[1])
}

func TestCreateReservation_Validation(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"","numeros":["7"]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, listReservations(t, s.Router))
}

func TestCreateReservation_Conflict(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(s.Router, http.MethodPut, "/reservas/7/pago", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A batch with one colliding numero creates nothing at all.
	w = performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Bruno","numeros":["8","7"]}`, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	reservations := listReservations(t, s.Router)
	require.Len(t, reservations, 1)
	assert.Equal(t, domain.Reservation{Numero: "7", Nome: "Ana", Pago: true}, reservations[0])
}

func TestSetPago(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(s.Router, http.MethodPut, "/reservas/7/pago", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	reservations := listReservations(t, s.Router)
	require.Len(t, reservations, 1)
	assert.True(t, reservations[0].Pago)

	w = performRequest(s.Router, http.MethodPut, "/reservas/7/nao-pago", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	reservations = listReservations(t, s.Router)
	require.Len(t, reservations, 1)
	assert.False(t, reservations[0].Pago)
}

func TestSetPago_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPut, "/reservas/99/pago", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(s.Router, http.MethodPut, "/reservas/99/nao-pago", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReservation(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong secret: rejected, nothing deleted.
	w = performRequest(s.Router, http.MethodDelete, "/reservas/7", `{"senha":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Len(t, listReservations(t, s.Router), 1)

	w = performRequest(s.Router, http.MethodDelete, "/reservas/7", "", map[string]string{
		"Authorization": adminSenha,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listReservations(t, s.Router))

	w = performRequest(s.Router, http.MethodDelete, "/reservas/7", "", map[string]string{
		"Authorization": adminSenha,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearReservations(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7","8"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Secret in the body field works for destructive routes too.
	w = performRequest(s.Router, http.MethodDelete, "/reservas", `{"senha":"super-secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listReservations(t, s.Router))

	// Clearing an empty raffle still succeeds.
	w = performRequest(s.Router, http.MethodDelete, "/reservas", "", map[string]string{
		"Authorization": adminSenha,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listReservations(t, s.Router))
}

func TestClearReservations_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodPost, "/reservas", `{"nome":"Ana","numeros":["7"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(s.Router, http.MethodDelete, "/reservas", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, listReservations(t, s.Router), 1)
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(s.Router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
