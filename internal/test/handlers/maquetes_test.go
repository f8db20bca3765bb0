package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"maquete-admin-backend/internal/handlers"
	"maquete-admin-backend/internal/models"
)

// maquetesRouter wires the maquete routes against a nil store, which
// is the unconfigured-database state: validation must still run, and
// anything that would touch the store must answer 503.
func maquetesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewMaquetesHandler(nil, nil, zap.NewNop())

	router := gin.New()
	router.GET("/api/maquetes", h.ListMaquetes)
	router.POST("/api/maquetes", h.CreateMaquete)
	router.GET("/api/maquetes/:id", h.GetMaquete)
	router.PUT("/api/maquetes/:id", h.UpdateMaquete)
	router.DELETE("/api/maquetes/:id", h.DeleteMaquete)
	return router
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestListMaquetes_DBUnavailable(t *testing.T) {
	router := maquetesRouter()

	req, _ := http.NewRequest("GET", "/api/maquetes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unavailable", errorCode(t, w.Body.Bytes()))
	assert.Contains(t, w.Body.String(), "missing_config")
}

func TestCreateMaquete_ValidationBeforeGate(t *testing.T) {
	router := maquetesRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing nome", `{"escala":"1:87"}`},
		{"blank nome", `{"nome":"   "}`},
		{"estado too short", `{"nome":"Estação Central","estado":"S"}`},
		{"estado too long", `{"nome":"Estação Central","estado":"SPX"}`},
		{"estado not alphabetic", `{"nome":"Estação Central","estado":"S1"}`},
		{"mes too high", `{"nome":"Estação Central","mes":13}`},
		{"mes too low", `{"nome":"Estação Central","mes":0}`},
		{"ano too low", `{"nome":"Estação Central","ano":1899}`},
		{"ano too high", `{"nome":"Estação Central","ano":2101}`},
		{"dimension not integer", `{"nome":"Estação Central","largura_cm":"abc"}`},
		{"peso not numeric", `{"nome":"Estação Central","peso":"pesado"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("POST", "/api/maquetes", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// 400, not 503: the payload is rejected before the store gate.
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_input", errorCode(t, w.Body.Bytes()))
		})
	}
}

func TestCreateMaquete_ValidPayloadHitsGate(t *testing.T) {
	router := maquetesRouter()

	body := `{"nome":"Estação Central","estado":"sp","ano":2024,"mes":12}`
	req, _ := http.NewRequest("POST", "/api/maquetes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unavailable", errorCode(t, w.Body.Bytes()))
}

func TestUpdateMaquete_NoFields(t *testing.T) {
	router := maquetesRouter()

	for _, body := range []string{`{}`, `{"categoria":"x","tamanho":40}`} {
		req, _ := http.NewRequest("PUT", "/api/maquetes/7", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no_fields", errorCode(t, w.Body.Bytes()))
	}
}

func TestUpdateMaquete_InfoOnlyCountsAsField(t *testing.T) {
	router := maquetesRouter()

	// info present (even empty) is a real update, so the request makes
	// it past no_fields and stops at the store gate.
	req, _ := http.NewRequest("PUT", "/api/maquetes/7", strings.NewReader(`{"info":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unavailable", errorCode(t, w.Body.Bytes()))
}

func TestMaquetes_InvalidIDParam(t *testing.T) {
	router := maquetesRouter()

	for _, path := range []string{"/api/maquetes/abc", "/api/maquetes/0", "/api/maquetes/-3"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_input", errorCode(t, w.Body.Bytes()))
	}
}

func TestDeleteMaquete_DBUnavailable(t *testing.T) {
	router := maquetesRouter()

	req, _ := http.NewRequest("DELETE", "/api/maquetes/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unavailable", errorCode(t, w.Body.Bytes()))
}

// Deletes are idempotent, so an id that never existed (including 0)
// answers 204 rather than 400.
func TestDeleteMaquete_ZeroIDIsNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, mock := mockedStore(t)

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT imagem_principal_public_id").
		WithArgs(int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"public_id"}))
	mock.ExpectExec("DELETE FROM maquetes").
		WithArgs(int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := handlers.NewMaquetesHandler(store, nil, zap.NewNop())
	router := gin.New()
	router.DELETE("/api/maquetes/:id", h.DeleteMaquete)

	req, _ := http.NewRequest("DELETE", "/api/maquetes/0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
