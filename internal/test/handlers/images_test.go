package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/handlers"
	"maquete-admin-backend/internal/models"
	"maquete-admin-backend/internal/storage"
)

// mockedStore backs a handler with a Store over a mocked connection so
// tests can script the rows behind a request.
func mockedStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewFromDB(db, zap.NewNop()), mock
}

func imagesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewImagesHandler(nil, nil, zap.NewNop())

	router := gin.New()
	router.GET("/api/maquetes/:id/images", h.ListImages)
	router.POST("/api/maquetes/:id/images", h.CreateImage)
	router.DELETE("/api/maquetes/:id/images/:imgId", h.DeleteImage)
	return router
}

func TestCreateImage_RequiresURLOrPublicID(t *testing.T) {
	router := imagesRouter()

	for _, body := range []string{`{}`, `{"url":"  ","public_id":""}`, `{"url":null,"public_id":null}`} {
		req, _ := http.NewRequest("POST", "/api/maquetes/3/images", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_input", errorCode(t, w.Body.Bytes()))
	}
}

func TestCreateImage_MalformedPosition(t *testing.T) {
	router := imagesRouter()

	body := `{"url":"https://img.example/m.jpg","position":"first"}`
	req, _ := http.NewRequest("POST", "/api/maquetes/3/images", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", errorCode(t, w.Body.Bytes()))
}

func TestCreateImage_ValidPayloadHitsGate(t *testing.T) {
	router := imagesRouter()

	body := `{"public_id":"maquetes/3/lateral.jpg"}`
	req, _ := http.NewRequest("POST", "/api/maquetes/3/images", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "db_unavailable", errorCode(t, w.Body.Bytes()))
}

func TestDeleteImage_InvalidIDs(t *testing.T) {
	router := imagesRouter()

	for _, path := range []string{
		"/api/maquetes/abc/images/1",
		"/api/maquetes/3/images/abc",
	} {
		req, _ := http.NewRequest("DELETE", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_input", errorCode(t, w.Body.Bytes()))
	}
}

func TestListImages_DBUnavailable(t *testing.T) {
	router := imagesRouter()

	req, _ := http.NewRequest("GET", "/api/maquetes/3/images", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListImages_ResolvesURLFromPublicID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, mock := mockedStore(t)

	storageClient, err := storage.NewClient("https://proj.supabase.co", "publishable-key", "maquete-images", zap.NewNop())
	require.NoError(t, err)

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, maquete_id, url, public_id, position, created_at FROM maquete_images").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "maquete_id", "url", "public_id", "position", "created_at"}).
			AddRow(int64(11), int64(3), nil, "maquetes/3/lateral.jpg", int64(1), time.Now()))

	h := handlers.NewImagesHandler(store, storageClient, zap.NewNop())
	router := gin.New()
	router.GET("/api/maquetes/:id/images", h.ListImages)

	req, _ := http.NewRequest("GET", "/api/maquetes/3/images", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ImagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 1)
	require.NotNil(t, resp.Images[0].URL)
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/maquete-images/maquetes/3/lateral.jpg", *resp.Images[0].URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
