package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dtf-orders-backend/internal/handlers"
)

// Content-type and required-field rejections happen before the storage
// client is touched, so no storage setup is needed here.
func uploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewUploadHandler(nil)
	router.POST("/upload", handler.CreateUploadURL)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUploadURL_MissingFields(t *testing.T) {
	w := postJSON(uploadRouter(), "/upload", `{"fileName": "photo.png"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fileName and contentType are required")
}

func TestCreateUploadURL_DisallowedContentType(t *testing.T) {
	w := postJSON(uploadRouter(), "/upload", `{"fileName": "photo.gif", "contentType": "image/gif"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only PNG and PDF files are allowed")
}

func TestCreateUploadURL_JPEGRejected(t *testing.T) {
	w := postJSON(uploadRouter(), "/upload", `{"fileName": "photo.jpg", "contentType": "image/jpeg"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
