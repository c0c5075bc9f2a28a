package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dtf-orders-backend/internal/models"
	"dtf-orders-backend/internal/supabase"
)

// File types customers may upload. Everything else is rejected before a
// capability URL is ever issued.
var allowedContentTypes = map[string]bool{
	"image/png":       true,
	"application/pdf": true,
}

type UploadHandler struct {
	storageClient *supabase.StorageClient
}

func NewUploadHandler(storageClient *supabase.StorageClient) *UploadHandler {
	return &UploadHandler{
		storageClient: storageClient,
	}
}

// CreateUploadURL godoc
// @Summary     Issue an upload capability URL
// @Description Generates a storage key for the file and a time-limited signed
// @Description URL the client PUTs the file bytes to. Only PNG and PDF
// @Description uploads are accepted.
// @Tags        upload
// @Accept      json
// @Produce     json
// @Param       request body models.UploadURLRequest true "File name and content type"
// @Success     200 {object} models.UploadURLResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /upload [post]
func (h *UploadHandler) CreateUploadURL(c *gin.Context) {
	var req models.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FileName == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "fileName and contentType are required"})
		return
	}

	if !allowedContentTypes[req.ContentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "only PNG and PDF files are allowed"})
		return
	}

	key := h.storageClient.GenerateKey(req.FileName)
	uploadURL, err := h.storageClient.CreateUploadURL(key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadURLResponse{
		UploadURL: uploadURL,
		Key:       key,
		ExpiresIn: int(supabase.UploadURLTTL.Seconds()),
	})
}
