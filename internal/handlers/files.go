package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dtf-orders-backend/internal/models"
	"dtf-orders-backend/internal/services"
	"dtf-orders-backend/internal/supabase"
)

type FilesHandler struct {
	orderService *services.OrderService
}

func NewFilesHandler(orderService *services.OrderService) *FilesHandler {
	return &FilesHandler{
		orderService: orderService,
	}
}

// GetFileURLs godoc
// @Summary     Get download and preview URLs for an order's file
// @Description Mints a signed download URL, valid for one hour, plus the
// @Description stable public preview URL when the bucket has one configured.
// @Tags        files
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.FileURLsResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/file [get]
func (h *FilesHandler) GetFileURLs(c *gin.Context) {
	urls, err := h.orderService.FileURLs(c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FileURLsResponse{
		DownloadURL: urls.DownloadURL,
		PreviewURL:  urls.PreviewURL,
		FileName:    urls.FileName,
		MimeType:    urls.MimeType,
		ExpiresIn:   int(supabase.DownloadURLTTL.Seconds()),
	})
}
