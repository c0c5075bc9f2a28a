package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dtf-orders-backend/internal/apperr"
	"dtf-orders-backend/internal/models"
)

// respondError maps a workflow error onto its HTTP status. 4xx responses
// carry the specific reason; 5xx responses carry a generic message, with the
// detail going to the server log only.
func respondError(c *gin.Context, err error) {
	status := apperr.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, models.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
