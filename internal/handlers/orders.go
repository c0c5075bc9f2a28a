package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dtf-orders-backend/internal/models"
	"dtf-orders-backend/internal/services"
)

type OrdersHandler struct {
	orderService *services.OrderService
}

func NewOrdersHandler(orderService *services.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary     Submit a new order
// @Description Creates an order from customer details and a file descriptor
// @Description obtained from a prior upload. The order and its file record
// @Description are written atomically with status "pending".
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order submission"
// @Success     201 {object} models.CreateOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	orderID, err := h.orderService.Submit(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateOrderResponse{OrderID: orderID})
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns the most recent orders with their file counts.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.OrderSummaryResponse, len(orders))
	for i, order := range orders {
		summaries[i] = models.OrderSummaryResponse{
			OrderResponse: orderResponse(&order.Order),
			FileCount:     order.FileCount,
		}
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Orders: summaries})
}

// GetOrder godoc
// @Summary     Get order detail
// @Description Returns an order with its files. When the first file is an
// @Description image and the bucket has a public base configured, a preview
// @Description URL is included.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.OrderDetailResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	detail, err := h.orderService.GetDetail(c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	files := make([]models.FileResponse, len(detail.Files))
	for i, file := range detail.Files {
		files[i] = models.FileResponse{
			ID:        file.ID,
			FileKey:   file.FileKey,
			FileName:  file.FileName,
			FileSize:  file.FileSize,
			MimeType:  file.MimeType,
			CreatedAt: file.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, models.OrderDetailResponse{
		Order:      orderResponse(detail.Order),
		Files:      files,
		PreviewURL: detail.PreviewURL,
	})
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Applies a status transition. Any of pending, processing,
// @Description ready or rejected may follow any other.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Param       request body models.UpdateStatusRequest true "Target status"
// @Success     200 {object} models.UpdateStatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id} [patch]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status is required"})
		return
	}

	orderID := c.Param("order_id")
	if err := h.orderService.UpdateStatus(orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateStatusResponse{
		OrderID: orderID,
		Status:  req.Status,
	})
}

// GetWhatsAppLink godoc
// @Summary     Get the customer notification link
// @Description Returns the canned WhatsApp message for the order's current
// @Description status and the wa.me deep link carrying it. Opening the link
// @Description is entirely client-side; the server never sends anything.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.WhatsAppLinkResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/whatsapp [get]
func (h *OrdersHandler) GetWhatsAppLink(c *gin.Context) {
	message, link, err := h.orderService.NotificationLink(c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WhatsAppLinkResponse{
		Message: message,
		Link:    link,
	})
}

func orderResponse(order *models.Order) models.OrderResponse {
	resp := models.OrderResponse{
		ID:               order.ID,
		CustomerName:     order.CustomerName,
		CustomerWhatsapp: order.CustomerWhatsapp,
		DTFType:          order.DTFType,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.Notes.Valid {
		resp.Notes = order.Notes.String
	}
	return resp
}
