package services

import (
	"database/sql"
	"strings"
	"time"

	"dtf-orders-backend/internal/apperr"
	"dtf-orders-backend/internal/ident"
	"dtf-orders-backend/internal/models"
	"dtf-orders-backend/internal/supabase"
	"dtf-orders-backend/internal/whatsapp"
)

// The admin list shows at most this many orders, most recent first.
const listLimit = 100

// OrderService implements the order submission, status transition and
// retrieval workflows over the database and storage clients.
type OrderService struct {
	dbClient       *supabase.DatabaseClient
	storageClient  *supabase.StorageClient
	realtimeClient *supabase.RealtimeClient
}

func NewOrderService(
	dbClient *supabase.DatabaseClient,
	storageClient *supabase.StorageClient,
	realtimeClient *supabase.RealtimeClient,
) *OrderService {
	return &OrderService{
		dbClient:       dbClient,
		storageClient:  storageClient,
		realtimeClient: realtimeClient,
	}
}

// Submit validates a new-order request and persists the order together with
// its file record in one transaction. Returns the new order ID.
func (s *OrderService) Submit(req *models.CreateOrderRequest) (string, error) {
	if req.CustomerName == "" || req.CustomerWhatsapp == "" || req.DTFType == "" ||
		req.File == nil || req.File.Key == "" {
		return "", apperr.Validation("missing required fields")
	}
	if !models.ValidDTFType(req.DTFType) {
		return "", apperr.Validation("invalid dtf type")
	}

	now := time.Now()
	order := &models.Order{
		ID:               ident.New(),
		CustomerName:     req.CustomerName,
		CustomerWhatsapp: req.CustomerWhatsapp,
		DTFType:          req.DTFType,
		Status:           models.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.Notes != "" {
		order.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	file := &models.OrderFile{
		ID:        ident.New(),
		OrderID:   order.ID,
		FileKey:   req.File.Key,
		FileName:  req.File.Name,
		FileSize:  req.File.Size,
		MimeType:  req.File.MimeType,
		CreatedAt: now,
	}

	if err := s.dbClient.CreateOrderWithFile(order, file); err != nil {
		return "", err
	}

	_ = s.realtimeClient.PublishOrderEvent(order.ID, "order_created",
		supabase.OrderCreatedPayload(order.ID, order.DTFType))

	return order.ID, nil
}

// UpdateStatus applies a status transition. The vocabulary is the only
// constraint; any valid status may follow any other.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	if !models.ValidStatus(status) {
		return apperr.Validation("invalid status")
	}

	if err := s.dbClient.UpdateOrderStatus(orderID, status); err != nil {
		return err
	}

	_ = s.realtimeClient.PublishOrderEvent(orderID, "status_changed",
		supabase.StatusChangedPayload(orderID, status))

	return nil
}

func (s *OrderService) List() ([]models.OrderSummary, error) {
	return s.dbClient.ListOrders(listLimit)
}

// OrderDetail is an order joined with its files, plus a public preview URL
// when the first file is an image and a public base is configured.
type OrderDetail struct {
	Order      *models.Order
	Files      []models.OrderFile
	PreviewURL string
}

func (s *OrderService) GetDetail(orderID string) (*OrderDetail, error) {
	order, err := s.dbClient.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	files, err := s.dbClient.GetOrderFiles(orderID)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{Order: order, Files: files}
	if len(files) > 0 && strings.HasPrefix(files[0].MimeType, "image/") {
		detail.PreviewURL = s.storageClient.PublicURL(files[0].FileKey)
	}

	return detail, nil
}

// FileURLs holds the on-demand capability URLs for an order's file.
type FileURLs struct {
	DownloadURL string
	PreviewURL  string
	FileName    string
	MimeType    string
}

// FileURLs mints a signed download URL (and public preview URL, when
// available) for the order's file. Called lazily when the admin asks for a
// download, never pre-computed.
func (s *OrderService) FileURLs(orderID string) (*FileURLs, error) {
	file, err := s.dbClient.GetFirstOrderFile(orderID)
	if err != nil {
		return nil, err
	}

	downloadURL, err := s.storageClient.CreateDownloadURL(file.FileKey)
	if err != nil {
		return nil, err
	}

	return &FileURLs{
		DownloadURL: downloadURL,
		PreviewURL:  s.storageClient.PublicURL(file.FileKey),
		FileName:    file.FileName,
		MimeType:    file.MimeType,
	}, nil
}

// NotificationLink returns the WhatsApp message for the order's current
// status and the wa.me deep link to send it.
func (s *OrderService) NotificationLink(orderID string) (message, link string, err error) {
	order, err := s.dbClient.GetOrder(orderID)
	if err != nil {
		return "", "", err
	}

	message = whatsapp.Message(order.Status, order.CustomerName)
	return message, whatsapp.Link(order.CustomerWhatsapp, message), nil
}
