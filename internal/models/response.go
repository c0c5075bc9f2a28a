package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

type OrderResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerWhatsapp string    `json:"customer_whatsapp"`
	DTFType          string    `json:"dtf_type"`
	Notes            string    `json:"notes,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrderSummaryResponse struct {
	OrderResponse
	FileCount int `json:"file_count"`
}

type OrderListResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
}

type FileResponse struct {
	ID        string    `json:"id"`
	FileKey   string    `json:"file_key"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderDetailResponse struct {
	Order      OrderResponse  `json:"order"`
	Files      []FileResponse `json:"files"`
	PreviewURL string         `json:"preview_url,omitempty"`
}

type FileURLsResponse struct {
	DownloadURL string `json:"download_url"`
	PreviewURL  string `json:"preview_url,omitempty"`
	FileName    string `json:"file_name"`
	MimeType    string `json:"mime_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type WhatsAppLinkResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

type UpdateStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
