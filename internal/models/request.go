package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UploadURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// FileDescriptor is the client-supplied metadata for a file already uploaded
// to the blob store. The key is trusted as-is; nothing re-derives size or
// MIME type server-side.
type FileDescriptor struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

type CreateOrderRequest struct {
	CustomerName     string          `json:"customerName"`
	CustomerWhatsapp string          `json:"customerWhatsapp"`
	DTFType          string          `json:"dtfType"`
	Notes            string          `json:"notes,omitempty"`
	File             *FileDescriptor `json:"file"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
