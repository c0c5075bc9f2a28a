package models

import (
	"database/sql"
	"time"
)

// DTF process variants selectable at order time.
const (
	DTFTypeTextil = "textil"
	DTFTypeUV     = "uv"
)

// Order statuses. Any status may follow any other; the vocabulary itself is
// the only constraint.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusRejected   = "rejected"
)

// ValidDTFType reports whether t is one of the known process variants.
func ValidDTFType(t string) bool {
	return t == DTFTypeTextil || t == DTFTypeUV
}

// ValidStatus reports whether s is in the fixed status vocabulary.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusRejected:
		return true
	}
	return false
}

type Order struct {
	ID               string
	CustomerName     string
	CustomerWhatsapp string
	DTFType          string
	Notes            sql.NullString
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderFile struct {
	ID        string
	OrderID   string
	FileKey   string
	FileName  string
	FileSize  int64
	MimeType  string
	CreatedAt time.Time
}

// OrderSummary is an Order plus its file count, as returned by the admin list.
type OrderSummary struct {
	Order
	FileCount int
}
