package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtf-orders-backend/internal/apperr"
	"dtf-orders-backend/internal/models"
	"dtf-orders-backend/internal/services"
)

// Validation happens before any store access, so a service with nil clients
// is enough to exercise the rejection paths.
func newValidationOnlyService() *services.OrderService {
	return services.NewOrderService(nil, nil, nil)
}

func validRequest() *models.CreateOrderRequest {
	return &models.CreateOrderRequest{
		CustomerName:     "Ana",
		CustomerWhatsapp: "+54 9 11 1234-5678",
		DTFType:          models.DTFTypeTextil,
		File: &models.FileDescriptor{
			Key:      "orders/1700000000000-abc123.png",
			Name:     "photo.png",
			Size:     2048,
			MimeType: "image/png",
		},
	}
}

func assertValidation(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	var validationErr *apperr.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, reason, validationErr.Reason)
}

func TestSubmit_MissingCustomerName(t *testing.T) {
	req := validRequest()
	req.CustomerName = ""

	_, err := newValidationOnlyService().Submit(req)
	assertValidation(t, err, "missing required fields")
}

func TestSubmit_MissingWhatsapp(t *testing.T) {
	req := validRequest()
	req.CustomerWhatsapp = ""

	_, err := newValidationOnlyService().Submit(req)
	assertValidation(t, err, "missing required fields")
}

func TestSubmit_MissingFile(t *testing.T) {
	req := validRequest()
	req.File = nil

	_, err := newValidationOnlyService().Submit(req)
	assertValidation(t, err, "missing required fields")
}

func TestSubmit_MissingFileKey(t *testing.T) {
	req := validRequest()
	req.File.Key = ""

	_, err := newValidationOnlyService().Submit(req)
	assertValidation(t, err, "missing required fields")
}

func TestSubmit_InvalidDTFType(t *testing.T) {
	req := validRequest()
	req.DTFType = "vinyl"

	_, err := newValidationOnlyService().Submit(req)
	assertValidation(t, err, "invalid dtf type")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	err := newValidationOnlyService().UpdateStatus("abc123def456", "archived")
	assertValidation(t, err, "invalid status")
}

func TestUpdateStatus_EmptyStatus(t *testing.T) {
	err := newValidationOnlyService().UpdateStatus("abc123def456", "")
	assertValidation(t, err, "invalid status")
}

func TestValidStatusVocabulary(t *testing.T) {
	for _, status := range []string{"pending", "processing", "ready", "rejected"} {
		assert.True(t, models.ValidStatus(status), status)
	}
	for _, status := range []string{"archived", "done", "PENDING", ""} {
		assert.False(t, models.ValidStatus(status), status)
	}
}
