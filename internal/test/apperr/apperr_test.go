package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"dtf-orders-backend/internal/apperr"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(apperr.Validation("invalid status")))
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(apperr.NotFound("order")))
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(apperr.Configuration("storage credentials missing")))
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(apperr.Upstream("query order", errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(errors.New("plain")))
}

func TestStatusCode_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", apperr.NotFound("order"))
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(wrapped))
}

func TestUpstream_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Upstream("query order", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "query order")
}

func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "order not found", apperr.NotFound("order").Error())
	assert.Equal(t, "file not found", apperr.NotFound("file").Error())
}
