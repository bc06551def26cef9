package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeDuplicateRequest, http.StatusConflict},
		{ErrCodeEmptyCart, http.StatusBadRequest},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestGetHTTPStatus_ValidationPrefix(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_QUANTITY"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_CATEGORY"))
}

func TestGetHTTPStatus_UnknownCodeIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestEnvelope_MergesPayload(t *testing.T) {
	body := Envelope("Item added to cart", map[string]interface{}{"cart": "payload"})

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item added to cart", body["message"])
	assert.Equal(t, "payload", body["cart"])
}

func TestEnvelope_PayloadCannotShadowEnvelopeFields(t *testing.T) {
	body := Envelope("ok", map[string]interface{}{"success": false, "message": "overridden"})

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
}

func TestErrorEnvelope(t *testing.T) {
	body := ErrorEnvelope(ErrCodeNotFound, "Product not found")

	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["message"])
	assert.Equal(t, ErrCodeNotFound, body["code"])
}
