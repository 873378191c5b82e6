package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("GTW_001", "No ledger session established", http.StatusServiceUnavailable),
			expected: "[GTW_001] No ledger session established",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("CHAIN_001", "Ledger call failed", http.StatusBadGateway, fmt.Errorf("execution reverted")),
			expected: "[CHAIN_001] Ledger call failed: execution reverted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("GTW_002", "test", http.StatusForbidden)
	assert.Nil(t, appErr.Unwrap())
}

func TestGatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"GatewayUnavailable", ErrGatewayUnavailable(), "GTW_001", 503},
		{"PermissionDenied", ErrPermissionDenied("create campaigns"), "GTW_002", 403},
		{"WrongNetwork", ErrWrongNetwork(1, 71), "GTW_003", 409},
		{"NotFound", ErrNotFound("Campaign"), "GTW_004", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestChainErrors(t *testing.T) {
	inner := fmt.Errorf("execution reverted: not admin")
	err := ErrRemoteCallFailed("createCampaign", inner)
	assert.Equal(t, "CHAIN_001", err.Code)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Message, "createCampaign")

	missing := ErrContractMissing("0xD09bf13AaFba0Cb3e0a0d5556eF75C4Bd69fe340")
	assert.Equal(t, "CHAIN_002", missing.Code)
}

func TestSchemaLoadFailed(t *testing.T) {
	inner := fmt.Errorf("no ABI array found")
	err := ErrSchemaLoadFailed(inner)
	assert.Equal(t, "SCHEMA_001", err.Code)
	assert.True(t, errors.Is(err, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestPermissionDeniedMessage(t *testing.T) {
	err := ErrPermissionDenied("grant admin rights")
	assert.Contains(t, err.Message, "grant admin rights")
}
