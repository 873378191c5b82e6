package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"charity-ledger-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCtx() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := setupCtx()
	OK(c, gin.H{"total_campaigns": 2})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestAccepted(t *testing.T) {
	c, w := setupCtx()
	Accepted(c, gin.H{"tx_hash": "0xabc"})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestError_AppError(t *testing.T) {
	c, w := setupCtx()
	Error(c, apperror.ErrGatewayUnavailable())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GTW_001", resp.ErrorCode)
}

func TestError_WrappedAppError(t *testing.T) {
	c, w := setupCtx()
	inner := apperror.ErrPermissionDenied("disburse")
	Error(c, inner)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GTW_002", resp.ErrorCode)
}

func TestError_UnknownError(t *testing.T) {
	c, w := setupCtx()
	Error(c, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp.ErrorCode)
	// Internal detail must not leak to the client.
	assert.NotContains(t, resp.Message, "something unexpected")
}

func TestGetRequestID_FromContext(t *testing.T) {
	c, w := setupCtx()
	c.Set("request_id", "req-123")
	OK(c, nil)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
}
