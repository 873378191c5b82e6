package handler

import (
	"charity-ledger-gateway/internal/adapter/http/dto"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles the operator connection lifecycle.
type SessionHandler struct {
	sessionSvc ports.SessionService
	gatewaySvc ports.GatewayService
	reconciler ports.Reconciler
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService, gatewaySvc ports.GatewayService, reconciler ports.Reconciler) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
		gatewaySvc: gatewaySvc,
		reconciler: reconciler,
	}
}

// Connect handles POST /api/v1/session/connect. On success the reconciler
// attaches so the dashboard starts tracking ledger events.
func (h *SessionHandler) Connect(c *gin.Context) {
	sess, err := h.sessionSvc.Connect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	// Best effort: the connection succeeded, and a failed attach only costs
	// freshness until the operator forces a refresh.
	_ = h.reconciler.Attach(c.Request.Context())

	response.OK(c, dto.SessionFromDomain(*sess))
}

// Disconnect handles POST /api/v1/session/disconnect.
func (h *SessionHandler) Disconnect(c *gin.Context) {
	h.reconciler.Detach()
	h.sessionSvc.Disconnect()
	response.OK(c, dto.SessionFromDomain(h.sessionSvc.Current()))
}

// Current handles GET /api/v1/session.
func (h *SessionHandler) Current(c *gin.Context) {
	response.OK(c, dto.SessionFromDomain(h.sessionSvc.Current()))
}

// Status handles GET /api/v1/session/status: the operator's explicit
// "check my status" query. Failures surface directly.
func (h *SessionHandler) Status(c *gin.Context) {
	report, err := h.gatewaySvc.CheckStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// IsAdmin handles GET /api/v1/session/is-admin. Always 200: an unreachable
// ledger degrades to false rather than erroring.
func (h *SessionHandler) IsAdmin(c *gin.Context) {
	var addr *common.Address
	if raw := c.Query("address"); raw != "" {
		parsed, err := dto.ParseAddress(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		addr = &parsed
	}

	response.OK(c, dto.AdminCheckResponse{IsAdmin: h.gatewaySvc.IsAdmin(c.Request.Context(), addr)})
}
