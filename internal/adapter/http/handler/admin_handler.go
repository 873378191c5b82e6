package handler

import (
	"charity-ledger-gateway/internal/adapter/http/dto"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"
	"charity-ledger-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the privileged writes. Permission is not checked here:
// the gateway re-reads the admin/owner flag immediately before submission,
// so a handler-level check would only add a stale second opinion.
type AdminHandler struct {
	gatewaySvc ports.GatewayService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(gatewaySvc ports.GatewayService) *AdminHandler {
	return &AdminHandler{gatewaySvc: gatewaySvc}
}

// CreateCampaign handles POST /api/v1/campaigns.
func (h *AdminHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	target, err := dto.ParseAmount(req.TargetAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	wallet, err := dto.ParseAddress(req.Wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.CreateCampaign(c.Request.Context(), ports.CreateCampaignParams{
		Title:        req.Title,
		Description:  req.Description,
		Media:        req.Media,
		Location:     req.Location,
		TargetAmount: target,
		Wallet:       wallet,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// Disburse handles POST /api/v1/campaigns/:id/disbursements.
func (h *AdminHandler) Disburse(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.DisburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	recipient, err := dto.ParseAddress(req.Recipient)
	if err != nil {
		response.Error(c, err)
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.Disburse(c.Request.Context(), id, recipient, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// SetActive handles PATCH /api/v1/campaigns/:id/active.
func (h *AdminHandler) SetActive(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.gatewaySvc.SetCampaignActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// SetAdmin handles PUT /api/v1/admins.
func (h *AdminHandler) SetAdmin(c *gin.Context) {
	var req dto.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	addr, err := dto.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.SetAdmin(c.Request.Context(), addr, *req.Allowed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}
