package handler

import (
	"charity-ledger-gateway/internal/adapter/http/dto"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"
	"charity-ledger-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CampaignHandler serves campaign reads and the open writes (donations,
// comments, likes) that any connected account may perform.
type CampaignHandler struct {
	gatewaySvc ports.GatewayService
	mediaStore ports.MediaStore
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(gatewaySvc ports.GatewayService, mediaStore ports.MediaStore) *CampaignHandler {
	return &CampaignHandler{gatewaySvc: gatewaySvc, mediaStore: mediaStore}
}

// List handles GET /api/v1/campaigns: a fresh concurrent read of every
// campaign, unreadable ones skipped.
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.gatewaySvc.LoadAllCampaigns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CampaignsFromDomain(campaigns))
}

// Get handles GET /api/v1/campaigns/:id with full donation, disbursement
// and comment records.
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.gatewaySvc.CampaignDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DetailFromDomain(detail))
}

// Donate handles POST /api/v1/campaigns/:id/donations. Blocks until the
// transaction confirms; the receipt in the response is final.
func (h *CampaignHandler) Donate(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.Donate(c.Request.Context(), id, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// AddComment handles POST /api/v1/campaigns/:id/comments.
func (h *CampaignHandler) AddComment(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.gatewaySvc.AddComment(c.Request.Context(), id, req.Text, req.Anonymous)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// Like handles POST /api/v1/campaigns/:id/likes.
func (h *CampaignHandler) Like(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.Like(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// Unlike handles DELETE /api/v1/campaigns/:id/likes.
func (h *CampaignHandler) Unlike(c *gin.Context) {
	id, err := dto.ParseCampaignID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.gatewaySvc.Unlike(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReceiptFromDomain(receipt))
}

// UploadMedia handles POST /api/v1/media. The reference comes back empty
// until a storage backend is wired; campaigns accept that as "no media".
func (h *CampaignHandler) UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	ref, err := h.mediaStore.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.MediaUploadResponse{Reference: ref})
}
