package handler

import (
	"charity-ledger-gateway/internal/adapter/http/dto"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated view and reconciler controls.
type DashboardHandler struct {
	aggregator ports.AggregatorService
	reconciler ports.Reconciler
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(aggregator ports.AggregatorService, reconciler ports.Reconciler) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator, reconciler: reconciler}
}

// Get handles GET /api/v1/dashboard. Serves the last published snapshot
// without touching the ledger.
func (h *DashboardHandler) Get(c *gin.Context) {
	response.OK(c, dto.DashboardFromDomain(h.aggregator.Snapshot()))
}

// Refresh handles POST /api/v1/dashboard/refresh: forces a full aggregation
// pass and returns the freshly published view.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	view, err := h.aggregator.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DashboardFromDomain(view))
}

// ReconcilerState handles GET /api/v1/dashboard/reconciler.
func (h *DashboardHandler) ReconcilerState(c *gin.Context) {
	response.OK(c, dto.ReconcilerResponse{Attached: h.reconciler.Attached()})
}

// AttachReconciler handles POST /api/v1/dashboard/reconciler/attach.
func (h *DashboardHandler) AttachReconciler(c *gin.Context) {
	if err := h.reconciler.Attach(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ReconcilerResponse{Attached: true})
}

// DetachReconciler handles POST /api/v1/dashboard/reconciler/detach.
func (h *DashboardHandler) DetachReconciler(c *gin.Context) {
	h.reconciler.Detach()
	response.OK(c, dto.ReconcilerResponse{Attached: h.reconciler.Attached()})
}
