package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/server/http/dto"
)

// PartnerHandler serves partner read-side and administrative endpoints.
type PartnerHandler struct {
	facade PartnerFacade
}

// NewPartnerHandler constructs PartnerHandler.
func NewPartnerHandler(facade PartnerFacade) *PartnerHandler {
	return &PartnerHandler{facade: facade}
}

// DashboardStats handles GET /partners/dashboard-stats.
func (h *PartnerHandler) DashboardStats(c *gin.Context) {
	partnerID := CurrentSubjectID(c)
	stats, err := h.facade.DashboardStats(c.Request.Context(), partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, dto.DashboardStatsResponse{
		TotalOrders:      stats.TotalOrders,
		CompletedOrders:  stats.CompletedOrders,
		IncompleteOrders: stats.IncompleteOrders,
		Earnings:         stats.Earnings,
	})
}

// List handles GET /partners.
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.facade.Partners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch partners"})
		return
	}
	result := make([]dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		result = append(result, toPartnerResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

// SetApproval handles PUT /partners/:id/approval.
func (h *PartnerHandler) SetApproval(c *gin.Context) {
	partnerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid partner id"})
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	err = h.facade.SetPartnerApproval(c.Request.Context(), partnerID, model.Approval(req.Approval))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidApproval):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid approval decision"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "partner not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to update approval"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "partner approval updated"})
}
