package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/server/http/dto"
)

// AssignmentHandler manages the partner assignment workflow endpoints.
type AssignmentHandler struct {
	facade AssignmentFacade
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(facade AssignmentFacade) *AssignmentHandler {
	return &AssignmentHandler{facade: facade}
}

// AssignAuto handles POST /orders/assign-partner/:orderId. Eligibility
// requires submitted documents.
func (h *AssignmentHandler) AssignAuto(c *gin.Context) {
	h.assign(c, h.facade.AssignPartnerAuto)
}

// AssignManual handles POST /orders/assign-partner-manual/:orderId.
// Eligibility does not require submitted documents.
func (h *AssignmentHandler) AssignManual(c *gin.Context) {
	h.assign(c, h.facade.AssignPartnerManual)
}

func (h *AssignmentHandler) assign(c *gin.Context, fn func(context.Context, int64) (*model.Order, *model.Partner, bool, error)) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	order, partner, notified, err := fn(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		case errors.Is(err, domainErrors.ErrNoServiceItems):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "service type missing in order items"})
		case errors.Is(err, domainErrors.ErrNoCandidate):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "no available partner found"})
		case errors.Is(err, domainErrors.ErrOfferActive):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "order already has an active offer"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to assign partner"})
		}
		return
	}

	message := "partner assigned and notified via email"
	if !notified {
		message = "partner assigned, notification delivery failed"
	}

	orderResp := toOrderResponse(*order)
	partnerResp := toPartnerResponse(*partner)
	c.JSON(http.StatusOK, dto.AssignmentResponse{
		Message:  message,
		Notified: notified,
		Order:    &orderResp,
		Partner:  &partnerResp,
	})
}

// Respond handles POST /orders/respond/:orderId.
func (h *AssignmentHandler) Respond(c *gin.Context) {
	partnerID := CurrentSubjectID(c)
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	_, err = h.facade.RespondToOffer(c.Request.Context(), orderID, partnerID, model.RequestStatus(req.Response))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid response decision"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		case errors.Is(err, domainErrors.ErrNotOfferOwner):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "unauthorized partner"})
		case errors.Is(err, domainErrors.ErrOfferExpired):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "request expired"})
		case errors.Is(err, domainErrors.ErrOfferResolved):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "request already resolved"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to respond to request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "request " + strings.ToLower(req.Response) + " successfully"})
}

// PartnerOrders handles GET /orders/partner-orders.
func (h *AssignmentHandler) PartnerOrders(c *gin.Context) {
	partnerID := CurrentSubjectID(c)
	orders, err := h.facade.PartnerOrders(c.Request.Context(), partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch partner orders"})
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}
