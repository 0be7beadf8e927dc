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

// OrderHandler manages customer and admin order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	customerID := CurrentSubjectID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), customerID, toOrderItems(req.Services), req.TotalPrice)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Place handles POST /orders/place.
func (h *OrderHandler) Place(c *gin.Context) {
	customerID := CurrentSubjectID(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	address := model.Address{
		HouseNumber: req.Address.HouseNumber,
		Street:      req.Address.Street,
		Landmark:    req.Address.Landmark,
		Type:        model.AddressType(req.Address.AddressType),
		FullAddress: req.Address.FullAddress,
		TimeSlot:    req.Address.TimeSlot,
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), customerID, toOrderItems(req.Items), req.TotalAmount, address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoServiceItems):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "no items to place order"})
		case errors.Is(err, domainErrors.ErrMissingAddress):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "address and time slot are required"})
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// MyOrders handles GET /orders/my-orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	customerID := CurrentSubjectID(c)
	orders, err := h.facade.CustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Cancel handles DELETE /orders/:id.
func (h *OrderHandler) Cancel(c *gin.Context) {
	customerID := CurrentSubjectID(c)
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), customerID, orderID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		case errors.Is(err, domainErrors.ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "unauthorized"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "order cancelled"})
}

// AllOrders handles GET /orders/AllOrders.
func (h *OrderHandler) AllOrders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}
