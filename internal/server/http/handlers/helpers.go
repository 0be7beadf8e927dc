package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/server/http/dto"
	"github.com/fixhive/fixhive/internal/server/http/middleware"
)

// CurrentSubjectID extracts the authenticated subject identifier from context.
func CurrentSubjectID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.SubjectIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemPayload{
			Title:    item.Title,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
		})
	}

	resp := dto.OrderResponse{
		ID:          order.ID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Address: dto.AddressPayload{
			HouseNumber: order.Address.HouseNumber,
			Street:      order.Address.Street,
			Landmark:    order.Address.Landmark,
			AddressType: string(order.Address.Type),
			FullAddress: order.Address.FullAddress,
			TimeSlot:    order.Address.TimeSlot,
		},
		Status:           string(order.Status),
		AssignedPartner:  order.AssignedPartner,
		RequestStatus:    string(order.RequestStatus),
		RequestExpiresAt: order.RequestExpiresAt,
		CreatedAt:        order.CreatedAt,
	}
	if order.Customer != nil {
		resp.Customer = &dto.CustomerPayload{Name: order.Customer.Name, Email: order.Customer.Email}
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}

func toPartnerResponse(partner model.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:                   partner.ID,
		Name:                 partner.Name,
		Phone:                partner.Phone,
		Email:                partner.Email,
		JobID:                partner.JobID,
		IsVerified:           partner.IsVerified,
		Approval:             string(partner.Approval),
		VerificationStatus:   string(partner.VerificationStatus),
		IsDocumentsSubmitted: partner.IsDocumentsSubmitted,
		CreatedAt:            partner.CreatedAt,
	}
}

func toOrderItems(payloads []dto.OrderItemPayload) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, model.OrderItem{
			Title:    p.Title,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			Quantity: p.Quantity,
		})
	}
	return items
}
