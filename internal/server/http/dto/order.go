package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemPayload describes one service line in requests and responses.
type OrderItemPayload struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Quantity int             `json:"quantity"`
}

// AddressPayload describes the service address and time slot.
type AddressPayload struct {
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	Landmark    string `json:"landmark,omitempty"`
	AddressType string `json:"addressType"`
	FullAddress string `json:"fullAddress"`
	TimeSlot    string `json:"timeSlot"`
}

// CreateOrderRequest is the simple order creation payload.
type CreateOrderRequest struct {
	Services   []OrderItemPayload `json:"services"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

// PlaceOrderRequest is the scheduled order placement payload.
type PlaceOrderRequest struct {
	Items       []OrderItemPayload `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	Address     AddressPayload     `json:"address"`
}

// CustomerPayload is the joined ordering-customer projection.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderResponse describes an order in API responses.
type OrderResponse struct {
	ID               int64              `json:"id"`
	Items            []OrderItemPayload `json:"items"`
	TotalAmount      decimal.Decimal    `json:"totalAmount"`
	Address          AddressPayload     `json:"address"`
	Status           string             `json:"status"`
	AssignedPartner  *int64             `json:"assignedPartner,omitempty"`
	RequestStatus    string             `json:"requestStatus"`
	RequestExpiresAt *time.Time         `json:"requestExpiresAt,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	Customer         *CustomerPayload   `json:"user,omitempty"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}
