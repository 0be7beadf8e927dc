package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the customer-facing order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// RequestStatus describes the state of a partner offer on an order.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusDeclined RequestStatus = "Declined"
)

// AddressType classifies a service address.
type AddressType string

const (
	AddressTypeHome   AddressType = "Home"
	AddressTypeOffice AddressType = "Office"
	AddressTypeOther  AddressType = "Other"
)

// OrderItem is a single service line within an order.
type OrderItem struct {
	Title    string
	Price    decimal.Decimal
	ImageURL string
	Quantity int
}

// Address holds the service location and the requested time slot.
// TimeSlot is free text chosen by the customer, not a parsed timestamp.
type Address struct {
	HouseNumber string
	Street      string
	Landmark    string
	Type        AddressType
	FullAddress string
	TimeSlot    string
}

// Order is a customer order for one or more home services. RequestStatus
// and RequestExpiresAt only carry meaning while AssignedPartner is set.
type Order struct {
	ID               int64
	CustomerID       int64
	Items            []OrderItem
	TotalAmount      decimal.Decimal
	Address          Address
	Status           OrderStatus
	AssignedPartner  *int64
	RequestStatus    RequestStatus
	RequestExpiresAt *time.Time
	CreatedAt        time.Time

	// Customer is populated by read queries that join the ordering
	// customer, mirroring the listing projections.
	Customer *Customer
}

// ServiceType derives the service label from the first item's title.
// Empty when the order has no items.
func (o *Order) ServiceType() string {
	if len(o.Items) == 0 {
		return ""
	}
	return strings.ToLower(o.Items[0].Title)
}

// HasActiveOffer reports whether the order carries a pending, unexpired
// partner offer at the given instant. Expiry is strict: an offer is still
// active at exactly its deadline.
func (o *Order) HasActiveOffer(now time.Time) bool {
	if o.AssignedPartner == nil || o.RequestExpiresAt == nil {
		return false
	}
	return o.RequestStatus == RequestStatusPending && !now.After(*o.RequestExpiresAt)
}
