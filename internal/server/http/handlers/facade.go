package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/server/http/middleware"
)

// OrderFacade encapsulates customer and admin order operations.
type OrderFacade interface {
	CreateOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error)
	PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal, address model.Address) (*model.Order, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	CancelOrder(ctx context.Context, customerID, orderID int64) error
	AllOrders(ctx context.Context) ([]model.Order, error)
}

// AssignmentFacade exposes the partner assignment workflow.
type AssignmentFacade interface {
	AssignPartnerAuto(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error)
	AssignPartnerManual(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error)
	RespondToOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus) (*model.Order, error)
	PartnerOrders(ctx context.Context, partnerID int64) ([]model.Order, error)
}

// PartnerFacade provides partner read-side and administrative operations.
type PartnerFacade interface {
	DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error)
	Partners(ctx context.Context) ([]model.Partner, error)
	SetPartnerApproval(ctx context.Context, partnerID int64, approval model.Approval) error
}

// MarketplaceFacade aggregates the full set of operations used across
// handlers and the auth middleware.
type MarketplaceFacade interface {
	middleware.TokenParser
	OrderFacade
	AssignmentFacade
	PartnerFacade
}
