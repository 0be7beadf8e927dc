package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fixhive/fixhive/internal/domain/model"
	pkgAuth "github.com/fixhive/fixhive/internal/pkg/auth"
	"github.com/fixhive/fixhive/internal/usecase"
)

// MarketplaceFacade aggregates the use cases behind a single surface for
// the HTTP layer and the background sweeper.
type MarketplaceFacade struct {
	orders      *usecase.OrderUseCase
	assignments *usecase.AssignmentUseCase
	partners    *usecase.PartnerUseCase
	tokens      pkgAuth.Strategy
}

// NewMarketplaceFacade constructs the facade.
func NewMarketplaceFacade(orders *usecase.OrderUseCase, assignments *usecase.AssignmentUseCase, partners *usecase.PartnerUseCase, tokens pkgAuth.Strategy) *MarketplaceFacade {
	return &MarketplaceFacade{orders: orders, assignments: assignments, partners: partners, tokens: tokens}
}

func (f *MarketplaceFacade) ParseToken(token string) (int64, pkgAuth.Role, error) {
	return f.tokens.ParseToken(token)
}

func (f *MarketplaceFacade) CreateOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
	return f.orders.Create(ctx, customerID, items, total)
}

func (f *MarketplaceFacade) PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal, address model.Address) (*model.Order, error) {
	return f.orders.Place(ctx, customerID, items, total, address)
}

func (f *MarketplaceFacade) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *MarketplaceFacade) CancelOrder(ctx context.Context, customerID, orderID int64) error {
	return f.orders.Cancel(ctx, customerID, orderID)
}

func (f *MarketplaceFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *MarketplaceFacade) AssignPartnerAuto(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	return f.assignments.AssignAuto(ctx, orderID)
}

func (f *MarketplaceFacade) AssignPartnerManual(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	return f.assignments.AssignManual(ctx, orderID)
}

func (f *MarketplaceFacade) RespondToOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus) (*model.Order, error) {
	return f.assignments.Respond(ctx, orderID, partnerID, decision)
}

func (f *MarketplaceFacade) PartnerOrders(ctx context.Context, partnerID int64) ([]model.Order, error) {
	return f.partners.Orders(ctx, partnerID)
}

func (f *MarketplaceFacade) DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error) {
	return f.partners.DashboardStats(ctx, partnerID)
}

func (f *MarketplaceFacade) Partners(ctx context.Context) ([]model.Partner, error) {
	return f.partners.List(ctx)
}

func (f *MarketplaceFacade) SetPartnerApproval(ctx context.Context, partnerID int64, approval model.Approval) error {
	return f.partners.SetApproval(ctx, partnerID, approval)
}

func (f *MarketplaceFacade) ExpiredOffers(ctx context.Context, limit int) ([]model.Order, error) {
	return f.assignments.ExpiredOffers(ctx, limit)
}

func (f *MarketplaceFacade) ExpireOffer(ctx context.Context, orderID int64) (bool, error) {
	return f.assignments.ExpireOffer(ctx, orderID)
}
