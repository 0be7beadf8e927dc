package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fixhive/fixhive/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, int64, []model.OrderItem, decimal.Decimal) (*model.Order, error)
	PlaceFn  func(context.Context, int64, []model.OrderItem, decimal.Decimal, model.Address) (*model.Order, error)
	MyFn     func(context.Context, int64) ([]model.Order, error)
	CancelFn func(context.Context, int64, int64) error
	AllFn    func(context.Context) ([]model.Order, error)
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, items, total)
	}
	return &model.Order{ID: 1, CustomerID: customerID, Items: items, TotalAmount: total, Status: model.OrderStatusConfirmed}, nil
}

// PlaceOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal, address model.Address) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, customerID, items, total, address)
	}
	return &model.Order{ID: 1, CustomerID: customerID, Items: items, TotalAmount: total, Address: address, Status: model.OrderStatusConfirmed}, nil
}

// CustomerOrders returns predefined orders for given customer.
func (s OrderFacadeStub) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.MyFn != nil {
		return s.MyFn(ctx, customerID)
	}
	return []model.Order{{ID: 1, CustomerID: customerID}}, nil
}

// CancelOrder executes configured cancellation handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, customerID, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, customerID, orderID)
	}
	return nil
}

// AllOrders returns the administrative listing.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx)
	}
	return []model.Order{{ID: 1}}, nil
}

// AssignmentFacadeStub simulates the assignment workflow.
type AssignmentFacadeStub struct {
	AutoFn    func(context.Context, int64) (*model.Order, *model.Partner, bool, error)
	ManualFn  func(context.Context, int64) (*model.Order, *model.Partner, bool, error)
	RespondFn func(context.Context, int64, int64, model.RequestStatus) (*model.Order, error)
	OrdersFn  func(context.Context, int64) ([]model.Order, error)
}

// AssignPartnerAuto delegates or returns a default assignment.
func (s AssignmentFacadeStub) AssignPartnerAuto(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	if s.AutoFn != nil {
		return s.AutoFn(ctx, orderID)
	}
	return &model.Order{ID: orderID}, &model.Partner{ID: 7}, true, nil
}

// AssignPartnerManual delegates or returns a default assignment.
func (s AssignmentFacadeStub) AssignPartnerManual(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	if s.ManualFn != nil {
		return s.ManualFn(ctx, orderID)
	}
	return &model.Order{ID: orderID}, &model.Partner{ID: 7}, true, nil
}

// RespondToOffer delegates or returns the order unchanged.
func (s AssignmentFacadeStub) RespondToOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus) (*model.Order, error) {
	if s.RespondFn != nil {
		return s.RespondFn(ctx, orderID, partnerID, decision)
	}
	return &model.Order{ID: orderID, AssignedPartner: &partnerID, RequestStatus: decision}, nil
}

// PartnerOrders returns predefined orders for given partner.
func (s AssignmentFacadeStub) PartnerOrders(ctx context.Context, partnerID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, partnerID)
	}
	return []model.Order{{ID: 1, AssignedPartner: &partnerID}}, nil
}

// PartnerFacadeStub simulates partner read-side and administrative operations.
type PartnerFacadeStub struct {
	StatsFn    func(context.Context, int64) (*model.DashboardStats, error)
	ListFn     func(context.Context) ([]model.Partner, error)
	ApprovalFn func(context.Context, int64, model.Approval) error
}

// DashboardStats returns stored stats or default data.
func (s PartnerFacadeStub) DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, partnerID)
	}
	return &model.DashboardStats{TotalOrders: 3, CompletedOrders: 2, IncompleteOrders: 1, Earnings: decimal.NewFromInt(100)}, nil
}

// Partners returns preconfigured partner listing.
func (s PartnerFacadeStub) Partners(ctx context.Context) ([]model.Partner, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Partner{{ID: 7, Name: "stub partner"}}, nil
}

// SetPartnerApproval executes configured approval handler.
func (s PartnerFacadeStub) SetPartnerApproval(ctx context.Context, partnerID int64, approval model.Approval) error {
	if s.ApprovalFn != nil {
		return s.ApprovalFn(ctx, partnerID, approval)
	}
	return nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	TokenParserStub
	OrderFacadeStub
	AssignmentFacadeStub
	PartnerFacadeStub
}

// SweeperFacadeStub mimics worker interactions with the assignment facade.
type SweeperFacadeStub struct {
	Batches        [][]model.Order
	ExpiredFn      func(context.Context, int) ([]model.Order, error)
	ExpireFn       func(context.Context, int64) (bool, error)
	Expired        []int64
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *SweeperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweeperFacadeStub) Unlock() { s.mu.Unlock() }

// ExpiredOffers returns batches from configured queue.
func (s *SweeperFacadeStub) ExpiredOffers(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ExpiredFn != nil {
		return s.ExpiredFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ExpireOffer records expired order identifiers.
func (s *SweeperFacadeStub) ExpireOffer(ctx context.Context, orderID int64) (bool, error) {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Expired = append(s.Expired, orderID)
	return true, nil
}
