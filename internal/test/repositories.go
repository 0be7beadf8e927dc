package test

import (
	"context"
	"time"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
)

// OfferCall captures a PlaceOffer invocation.
type OfferCall struct {
	OrderID   int64
	PartnerID int64
	ExpiresAt time.Time
	Now       time.Time
}

// ResolveCall captures a ResolveOffer invocation.
type ResolveCall struct {
	OrderID   int64
	PartnerID int64
	Decision  model.RequestStatus
	Status    model.OrderStatus
	Now       time.Time
}

// StatusCall captures an UpdateStatus invocation.
type StatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, *model.Order) error
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	ListByCustomerFn   func(context.Context, int64) ([]model.Order, error)
	ListByPartnerFn    func(context.Context, int64) ([]model.Order, error)
	ListAllFn          func(context.Context) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, int64, model.OrderStatus) error
	PlaceOfferFn       func(context.Context, int64, int64, time.Time, time.Time) error
	ResolveOfferFn     func(context.Context, int64, int64, model.RequestStatus, model.OrderStatus, time.Time) error
	ListExpiredFn      func(context.Context, time.Time, int) ([]model.Order, error)
	ExpireOfferFn      func(context.Context, int64, time.Time) (bool, error)
	DashboardStatsFn   func(context.Context, int64) (*model.DashboardStats, error)

	Created      []model.Order
	Orders       []model.Order
	Expired      []model.Order
	Stats        *model.DashboardStats
	OfferCalls   []OfferCall
	ResolveCalls []ResolveCall
	StatusCalls  []StatusCall
	ExpireCalls  []int64
}

// Create tracks invocations and assigns identifiers in sequence.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if order.ID == 0 {
		order.ID = int64(len(s.Created) + 1)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.Created = append(s.Created, *order)
	return nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns orders from configured slice.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	return s.Orders, nil
}

// ListByPartner returns orders from configured slice.
func (s *OrderRepositoryStub) ListByPartner(ctx context.Context, partnerID int64) ([]model.Order, error) {
	if s.ListByPartnerFn != nil {
		return s.ListByPartnerFn(ctx, partnerID)
	}
	return s.Orders, nil
}

// ListAll returns orders from configured slice.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusCalls = append(s.StatusCalls, StatusCall{OrderID: orderID, Status: status})
	return nil
}

// PlaceOffer records the offer stamp.
func (s *OrderRepositoryStub) PlaceOffer(ctx context.Context, orderID, partnerID int64, expiresAt, now time.Time) error {
	s.OfferCalls = append(s.OfferCalls, OfferCall{OrderID: orderID, PartnerID: partnerID, ExpiresAt: expiresAt, Now: now})
	if s.PlaceOfferFn != nil {
		return s.PlaceOfferFn(ctx, orderID, partnerID, expiresAt, now)
	}
	return nil
}

// ResolveOffer records the resolution.
func (s *OrderRepositoryStub) ResolveOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus, status model.OrderStatus, now time.Time) error {
	s.ResolveCalls = append(s.ResolveCalls, ResolveCall{OrderID: orderID, PartnerID: partnerID, Decision: decision, Status: status, Now: now})
	if s.ResolveOfferFn != nil {
		return s.ResolveOfferFn(ctx, orderID, partnerID, decision, status, now)
	}
	return nil
}

// ListExpiredOffers returns the configured expired batch.
func (s *OrderRepositoryStub) ListExpiredOffers(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	if s.ListExpiredFn != nil {
		return s.ListExpiredFn(ctx, now, limit)
	}
	if limit > 0 && len(s.Expired) > limit {
		return s.Expired[:limit], nil
	}
	return s.Expired, nil
}

// ExpireOffer records the expiry attempt.
func (s *OrderRepositoryStub) ExpireOffer(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	s.ExpireCalls = append(s.ExpireCalls, orderID)
	if s.ExpireOfferFn != nil {
		return s.ExpireOfferFn(ctx, orderID, now)
	}
	return true, nil
}

// DashboardStats returns configured stats or default error.
func (s *OrderRepositoryStub) DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error) {
	if s.DashboardStatsFn != nil {
		return s.DashboardStatsFn(ctx, partnerID)
	}
	if s.Stats == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Stats, nil
}

// PartnerRepositoryStub stores partners in-memory for tests.
type PartnerRepositoryStub struct {
	GetByIDFn      func(context.Context, int64) (*model.Partner, error)
	FindEligibleFn func(context.Context, bool) (*model.Partner, error)
	ListFn         func(context.Context) ([]model.Partner, error)
	SetApprovalFn  func(context.Context, int64, model.Approval) error

	Partners      []model.Partner
	ApprovalCalls []struct {
		ID       int64
		Approval model.Approval
	}
}

// GetByID fetches partner by identifier or returns not found.
func (s *PartnerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Partner, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Partners {
		if p.ID == id {
			partner := p
			return &partner, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindEligible returns the first assignable partner honoring the documents rule.
func (s *PartnerRepositoryStub) FindEligible(ctx context.Context, requireDocuments bool) (*model.Partner, error) {
	if s.FindEligibleFn != nil {
		return s.FindEligibleFn(ctx, requireDocuments)
	}
	for _, p := range s.Partners {
		eligible := p.EligibleForManualAssignment()
		if requireDocuments {
			eligible = p.EligibleForAutoAssignment()
		}
		if eligible {
			partner := p
			return &partner, nil
		}
	}
	return nil, domainErrors.ErrNoCandidate
}

// List returns configured partners.
func (s *PartnerRepositoryStub) List(ctx context.Context) ([]model.Partner, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Partners, nil
}

// SetApproval records approval decisions.
func (s *PartnerRepositoryStub) SetApproval(ctx context.Context, id int64, approval model.Approval) error {
	if s.SetApprovalFn != nil {
		return s.SetApprovalFn(ctx, id, approval)
	}
	s.ApprovalCalls = append(s.ApprovalCalls, struct {
		ID       int64
		Approval model.Approval
	}{id, approval})
	return nil
}
