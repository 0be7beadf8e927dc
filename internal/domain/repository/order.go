package repository

import (
	"context"
	"time"

	"github.com/fixhive/fixhive/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and the
// offer fields riding on them.
type OrderRepository interface {
	// Create persists the order and its items, filling ID and CreatedAt.
	Create(ctx context.Context, order *model.Order) error
	// GetByID loads an order with its items and the ordering customer joined.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByPartner(ctx context.Context, partnerID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// PlaceOffer stamps the offer fields unless a pending unexpired offer
	// already exists; such a conflict surfaces as ErrOfferActive.
	PlaceOffer(ctx context.Context, orderID, partnerID int64, expiresAt, now time.Time) error
	// ResolveOffer transitions a pending in-window offer owned by partnerID.
	// The update is conditional on the current request status, so a lost
	// race surfaces as ErrOfferResolved.
	ResolveOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus, status model.OrderStatus, now time.Time) error
	// ListExpiredOffers returns orders whose pending offer deadline passed.
	ListExpiredOffers(ctx context.Context, now time.Time, limit int) ([]model.Order, error)
	// ExpireOffer declines a pending offer whose deadline passed. Returns
	// false when the offer was resolved or refreshed concurrently.
	ExpireOffer(ctx context.Context, orderID int64, now time.Time) (bool, error)
	DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error)
}
