package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/domain/repository"
)

// OrderUseCase encapsulates the customer-facing order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create is the simple order path: no address, confirmed immediately.
func (u *OrderUseCase) Create(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
	if total.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}

	order := &model.Order{
		CustomerID:    customerID,
		Items:         normalizeItems(items),
		TotalAmount:   total,
		Status:        model.OrderStatusConfirmed,
		RequestStatus: model.RequestStatusPending,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Place creates a scheduled order with a service address and time slot.
func (u *OrderUseCase) Place(ctx context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal, address model.Address) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrNoServiceItems
	}
	if address.FullAddress == "" || address.TimeSlot == "" {
		return nil, domainErrors.ErrMissingAddress
	}
	if total.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}

	order := &model.Order{
		CustomerID:    customerID,
		Items:         normalizeItems(items),
		TotalAmount:   total,
		Address:       address,
		Status:        model.OrderStatusConfirmed,
		RequestStatus: model.RequestStatusPending,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel marks the order cancelled after an ownership check.
func (u *OrderUseCase) Cancel(ctx context.Context, customerID, orderID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return domainErrors.ErrNotOrderOwner
	}
	return u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
}

// ListByCustomer returns the customer's orders, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListAll returns every order for administrative review.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

func normalizeItems(items []model.OrderItem) []model.OrderItem {
	normalized := make([]model.OrderItem, len(items))
	copy(normalized, items)
	for i := range normalized {
		if normalized[i].Quantity <= 0 {
			normalized[i].Quantity = 1
		}
	}
	return normalized
}
