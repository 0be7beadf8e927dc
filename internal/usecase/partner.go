package usecase

import (
	"context"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/domain/repository"
)

// PartnerUseCase serves partner read-side queries and the administrative
// approval decision.
type PartnerUseCase struct {
	orders   repository.OrderRepository
	partners repository.PartnerRepository
}

// NewPartnerUseCase constructs PartnerUseCase.
func NewPartnerUseCase(orders repository.OrderRepository, partners repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{orders: orders, partners: partners}
}

// Orders returns the partner's assigned orders, newest first, with the
// ordering customer joined.
func (u *PartnerUseCase) Orders(ctx context.Context, partnerID int64) ([]model.Order, error) {
	return u.orders.ListByPartner(ctx, partnerID)
}

// DashboardStats recomputes the partner's aggregates on every call.
func (u *PartnerUseCase) DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error) {
	return u.orders.DashboardStats(ctx, partnerID)
}

// List returns all partners for administrative review.
func (u *PartnerUseCase) List(ctx context.Context) ([]model.Partner, error) {
	return u.partners.List(ctx)
}

// SetApproval records the administrative decision. Only the approved and
// declined states may be set explicitly; pending is the initial state.
func (u *PartnerUseCase) SetApproval(ctx context.Context, partnerID int64, approval model.Approval) error {
	if approval != model.ApprovalApproved && approval != model.ApprovalDeclined {
		return domainErrors.ErrInvalidApproval
	}
	return u.partners.SetApproval(ctx, partnerID, approval)
}
