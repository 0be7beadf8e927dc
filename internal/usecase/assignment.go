package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/domain/repository"
)

// OfferWindow is how long an assigned partner has to respond to an offer.
const OfferWindow = 2 * time.Minute

// Notifier delivers offer notifications to partners.
type Notifier interface {
	NotifyOffer(ctx context.Context, notice model.OfferNotice) error
}

// AssignmentUseCase selects an eligible partner for an order and manages
// the offer lifecycle riding on the order's request fields.
type AssignmentUseCase struct {
	orders   repository.OrderRepository
	partners repository.PartnerRepository
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewAssignmentUseCase constructs AssignmentUseCase.
func NewAssignmentUseCase(orders repository.OrderRepository, partners repository.PartnerRepository, notifier Notifier, logger *slog.Logger) *AssignmentUseCase {
	return &AssignmentUseCase{
		orders:   orders,
		partners: partners,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// AssignAuto picks a partner under the strict eligibility rule used at
// order placement: the candidate must also have submitted documents.
func (u *AssignmentUseCase) AssignAuto(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	return u.assign(ctx, orderID, true)
}

// AssignManual picks a partner under the administrative rule, which does
// not require submitted documents.
func (u *AssignmentUseCase) AssignManual(ctx context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
	return u.assign(ctx, orderID, false)
}

// assign stamps the offer on the order and asks the gateway to notify the
// partner. The boolean result reports whether notification succeeded; a
// failed send leaves the offer in place but is never claimed delivered.
func (u *AssignmentUseCase) assign(ctx context.Context, orderID int64, requireDocuments bool) (*model.Order, *model.Partner, bool, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, false, err
	}
	if len(order.Items) == 0 {
		return nil, nil, false, domainErrors.ErrNoServiceItems
	}

	partner, err := u.partners.FindEligible(ctx, requireDocuments)
	if err != nil {
		return nil, nil, false, err
	}

	expiresAt := u.now().Add(OfferWindow)
	if err := u.orders.PlaceOffer(ctx, order.ID, partner.ID, expiresAt, u.now()); err != nil {
		return nil, nil, false, err
	}

	order.AssignedPartner = &partner.ID
	order.RequestStatus = model.RequestStatusPending
	order.RequestExpiresAt = &expiresAt

	notice := model.OfferNotice{
		PartnerEmail: partner.Email,
		ServiceTitle: order.Items[0].Title,
		ServiceType:  order.ServiceType(),
		TimeSlot:     order.Address.TimeSlot,
		FullAddress:  order.Address.FullAddress,
	}
	if order.Customer != nil {
		notice.CustomerName = order.Customer.Name
		notice.CustomerEmail = order.Customer.Email
	}

	notified := true
	if err := u.notifier.NotifyOffer(ctx, notice); err != nil {
		notified = false
		u.logger.Warn("offer notification failed",
			slog.Int64("order", order.ID),
			slog.Int64("partner", partner.ID),
			slog.String("error", err.Error()),
		)
	}

	return order, partner, notified, nil
}

// Respond records the assigned partner's decision on a pending offer.
// Accepting confirms the order; declining returns it to Pending without
// releasing the partner or triggering re-assignment.
func (u *AssignmentUseCase) Respond(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus) (*model.Order, error) {
	if decision != model.RequestStatusAccepted && decision != model.RequestStatusDeclined {
		return nil, domainErrors.ErrInvalidDecision
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AssignedPartner == nil || *order.AssignedPartner != partnerID {
		return nil, domainErrors.ErrNotOfferOwner
	}
	if order.RequestStatus != model.RequestStatusPending || order.RequestExpiresAt == nil {
		return nil, domainErrors.ErrOfferResolved
	}

	now := u.now()
	if now.After(*order.RequestExpiresAt) {
		return nil, domainErrors.ErrOfferExpired
	}

	status := model.OrderStatusPending
	if decision == model.RequestStatusAccepted {
		status = model.OrderStatusConfirmed
	}

	if err := u.orders.ResolveOffer(ctx, orderID, partnerID, decision, status, now); err != nil {
		return nil, err
	}

	order.RequestStatus = decision
	order.Status = status
	return order, nil
}

// ExpiredOffers lists pending offers whose response deadline passed.
func (u *AssignmentUseCase) ExpiredOffers(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.ListExpiredOffers(ctx, u.now(), limit)
}

// ExpireOffer declines an overdue pending offer. Returns false when the
// partner responded, or the offer was refreshed, in the meantime.
func (u *AssignmentUseCase) ExpireOffer(ctx context.Context, orderID int64) (bool, error) {
	return u.orders.ExpireOffer(ctx, orderID, u.now())
}
