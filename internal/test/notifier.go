package test

import (
	"context"

	"github.com/fixhive/fixhive/internal/domain/model"
)

// NotifierStub records offer notifications sent during tests.
type NotifierStub struct {
	NotifyFn func(context.Context, model.OfferNotice) error
	Err      error
	Notices  []model.OfferNotice
}

// NotifyOffer records the notice and returns the configured error.
func (s *NotifierStub) NotifyOffer(ctx context.Context, notice model.OfferNotice) error {
	s.Notices = append(s.Notices, notice)
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, notice)
	}
	return s.Err
}
