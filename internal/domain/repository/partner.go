package repository

import (
	"context"

	"github.com/fixhive/fixhive/internal/domain/model"
)

// PartnerRepository describes persistence operations for partners.
type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Partner, error)
	// FindEligible returns one assignable partner, or ErrNoCandidate.
	// Selection has no ranking: store-default ordering, lowest id first.
	FindEligible(ctx context.Context, requireDocuments bool) (*model.Partner, error)
	List(ctx context.Context) ([]model.Partner, error)
	SetApproval(ctx context.Context, id int64, approval model.Approval) error
}
