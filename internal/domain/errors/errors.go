package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNoServiceItems  = errors.New("order has no service items")
	ErrMissingAddress  = errors.New("address and time slot are required")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDecision = errors.New("invalid response decision")
	ErrInvalidApproval = errors.New("invalid approval decision")
	ErrNotOrderOwner   = errors.New("order belongs to another customer")
	ErrNotOfferOwner   = errors.New("offer belongs to another partner")
	ErrOfferExpired    = errors.New("offer expired")
	ErrOfferResolved   = errors.New("offer already resolved")
	ErrOfferActive     = errors.New("order already has an active offer")
	ErrNoCandidate     = errors.New("no eligible partner available")
)
