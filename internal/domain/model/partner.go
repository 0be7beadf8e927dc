package model

import "time"

// Approval is the administrative decision on a partner. A single tri-state
// keeps approved/declined mutually exclusive.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalDeclined Approval = "declined"
)

// VerificationStatus tracks document review, separate from registration
// verification and administrative approval.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationDeclined VerificationStatus = "declined"
)

// Partner is a service provider. Registration, OTP delivery and document
// upload are owned by external services; this model only carries the flags
// assignment eligibility depends on.
type Partner struct {
	ID                   int64
	Name                 string
	Phone                string
	Email                string
	JobID                string
	IsVerified           bool
	Approval             Approval
	VerificationStatus   VerificationStatus
	IsDocumentsSubmitted bool
	CreatedAt            time.Time
}

// EligibleForManualAssignment reports whether an administrator may hand the
// partner an offer: registration-verified, approved, document-review passed.
func (p *Partner) EligibleForManualAssignment() bool {
	return p.IsVerified &&
		p.Approval == ApprovalApproved &&
		p.VerificationStatus == VerificationVerified
}

// EligibleForAutoAssignment additionally requires submitted documents, so
// automatic eligibility always implies manual eligibility.
func (p *Partner) EligibleForAutoAssignment() bool {
	return p.EligibleForManualAssignment() && p.IsDocumentsSubmitted
}
