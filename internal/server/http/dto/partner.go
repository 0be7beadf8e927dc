package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerResponse describes a partner in API responses.
type PartnerResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	JobID                string    `json:"jobId"`
	IsVerified           bool      `json:"isVerified"`
	Approval             string    `json:"approval"`
	VerificationStatus   string    `json:"verificationStatus"`
	IsDocumentsSubmitted bool      `json:"isDocumentsSubmitted"`
	CreatedAt            time.Time `json:"createdAt"`
}

// DashboardStatsResponse is the partner dashboard aggregate projection.
type DashboardStatsResponse struct {
	TotalOrders      int64           `json:"totalOrders"`
	CompletedOrders  int64           `json:"completedOrders"`
	IncompleteOrders int64           `json:"incompleteOrders"`
	Earnings         decimal.Decimal `json:"earnings"`
}

// ApprovalRequest is the administrative approval decision payload.
type ApprovalRequest struct {
	Approval string `json:"approval"`
}
