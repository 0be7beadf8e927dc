package model

import "github.com/shopspring/decimal"

// DashboardStats aggregates a partner's assigned orders at query time.
// Earnings sums total amounts over confirmed orders only.
type DashboardStats struct {
	TotalOrders      int64
	CompletedOrders  int64
	IncompleteOrders int64
	Earnings         decimal.Decimal
}
