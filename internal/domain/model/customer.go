package model

import "time"

// Customer is an ordering user. Registration and session issuance live in
// an external service that writes the same table.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
