package auth

import "time"

// Role scopes a bearer token to one of the three API audiences.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

// Strategy issues and validates role-scoped bearer credentials. Session
// creation UX lives outside this service; the strategy is the capability
// the middleware and the external issuer share.
type Strategy interface {
	IssueToken(subjectID int64, role Role) (string, error)
	ParseToken(token string) (int64, Role, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
