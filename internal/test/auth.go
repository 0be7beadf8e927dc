package test

import (
	pkgAuth "github.com/fixhive/fixhive/internal/pkg/auth"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64, pkgAuth.Role) (string, error)
	ParseFn func(string) (int64, pkgAuth.Role, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subjectID int64, role pkgAuth.Role) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subjectID, role)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, pkgAuth.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, pkgAuth.RoleCustomer, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Role    pkgAuth.Role
	Err     error
	ParseFn func(string) (int64, pkgAuth.Role, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, pkgAuth.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, "", s.Err
	}
	return s.ID, s.Role, nil
}

var _ pkgAuth.Strategy = StrategyStub{}
