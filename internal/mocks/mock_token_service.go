package mocks

import (
	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueSessionTokenFunc func(userID uint, role domain.Role) (string, error)
	IssueResetTokenFunc   func(userID uint, role domain.Role) (string, error)
	ExtractSubjectFunc    func(token string) (string, error)
	ExtractRoleFunc       func(token string) (string, error)
	IsExpiredFunc         func(token string) bool
	ValidateFunc          func(token, expectedSubject string) bool
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) IssueSessionToken(userID uint, role domain.Role) (string, error) {
	if m.IssueSessionTokenFunc != nil {
		return m.IssueSessionTokenFunc(userID, role)
	}
	return "session-token", nil
}

func (m *MockTokenService) IssueResetToken(userID uint, role domain.Role) (string, error) {
	if m.IssueResetTokenFunc != nil {
		return m.IssueResetTokenFunc(userID, role)
	}
	return "reset-token", nil
}

func (m *MockTokenService) ExtractSubject(token string) (string, error) {
	if m.ExtractSubjectFunc != nil {
		return m.ExtractSubjectFunc(token)
	}
	return "1", nil
}

func (m *MockTokenService) ExtractRole(token string) (string, error) {
	if m.ExtractRoleFunc != nil {
		return m.ExtractRoleFunc(token)
	}
	return string(domain.RoleCitizen), nil
}

func (m *MockTokenService) IsExpired(token string) bool {
	if m.IsExpiredFunc != nil {
		return m.IsExpiredFunc(token)
	}
	return false
}

func (m *MockTokenService) Validate(token, expectedSubject string) bool {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token, expectedSubject)
	}
	return true
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
