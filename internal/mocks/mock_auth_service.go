package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc        func(ctx context.Context, fullName, email, password string, role domain.Role) (*domain.User, error)
	LoginFunc           func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LoginWithGoogleFunc func(ctx context.Context, email, fullName string) (*domain.AuthResult, error)
	ProfileFunc         func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, fullName, email, password string, role domain.Role) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, fullName, email, password, role)
	}
	return &domain.User{ID: 1, FullName: fullName, Email: email, Role: role}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:      &domain.User{ID: 1, Email: email, Role: domain.RoleCitizen},
		Token:     "session-token",
		ExpiresIn: 3600,
	}, nil
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, email, fullName string) (*domain.AuthResult, error) {
	if m.LoginWithGoogleFunc != nil {
		return m.LoginWithGoogleFunc(ctx, email, fullName)
	}
	return &domain.AuthResult{
		User:      &domain.User{ID: 1, FullName: fullName, Email: email, Role: domain.RoleCitizen},
		Token:     "session-token",
		ExpiresIn: 3600,
	}, nil
}

func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return &domain.User{ID: userID}, nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
