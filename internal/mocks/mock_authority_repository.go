package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockAuthorityRepository implements domain.AuthorityRepository for testing
type MockAuthorityRepository struct {
	CreateFunc                   func(ctx context.Context, profile *domain.AuthorityProfile) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*domain.AuthorityProfile, error)
	FindByUserIDFunc             func(ctx context.Context, userID uint) (*domain.AuthorityProfile, error)
	ListByUserIdentityStatusFunc func(ctx context.Context, status domain.IdentityStatus) ([]*domain.AuthorityProfile, error)
}

// NewMockAuthorityRepository creates a new MockAuthorityRepository with default behaviors
func NewMockAuthorityRepository() *MockAuthorityRepository {
	return &MockAuthorityRepository{}
}

func (m *MockAuthorityRepository) Create(ctx context.Context, profile *domain.AuthorityProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	profile.ID = 1
	return nil
}

func (m *MockAuthorityRepository) FindByID(ctx context.Context, id uint) (*domain.AuthorityProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAuthorityNotFound
}

func (m *MockAuthorityRepository) FindByUserID(ctx context.Context, userID uint) (*domain.AuthorityProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrAuthorityNotFound
}

func (m *MockAuthorityRepository) ListByUserIdentityStatus(ctx context.Context, status domain.IdentityStatus) ([]*domain.AuthorityProfile, error) {
	if m.ListByUserIdentityStatusFunc != nil {
		return m.ListByUserIdentityStatusFunc(ctx, status)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AuthorityRepository = (*MockAuthorityRepository)(nil)
