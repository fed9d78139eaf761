package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc            func(ctx context.Context, user *domain.User) error
	SetEmailStatusFunc    func(ctx context.Context, userID uint, status domain.EmailStatus) error
	SetIdentityStatusFunc func(ctx context.Context, userID uint, status domain.IdentityStatus) error
	ListByRoleFunc        func(ctx context.Context, role domain.Role) ([]*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) SetEmailStatus(ctx context.Context, userID uint, status domain.EmailStatus) error {
	if m.SetEmailStatusFunc != nil {
		return m.SetEmailStatusFunc(ctx, userID, status)
	}
	return nil
}

func (m *MockUserRepository) SetIdentityStatus(ctx context.Context, userID uint, status domain.IdentityStatus) error {
	if m.SetIdentityStatusFunc != nil {
		return m.SetIdentityStatusFunc(ctx, userID, status)
	}
	return nil
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
