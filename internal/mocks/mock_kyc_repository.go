package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockKYCRepository implements domain.KYCRepository for testing
type MockKYCRepository struct {
	CreateFunc         func(ctx context.Context, record *domain.KYCRecord) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.KYCRecord, error)
	LatestByUserIDFunc func(ctx context.Context, userID uint) (*domain.KYCRecord, error)
	ListByStatusFunc   func(ctx context.Context, status domain.IdentityStatus) ([]*domain.KYCRecord, error)
	UpdateFunc         func(ctx context.Context, record *domain.KYCRecord) error
}

// NewMockKYCRepository creates a new MockKYCRepository with default behaviors
func NewMockKYCRepository() *MockKYCRepository {
	return &MockKYCRepository{}
}

func (m *MockKYCRepository) Create(ctx context.Context, record *domain.KYCRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	record.ID = 1
	return nil
}

func (m *MockKYCRepository) FindByID(ctx context.Context, id uint) (*domain.KYCRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrKYCNotFound
}

func (m *MockKYCRepository) LatestByUserID(ctx context.Context, userID uint) (*domain.KYCRecord, error) {
	if m.LatestByUserIDFunc != nil {
		return m.LatestByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrKYCNotFound
}

func (m *MockKYCRepository) ListByStatus(ctx context.Context, status domain.IdentityStatus) ([]*domain.KYCRecord, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockKYCRepository) Update(ctx context.Context, record *domain.KYCRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.KYCRepository = (*MockKYCRepository)(nil)
