package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockComplaintRepository implements domain.ComplaintRepository for testing
type MockComplaintRepository struct {
	CreateFunc       func(ctx context.Context, complaint *domain.Complaint) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Complaint, error)
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]*domain.Complaint, error)
	ListByStatusFunc func(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error)
	ListAllFunc      func(ctx context.Context) ([]*domain.Complaint, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.ComplaintStatus) error
}

// NewMockComplaintRepository creates a new MockComplaintRepository with default behaviors
func NewMockComplaintRepository() *MockComplaintRepository {
	return &MockComplaintRepository{}
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, complaint)
	}
	complaint.ID = 1
	return nil
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrComplaintNotFound
}

func (m *MockComplaintRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.Complaint, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockComplaintRepository) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockComplaintRepository) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockComplaintRepository) UpdateStatus(ctx context.Context, id uint, status domain.ComplaintStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ComplaintRepository = (*MockComplaintRepository)(nil)
