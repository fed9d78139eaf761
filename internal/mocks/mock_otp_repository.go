package mocks

import (
	"context"
	"time"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockOtpRepository implements domain.OtpRepository for testing
type MockOtpRepository struct {
	CreateFunc                 func(ctx context.Context, token *domain.OtpToken) error
	LatestByUserAndPurposeFunc func(ctx context.Context, userID uint, purpose domain.OtpPurpose) (*domain.OtpToken, error)
	ConsumeOnceFunc            func(ctx context.Context, tokenID uint) (bool, error)
	DeleteExpiredBeforeFunc    func(ctx context.Context, cutoff time.Time) error
}

// NewMockOtpRepository creates a new MockOtpRepository with default behaviors
func NewMockOtpRepository() *MockOtpRepository {
	return &MockOtpRepository{}
}

func (m *MockOtpRepository) Create(ctx context.Context, token *domain.OtpToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	token.ID = 1
	return nil
}

func (m *MockOtpRepository) LatestByUserAndPurpose(ctx context.Context, userID uint, purpose domain.OtpPurpose) (*domain.OtpToken, error) {
	if m.LatestByUserAndPurposeFunc != nil {
		return m.LatestByUserAndPurposeFunc(ctx, userID, purpose)
	}
	return nil, domain.ErrOTPNotFound
}

func (m *MockOtpRepository) ConsumeOnce(ctx context.Context, tokenID uint) (bool, error) {
	if m.ConsumeOnceFunc != nil {
		return m.ConsumeOnceFunc(ctx, tokenID)
	}
	return true, nil
}

func (m *MockOtpRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) error {
	if m.DeleteExpiredBeforeFunc != nil {
		return m.DeleteExpiredBeforeFunc(ctx, cutoff)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OtpRepository = (*MockOtpRepository)(nil)
