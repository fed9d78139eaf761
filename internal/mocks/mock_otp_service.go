package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	SendOTPFunc       func(ctx context.Context, email string, purpose domain.OtpPurpose) error
	VerifyOTPFunc     func(ctx context.Context, email, code string, purpose domain.OtpPurpose) (string, error)
	ResetPasswordFunc func(ctx context.Context, token, newPassword string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) SendOTP(ctx context.Context, email string, purpose domain.OtpPurpose) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, email, purpose)
	}
	return nil
}

func (m *MockOTPService) VerifyOTP(ctx context.Context, email, code string, purpose domain.OtpPurpose) (string, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code, purpose)
	}
	return "", nil
}

func (m *MockOTPService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
