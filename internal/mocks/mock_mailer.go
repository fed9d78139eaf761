package mocks

import (
	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendOtpEmailFunc       func(user *domain.User, code string, purpose domain.OtpPurpose) error
	SendApprovalEmailFunc  func(user *domain.User) error
	SendRejectionEmailFunc func(user *domain.User, reason string) error
	SendEmailFunc          func(to, subject, body string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendOtpEmail(user *domain.User, code string, purpose domain.OtpPurpose) error {
	if m.SendOtpEmailFunc != nil {
		return m.SendOtpEmailFunc(user, code, purpose)
	}
	return nil
}

func (m *MockMailer) SendApprovalEmail(user *domain.User) error {
	if m.SendApprovalEmailFunc != nil {
		return m.SendApprovalEmailFunc(user)
	}
	return nil
}

func (m *MockMailer) SendRejectionEmail(user *domain.User, reason string) error {
	if m.SendRejectionEmailFunc != nil {
		return m.SendRejectionEmailFunc(user, reason)
	}
	return nil
}

func (m *MockMailer) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
