package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockWebhookForwarder implements domain.WebhookForwarder for testing
type MockWebhookForwarder struct {
	ForwardComplaintFunc func(ctx context.Context, payload *domain.WebhookPayload) error
}

// NewMockWebhookForwarder creates a new MockWebhookForwarder with default behaviors
func NewMockWebhookForwarder() *MockWebhookForwarder {
	return &MockWebhookForwarder{}
}

func (m *MockWebhookForwarder) ForwardComplaint(ctx context.Context, payload *domain.WebhookPayload) error {
	if m.ForwardComplaintFunc != nil {
		return m.ForwardComplaintFunc(ctx, payload)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.WebhookForwarder = (*MockWebhookForwarder)(nil)
