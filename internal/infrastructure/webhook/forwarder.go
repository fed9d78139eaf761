package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// Forwarder implements domain.WebhookForwarder: it POSTs stored complaints
// to the external automation endpoint with a bounded timeout. Callers treat
// failures as log-and-continue; forwarding never blocks a submission.
type Forwarder struct {
	client *http.Client
	url    string
	token  string
}

// NewForwarder creates a forwarder. timeout bounds the whole request.
func NewForwarder(url, token string, timeout time.Duration) *Forwarder {
	return &Forwarder{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

// ForwardComplaint implements domain.WebhookForwarder.
func (f *Forwarder) ForwardComplaint(ctx context.Context, payload *domain.WebhookPayload) error {
	if f.url == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed with status %d", resp.StatusCode)
	}
	return nil
}
