package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

func samplePayload() *domain.WebhookPayload {
	return &domain.WebhookPayload{
		UserID:      42,
		ComplaintID: 7,
		Text:        "Street light broken near the temple",
		VoiceURL:    "https://storage.local/complaints/voice/abc.mp3",
		Location:    map[string]float64{"latitude": 27.7172, "longitude": 85.3240},
		Media:       []string{"complaints/media/one.jpg"},
		Timestamp:   time.Now(),
	}
}

func TestForwarder_ForwardComplaint(t *testing.T) {
	var gotBody domain.WebhookPayload
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewForwarder(srv.URL, "hook-secret", 5*time.Second)
	if err := f.ForwardComplaint(context.Background(), samplePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer hook-secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected json content type, got %q", gotContentType)
	}
	if gotBody.ComplaintID != 7 || gotBody.UserID != 42 {
		t.Errorf("payload mangled in transit: %+v", gotBody)
	}
	if gotBody.Location["latitude"] != 27.7172 {
		t.Errorf("location missing from payload: %+v", gotBody.Location)
	}
}

func TestForwarder_Non2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewForwarder(srv.URL, "", 5*time.Second)
	if err := f.ForwardComplaint(context.Background(), samplePayload()); err == nil {
		t.Fatal("expected an error on a 502 response")
	}
}

func TestForwarder_EmptyURLIsNoop(t *testing.T) {
	f := NewForwarder("", "", 5*time.Second)
	if err := f.ForwardComplaint(context.Background(), samplePayload()); err != nil {
		t.Fatalf("empty url must be a silent noop, got %v", err)
	}
}

func TestForwarder_NoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewForwarder(srv.URL, "", 5*time.Second)
	if err := f.ForwardComplaint(context.Background(), samplePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawAuth {
		t.Error("auth header must be omitted when no token is configured")
	}
}
