package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/mocks"
)

func newComplaintServiceForTest(
	complaintRepo *mocks.MockComplaintRepository,
	userRepo *mocks.MockUserRepository,
	store *mocks.MockObjectStorage,
	forwarder *mocks.MockWebhookForwarder,
	notificationSvc *mocks.MockNotificationService,
) *ComplaintService {
	return NewComplaintService(complaintRepo, userRepo, store, forwarder, notificationSvc, zap.NewNop())
}

func complaintTestUser() *domain.User {
	return &domain.User{ID: 42, FullName: "Sita Sharma", Email: "sita@example.com", Role: domain.RoleCitizen}
}

func imageUpload(content string) FileUpload {
	return FileUpload{Reader: strings.NewReader(content), Size: int64(len(content)), ContentType: "image/jpeg"}
}

func TestComplaintService_Submit(t *testing.T) {
	t.Run("stores media keys and forwards to the webhook", func(t *testing.T) {
		complaintRepo := mocks.NewMockComplaintRepository()
		userRepo := mocks.NewMockUserRepository()
		forwarder := mocks.NewMockWebhookForwarder()

		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return complaintTestUser(), nil
		}

		var forwarded *domain.WebhookPayload
		forwarder.ForwardComplaintFunc = func(ctx context.Context, payload *domain.WebhookPayload) error {
			forwarded = payload
			return nil
		}

		voice := FileUpload{Reader: strings.NewReader("audio"), Size: 5, ContentType: "audio/mpeg"}
		svc := newComplaintServiceForTest(complaintRepo, userRepo, mocks.NewMockObjectStorage(), forwarder, mocks.NewMockNotificationService())
		complaint, err := svc.Submit(context.Background(), 42, ComplaintInput{
			Text:      "Water pipe leaking",
			Latitude:  27.7,
			Longitude: 85.3,
			Address:   "Baneshwor, Kathmandu",
			Voice:     &voice,
			Media:     []FileUpload{imageUpload("a"), imageUpload("b")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if complaint.Status != domain.ComplaintPending {
			t.Errorf("new complaints must start pending, got %s", complaint.Status)
		}
		if complaint.VoiceKey == "" {
			t.Error("voice key was not stored")
		}
		if len(complaint.MediaKeys) != 2 {
			t.Errorf("expected 2 media keys, got %d", len(complaint.MediaKeys))
		}
		if forwarded == nil {
			t.Fatal("complaint was not forwarded")
		}
		if forwarded.ComplaintID != complaint.ID || forwarded.Text != complaint.Text {
			t.Errorf("forwarded payload mismatch: %+v", forwarded)
		}
	})

	t.Run("webhook failure does not fail the submission", func(t *testing.T) {
		complaintRepo := mocks.NewMockComplaintRepository()
		userRepo := mocks.NewMockUserRepository()
		forwarder := mocks.NewMockWebhookForwarder()

		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return complaintTestUser(), nil
		}
		forwarder.ForwardComplaintFunc = func(ctx context.Context, payload *domain.WebhookPayload) error {
			return errors.New("endpoint unreachable")
		}

		svc := newComplaintServiceForTest(complaintRepo, userRepo, mocks.NewMockObjectStorage(), forwarder, mocks.NewMockNotificationService())
		if _, err := svc.Submit(context.Background(), 42, ComplaintInput{Text: "Road blocked"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non media attachments", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return complaintTestUser(), nil
		}

		svc := newComplaintServiceForTest(mocks.NewMockComplaintRepository(), userRepo, mocks.NewMockObjectStorage(), mocks.NewMockWebhookForwarder(), mocks.NewMockNotificationService())
		_, err := svc.Submit(context.Background(), 42, ComplaintInput{
			Text:  "Attached my tax return by mistake",
			Media: []FileUpload{{Reader: strings.NewReader("x"), Size: 1, ContentType: "application/pdf"}},
		})
		if !errors.Is(err, domain.ErrInvalidFileType) {
			t.Fatalf("expected ErrInvalidFileType, got %v", err)
		}
	})
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	complaintRepo := mocks.NewMockComplaintRepository()
	userRepo := mocks.NewMockUserRepository()
	notificationSvc := mocks.NewMockNotificationService()

	complaintRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Complaint, error) {
		return &domain.Complaint{ID: id, UserID: 42, Text: "Water pipe leaking", Status: domain.ComplaintPending}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return complaintTestUser(), nil
	}

	var notifiedUser uint
	var notifiedMessage string
	notificationSvc.NotifyFunc = func(ctx context.Context, user *domain.User, title, message string) error {
		notifiedUser = user.ID
		notifiedMessage = message
		return nil
	}

	svc := newComplaintServiceForTest(complaintRepo, userRepo, mocks.NewMockObjectStorage(), mocks.NewMockWebhookForwarder(), notificationSvc)
	complaint, err := svc.UpdateStatus(context.Background(), 7, domain.ComplaintResolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if complaint.Status != domain.ComplaintResolved {
		t.Errorf("expected resolved status, got %s", complaint.Status)
	}
	if notifiedUser != 42 {
		t.Errorf("complainant 42 was not notified, got %d", notifiedUser)
	}
	if !strings.Contains(notifiedMessage, "#7") {
		t.Errorf("notification should name the complaint, got %q", notifiedMessage)
	}
}

func TestComplaintService_UpdateStatus_NotificationFailureTolerated(t *testing.T) {
	complaintRepo := mocks.NewMockComplaintRepository()
	userRepo := mocks.NewMockUserRepository()
	notificationSvc := mocks.NewMockNotificationService()

	complaintRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Complaint, error) {
		return &domain.Complaint{ID: id, UserID: 42, Status: domain.ComplaintPending}, nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return complaintTestUser(), nil
	}
	notificationSvc.NotifyFunc = func(ctx context.Context, user *domain.User, title, message string) error {
		return errors.New("hub down")
	}

	svc := newComplaintServiceForTest(complaintRepo, userRepo, mocks.NewMockObjectStorage(), mocks.NewMockWebhookForwarder(), notificationSvc)
	if _, err := svc.UpdateStatus(context.Background(), 7, domain.ComplaintInProgress); err != nil {
		t.Fatalf("notification failure must not fail the transition: %v", err)
	}
}
