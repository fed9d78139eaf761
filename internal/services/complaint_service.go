package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// ComplaintInput is one complaint submission.
type ComplaintInput struct {
	Text      string
	Latitude  float64
	Longitude float64
	Address   string
	Voice     *FileUpload
	Media     []FileUpload
}

// ComplaintService handles complaint intake and workflow.
type ComplaintService struct {
	complaintRepo   domain.ComplaintRepository
	userRepo        domain.UserRepository
	store           domain.ObjectStorage
	forwarder       domain.WebhookForwarder
	notificationSvc domain.NotificationService
	logger          *zap.Logger
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(
	complaintRepo domain.ComplaintRepository,
	userRepo domain.UserRepository,
	store domain.ObjectStorage,
	forwarder domain.WebhookForwarder,
	notificationSvc domain.NotificationService,
	logger *zap.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo:   complaintRepo,
		userRepo:        userRepo,
		store:           store,
		forwarder:       forwarder,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Submit stores the complaint with its media and forwards it to the external
// automation webhook. Forwarding is strictly best-effort: its failure is
// logged and the submission still succeeds.
func (s *ComplaintService) Submit(ctx context.Context, userID uint, input ComplaintInput) (*domain.Complaint, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var voiceKey string
	if input.Voice != nil {
		voiceKey, err = s.store.UploadMedia(ctx, "complaints/voice", input.Voice.Reader, input.Voice.Size, input.Voice.ContentType)
		if err != nil {
			return nil, fmt.Errorf("voice clip: %w", err)
		}
	}

	mediaKeys := make([]string, 0, len(input.Media))
	for i, file := range input.Media {
		if !supportedComplaintMedia(file.ContentType) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, file.ContentType)
		}
		key, err := s.store.UploadMedia(ctx, "complaints/media", file.Reader, file.Size, file.ContentType)
		if err != nil {
			return nil, fmt.Errorf("media file %d: %w", i+1, err)
		}
		mediaKeys = append(mediaKeys, key)
	}

	complaint := &domain.Complaint{
		UserID:    user.ID,
		Text:      input.Text,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
		VoiceKey:  voiceKey,
		MediaKeys: mediaKeys,
		Status:    domain.ComplaintPending,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to store complaint: %w", err)
	}

	if err := s.forwarder.ForwardComplaint(ctx, s.buildWebhookPayload(complaint)); err != nil {
		s.logger.Error("webhook push failed",
			zap.Uint("complaint_id", complaint.ID), zap.Error(err))
	}

	s.logger.Info("complaint registered",
		zap.Uint("complaint_id", complaint.ID), zap.Uint("user_id", user.ID))
	return complaint, nil
}

// Get returns one complaint.
func (s *ComplaintService) Get(ctx context.Context, id uint) (*domain.Complaint, error) {
	return s.complaintRepo.FindByID(ctx, id)
}

// ListMine returns the user's complaints, newest first.
func (s *ComplaintService) ListMine(ctx context.Context, userID uint) ([]*domain.Complaint, error) {
	return s.complaintRepo.ListByUserID(ctx, userID)
}

// ListByStatus returns complaints in one workflow state.
func (s *ComplaintService) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error) {
	return s.complaintRepo.ListByStatus(ctx, status)
}

// UpdateStatus moves a complaint through the workflow and notifies the
// complainant. Notification failure does not roll back the transition.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id uint, status domain.ComplaintStatus) (*domain.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.complaintRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	complaint.Status = status

	user, err := s.userRepo.FindByID(ctx, complaint.UserID)
	if err == nil {
		title := "Complaint " + strings.ToLower(strings.ReplaceAll(string(status), "_", " "))
		message := fmt.Sprintf("Your complaint #%d is now %s.", complaint.ID, status)
		if err := s.notificationSvc.Notify(ctx, user, title, message); err != nil {
			s.logger.Warn("status notification failed",
				zap.Uint("complaint_id", complaint.ID), zap.Error(err))
		}
	}
	return complaint, nil
}

func (s *ComplaintService) buildWebhookPayload(complaint *domain.Complaint) *domain.WebhookPayload {
	return &domain.WebhookPayload{
		UserID:      complaint.UserID,
		ComplaintID: complaint.ID,
		Text:        complaint.Text,
		VoiceURL:    complaint.VoiceKey,
		Location: map[string]float64{
			"lat": complaint.Latitude,
			"lng": complaint.Longitude,
		},
		Media:     complaint.MediaKeys,
		Timestamp: complaint.CreatedAt,
	}
}

func supportedComplaintMedia(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/")
}
