package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines account data access.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	SetEmailStatus(ctx context.Context, userID uint, status EmailStatus) error
	SetIdentityStatus(ctx context.Context, userID uint, status IdentityStatus) error
	ListByRole(ctx context.Context, role Role) ([]*User, error)
}

// OtpRepository persists the append-only OTP ledger rows.
type OtpRepository interface {
	Create(ctx context.Context, token *OtpToken) error
	// LatestByUserAndPurpose returns the most recently generated row for the
	// pair, or ErrOTPNotFound if none exists. Older rows are never consulted.
	LatestByUserAndPurpose(ctx context.Context, userID uint, purpose OtpPurpose) (*OtpToken, error)
	// ConsumeOnce flips used to true iff it is still false, reporting whether
	// this call won the flip. Concurrent verifiers serialize here.
	ConsumeOnce(ctx context.Context, tokenID uint) (bool, error)
	// DeleteExpiredBefore removes stale rows; housekeeping only, correctness
	// never depends on it.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) error
}

// AuthorityRepository persists authority profiles.
type AuthorityRepository interface {
	Create(ctx context.Context, profile *AuthorityProfile) error
	FindByID(ctx context.Context, id uint) (*AuthorityProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*AuthorityProfile, error)
	ListByUserIdentityStatus(ctx context.Context, status IdentityStatus) ([]*AuthorityProfile, error)
}

// KYCRepository persists identity-document submissions.
type KYCRepository interface {
	Create(ctx context.Context, record *KYCRecord) error
	FindByID(ctx context.Context, id uint) (*KYCRecord, error)
	LatestByUserID(ctx context.Context, userID uint) (*KYCRecord, error)
	ListByStatus(ctx context.Context, status IdentityStatus) ([]*KYCRecord, error)
	Update(ctx context.Context, record *KYCRecord) error
}

// ComplaintRepository persists complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	FindByID(ctx context.Context, id uint) (*Complaint, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Complaint, error)
	ListByStatus(ctx context.Context, status ComplaintStatus) ([]*Complaint, error)
	ListAll(ctx context.Context) ([]*Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status ComplaintStatus) error
}

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, error)
	MarkSeen(ctx context.Context, ids []uint, userID uint) error
	CountUnseen(ctx context.Context, userID uint) (int64, error)
}

// TokenService mints and validates signed, time-bound bearer tokens. The
// subject is always the opaque account ID rendered as a decimal string, for
// session and reset tokens alike.
type TokenService interface {
	IssueSessionToken(userID uint, role Role) (string, error)
	IssueResetToken(userID uint, role Role) (string, error)
	ExtractSubject(token string) (string, error)
	ExtractRole(token string) (string, error)
	IsExpired(token string) bool
	// Validate reports whether the token's subject matches expectedSubject and
	// the token is unexpired. Parse failures yield false, never a panic.
	Validate(token, expectedSubject string) bool
}

// PasswordService defines password hashing.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// Mailer delivers transactional email. Callers treat failures as
// log-and-continue; mail never aborts a primary flow.
type Mailer interface {
	SendOtpEmail(user *User, code string, purpose OtpPurpose) error
	SendApprovalEmail(user *User) error
	SendRejectionEmail(user *User, reason string) error
	SendEmail(to, subject, body string) error
}

// NotificationService stores a notification and pushes it to any live
// websocket connection the user holds.
type NotificationService interface {
	Notify(ctx context.Context, user *User, title, message string) error
	List(ctx context.Context, userID uint, limit, offset int) ([]*Notification, error)
	MarkSeen(ctx context.Context, ids []uint, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

// ObjectStorage stores uploaded binaries and returns opaque object keys.
type ObjectStorage interface {
	UploadImage(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error)
	UploadMedia(ctx context.Context, folder string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

// WebhookForwarder delivers stored complaints to the external automation
// endpoint. Best-effort: callers log and swallow the returned error.
type WebhookForwarder interface {
	ForwardComplaint(ctx context.Context, payload *WebhookPayload) error
}

// OTPService is the orchestrator over the OTP ledger and token codec.
type OTPService interface {
	// SendOTP generates and mails a code for (email, purpose).
	SendOTP(ctx context.Context, email string, purpose OtpPurpose) error
	// VerifyOTP consumes the latest code. For PurposeResetPassword the
	// returned string is the reset token; for every other purpose it is empty.
	VerifyOTP(ctx context.Context, email, code string, purpose OtpPurpose) (string, error)
	// ResetPassword validates a reset token and stores the new password hash.
	// Any token problem surfaces as ErrResetTokenInvalid, never a raw parse
	// fault.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// LoginWithGoogle signs in an account whose email Google has already
	// verified, provisioning a citizen account on first contact.
	LoginWithGoogle(ctx context.Context, email, fullName string) (*AuthResult, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}
