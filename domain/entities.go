package domain

import "time"

// User represents any account in the system: citizens, authorities and admins
// share one table and are distinguished by role.
type User struct {
	ID             uint
	FullName       string
	Email          string
	PasswordHash   string
	Role           Role
	EmailStatus    EmailStatus
	IdentityStatus IdentityStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OtpToken is one issued one-time code. Rows are append-only history: only
// the most recently generated row per (user, purpose) is ever consulted, and
// the used flag flips false->true exactly once.
type OtpToken struct {
	ID          uint
	UserID      uint
	Code        string
	Purpose     OtpPurpose
	GeneratedAt time.Time
	ExpiresAt   time.Time
	Used        bool
}

// Active reports whether the token can still be consumed at instant now.
func (t *OtpToken) Active(now time.Time) bool {
	return !t.Used && t.ExpiresAt.After(now)
}

// AuthorityProfile carries the authority-specific registration data attached
// to a user with RoleAuthority.
type AuthorityProfile struct {
	ID                uint
	UserID            uint
	AuthorityType     AuthorityType
	CitizenshipNumber string
	PhotoKey          string
	FrontImageKey     string
	BackImageKey      string
	IdentityCardKey   string
	CreatedAt         time.Time
}

// KYCRecord is one identity-document submission awaiting admin review.
type KYCRecord struct {
	ID           uint
	UserID       uint
	DocumentType string
	FrontKey     string
	BackKey      string
	PhotoKey     string
	Status       IdentityStatus
	SubmittedAt  time.Time
	VerifiedAt   *time.Time
}

// Complaint is a citizen complaint with optional media attachments stored in
// object storage; only the object keys live in the row.
type Complaint struct {
	ID        uint
	UserID    uint
	Text      string
	Latitude  float64
	Longitude float64
	Address   string
	VoiceKey  string
	MediaKeys []string
	Status    ComplaintStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notification is one persisted in-app notification; delivery over the
// websocket hub is best-effort on top of the stored row.
type Notification struct {
	ID        uint
	UserID    uint
	Title     string
	Message   string
	Seen      bool
	CreatedAt time.Time
}

// AuthResult is the login outcome.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// WebhookPayload is the JSON document forwarded to the external automation
// webhook after a complaint is stored. Field names are part of the contract
// with the receiving workflow.
type WebhookPayload struct {
	UserID      uint               `json:"user_id"`
	ComplaintID uint               `json:"complaint_id"`
	Text        string             `json:"text"`
	VoiceURL    string             `json:"voice_url,omitempty"`
	Location    map[string]float64 `json:"location"`
	Media       []string           `json:"media,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}
