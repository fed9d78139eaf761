package domain

import (
	"fmt"
	"strings"
)

// Role identifies the kind of account.
type Role string

const (
	RoleCitizen   Role = "CITIZEN"
	RoleAuthority Role = "AUTHORITY"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole maps a free-form role string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleCitizen:
		return RoleCitizen, nil
	case RoleAuthority:
		return RoleAuthority, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// EmailStatus tracks email ownership verification.
type EmailStatus string

const (
	EmailUnverified EmailStatus = "UNVERIFIED"
	EmailPending    EmailStatus = "PENDING"
	EmailVerified   EmailStatus = "VERIFIED"
)

// IdentityStatus tracks admin-side KYC / authority approval.
type IdentityStatus string

const (
	IdentityUnverified IdentityStatus = "UNVERIFIED"
	IdentityPending    IdentityStatus = "PENDING"
	IdentityVerified   IdentityStatus = "VERIFIED"
	IdentityRejected   IdentityStatus = "REJECTED"
)

// OtpPurpose is the closed set of reasons an OTP can be issued. Adding a
// purpose requires extending Subject and MessageBody as well, which is the
// point: templates and verify branches cannot drift out of sync silently.
type OtpPurpose string

const (
	PurposeVerifyEmail   OtpPurpose = "VERIFY_EMAIL"
	PurposeResetPassword OtpPurpose = "RESET_PASSWORD"
)

// ParseOtpPurpose matches case-insensitively so the HTTP path segment can be
// written either way.
func ParseOtpPurpose(s string) (OtpPurpose, error) {
	switch OtpPurpose(strings.ToUpper(strings.TrimSpace(s))) {
	case PurposeVerifyEmail:
		return PurposeVerifyEmail, nil
	case PurposeResetPassword:
		return PurposeResetPassword, nil
	}
	return "", fmt.Errorf("%w: %s", ErrOTPPurposeUnknown, s)
}

// Subject returns the mail subject line for this purpose.
func (p OtpPurpose) Subject() string {
	switch p {
	case PurposeVerifyEmail:
		return "Verify your email"
	case PurposeResetPassword:
		return "Reset your password"
	}
	return "Your verification code"
}

// MessageBody formats the purpose-specific OTP mail body.
func (p OtpPurpose) MessageBody(fullName, code string) string {
	action := "verify your email"
	if p == PurposeResetPassword {
		action = "reset your password"
	}
	return fmt.Sprintf(
		"Hi %s,\n\nYour OTP to %s is: %s\n\nThis OTP is valid for 5 minutes.\n\nHamroGunaso Security Team",
		fullName, action, code,
	)
}

// ComplaintStatus is the complaint workflow state.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintRejected   ComplaintStatus = "REJECTED"
)

// ParseComplaintStatus maps a status string onto the closed workflow set.
func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch ComplaintStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ComplaintPending:
		return ComplaintPending, nil
	case ComplaintInProgress:
		return ComplaintInProgress, nil
	case ComplaintResolved:
		return ComplaintResolved, nil
	case ComplaintRejected:
		return ComplaintRejected, nil
	}
	return "", fmt.Errorf("unknown complaint status %q", s)
}

// AuthorityType is the service domain an authority account belongs to.
type AuthorityType string

const (
	AuthorityElectricity AuthorityType = "ELECTRICITY"
	AuthorityWater       AuthorityType = "WATER"
	AuthorityRoads       AuthorityType = "ROADS"
	AuthorityWaste       AuthorityType = "WASTE"
	AuthorityOther       AuthorityType = "OTHER"
)

// ParseAuthorityType maps a free-form string onto the authority type set.
func ParseAuthorityType(s string) (AuthorityType, error) {
	switch AuthorityType(strings.ToUpper(strings.TrimSpace(s))) {
	case AuthorityElectricity:
		return AuthorityElectricity, nil
	case AuthorityWater:
		return AuthorityWater, nil
	case AuthorityRoads:
		return AuthorityRoads, nil
	case AuthorityWaste:
		return AuthorityWaste, nil
	case AuthorityOther:
		return AuthorityOther, nil
	}
	return "", fmt.Errorf("unknown authority type %q", s)
}
