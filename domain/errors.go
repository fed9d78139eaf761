package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrIdentityNotVerified = errors.New("identity is not approved")
)

// OTP errors. These are the user-recoverable verify/generate outcomes; the
// orchestrator translates each into a distinct user-facing message, never a
// generic failure.
var (
	ErrOTPNotFound       = errors.New("no otp found for this user")
	ErrOTPMismatch       = errors.New("incorrect otp")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPAlreadyUsed    = errors.New("otp already used")
	ErrOTPRateLimited    = errors.New("please wait before requesting another otp")
	ErrOTPPurposeUnknown = errors.New("invalid otp purpose")
)

// Token errors
var (
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")
)

// KYC errors
var (
	ErrKYCNotFound       = errors.New("kyc record not found")
	ErrKYCAlreadyPending = errors.New("a kyc submission is already pending review")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrAuthorityNotFound = errors.New("authority profile not found")
)

// File/storage errors
var (
	ErrFileMissing     = errors.New("file missing")
	ErrFileTooLarge    = errors.New("file size exceeds the allowed limit")
	ErrInvalidFileType = errors.New("invalid file type")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
