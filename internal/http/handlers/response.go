package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// ApiResponse is the envelope every endpoint answers with. Data is omitted
// when a handler has nothing beyond the message to return, but the envelope
// itself is never empty.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiResponse{Success: status < 400, Message: message, Data: data})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, message, data)
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, message, data)
}

func respondError(c *gin.Context, err error, fallback string) {
	status, message := statusFor(err)
	if message == "" {
		message = fallback
	}
	respond(c, status, message, nil)
}

// statusFor maps domain sentinels to HTTP status codes. Unknown errors map
// to 500 with an empty message so callers substitute their own wording and
// internals never leak.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrOTPNotFound):
		return http.StatusBadRequest, "No OTP found. Please request a new one."
	case errors.Is(err, domain.ErrOTPMismatch):
		return http.StatusBadRequest, "Invalid OTP code."
	case errors.Is(err, domain.ErrOTPExpired):
		return http.StatusBadRequest, "OTP has expired. Please request a new one."
	case errors.Is(err, domain.ErrOTPAlreadyUsed):
		return http.StatusBadRequest, "OTP has already been used."
	case errors.Is(err, domain.ErrOTPRateLimited):
		return http.StatusTooManyRequests, "Please wait before requesting another OTP."
	case errors.Is(err, domain.ErrOTPPurposeUnknown):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusUnauthorized, "Reset token is invalid or expired."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found."
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, "Email is already registered."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, domain.ErrEmailNotVerified):
		return http.StatusForbidden, "Email is not verified."
	case errors.Is(err, domain.ErrIdentityNotVerified):
		return http.StatusForbidden, "Identity is not verified yet."
	case errors.Is(err, domain.ErrKYCNotFound):
		return http.StatusNotFound, "KYC record not found."
	case errors.Is(err, domain.ErrKYCAlreadyPending):
		return http.StatusConflict, "A KYC submission is already pending review."
	case errors.Is(err, domain.ErrComplaintNotFound):
		return http.StatusNotFound, "Complaint not found."
	case errors.Is(err, domain.ErrAuthorityNotFound):
		return http.StatusNotFound, "Authority profile not found."
	case errors.Is(err, domain.ErrFileMissing):
		return http.StatusBadRequest, "Required file is missing."
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "Uploaded file is too large."
	case errors.Is(err, domain.ErrInvalidFileType):
		return http.StatusBadRequest, "Unsupported file type."
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Authentication required."
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, "Access denied."
	default:
		return http.StatusInternalServerError, ""
	}
}
