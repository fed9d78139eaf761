package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// OTPHandlers handles OTP issuance, verification and password reset.
type OTPHandlers struct {
	otpSvc domain.OTPService
}

// NewOTPHandlers creates new OTP handlers.
func NewOTPHandlers(otpSvc domain.OTPService) *OTPHandlers {
	return &OTPHandlers{otpSvc: otpSvc}
}

// SendOTPRequest carries the target account's email.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest carries the email and the submitted code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"otp" binding:"required"`
}

// ResetPasswordRequest carries the reset token and the new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// SendOTP handles POST /api/otp/send/:purpose.
func (h *OTPHandlers) SendOTP(c *gin.Context) {
	purpose, err := domain.ParseOtpPurpose(c.Param("purpose"))
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid OTP purpose: "+c.Param("purpose"), nil)
		return
	}

	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.otpSvc.SendOTP(c.Request.Context(), req.Email, purpose); err != nil {
		respondError(c, err, "Failed to send OTP.")
		return
	}

	respondOK(c, "OTP sent to "+req.Email, nil)
}

// VerifyOTP handles POST /api/otp/verify/:purpose. For the password-reset
// purpose the response data carries the reset token.
func (h *OTPHandlers) VerifyOTP(c *gin.Context) {
	purpose, err := domain.ParseOtpPurpose(c.Param("purpose"))
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid OTP purpose: "+c.Param("purpose"), nil)
		return
	}

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	resetToken, err := h.otpSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code, purpose)
	if err != nil {
		respondError(c, err, "OTP verification failed.")
		return
	}

	switch purpose {
	case domain.PurposeResetPassword:
		respondOK(c, "OTP verified. Use the token to reset your password.", gin.H{
			"resetToken": resetToken,
		})
	default:
		respondOK(c, "Email verified successfully.", nil)
	}
}

// ResetPassword handles POST /api/otp/reset-password.
func (h *OTPHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.otpSvc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err, "Password reset failed.")
		return
	}

	respondOK(c, "Password has been reset. You can now log in.", nil)
}
