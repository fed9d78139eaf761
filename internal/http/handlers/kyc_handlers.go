package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/internal/services"
)

// KYCHandlers handles identity-document submission.
type KYCHandlers struct {
	kycSvc *services.KYCService
}

// NewKYCHandlers creates new KYC handlers.
func NewKYCHandlers(kycSvc *services.KYCService) *KYCHandlers {
	return &KYCHandlers{kycSvc: kycSvc}
}

// Submit handles POST /api/users/kyc with documentType plus front, back and
// photo image uploads.
func (h *KYCHandlers) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	documentType := c.PostForm("documentType")
	if documentType == "" {
		respond(c, http.StatusBadRequest, "documentType is required.", nil)
		return
	}

	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	uploads := make(map[string]services.FileUpload, 3)
	for _, field := range []string{"front", "back", "photo"} {
		upload, file, err := formUpload(c, field)
		if err != nil {
			respond(c, http.StatusBadRequest, "Required file is missing: "+field, nil)
			return
		}
		closers = append(closers, file)
		uploads[field] = upload
	}

	record, err := h.kycSvc.Submit(c.Request.Context(), userID, documentType,
		uploads["front"], uploads["back"], uploads["photo"])
	if err != nil {
		respondError(c, err, "Failed to submit KYC.")
		return
	}

	respondCreated(c, "KYC submitted. An admin will review it shortly.", gin.H{
		"kycId":  record.ID,
		"status": record.Status,
	})
}

// Latest handles GET /api/users/kyc for the authenticated user.
func (h *KYCHandlers) Latest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	record, err := h.kycSvc.Latest(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load KYC record.")
		return
	}

	respondOK(c, "KYC record loaded.", gin.H{
		"kycId":        record.ID,
		"documentType": record.DocumentType,
		"status":       record.Status,
		"submittedAt":  record.SubmittedAt,
		"verifiedAt":   record.VerifiedAt,
	})
}
