package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/internal/services"
)

// AdminHandlers handles admin review endpoints.
type AdminHandlers struct {
	adminSvc *services.AdminService
}

// NewAdminHandlers creates new admin handlers.
func NewAdminHandlers(adminSvc *services.AdminService) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc}
}

// RejectRequest carries the rejection reason shown to the applicant.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PendingKYC handles GET /api/admin/pending-kyc.
func (h *AdminHandlers) PendingKYC(c *gin.Context) {
	records, err := h.adminSvc.PendingKYC(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pending KYC.")
		return
	}
	respondOK(c, "Pending KYC submissions loaded.", records)
}

// ApproveKYC handles POST /api/admin/kyc/:id/approve.
func (h *AdminHandlers) ApproveKYC(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.adminSvc.ApproveKYC(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to approve KYC.")
		return
	}
	respondOK(c, "KYC approved.", nil)
}

// RejectKYC handles POST /api/admin/kyc/:id/reject.
func (h *AdminHandlers) RejectKYC(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.adminSvc.RejectKYC(c.Request.Context(), id, req.Reason); err != nil {
		respondError(c, err, "Failed to reject KYC.")
		return
	}
	respondOK(c, "KYC rejected.", nil)
}

// PendingAuthorities handles GET /api/admin/authorities/pending.
func (h *AdminHandlers) PendingAuthorities(c *gin.Context) {
	profiles, err := h.adminSvc.PendingAuthorities(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pending authorities.")
		return
	}
	respondOK(c, "Pending authorities loaded.", profiles)
}

// ApproveAuthority handles POST /api/admin/authorities/:id/approve.
func (h *AdminHandlers) ApproveAuthority(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.adminSvc.ApproveAuthority(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to approve authority.")
		return
	}
	respondOK(c, "Authority approved.", nil)
}

// RejectAuthority handles POST /api/admin/authorities/:id/reject.
func (h *AdminHandlers) RejectAuthority(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.adminSvc.RejectAuthority(c.Request.Context(), id, req.Reason); err != nil {
		respondError(c, err, "Failed to reject authority.")
		return
	}
	respondOK(c, "Authority rejected.", nil)
}

// Users handles GET /api/admin/users.
func (h *AdminHandlers) Users(c *gin.Context) {
	users, err := h.adminSvc.ListCitizens(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list users.")
		return
	}
	views := make([]gin.H, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	respondOK(c, "Users loaded.", views)
}

// Complaints handles GET /api/admin/complaints.
func (h *AdminHandlers) Complaints(c *gin.Context) {
	complaints, err := h.adminSvc.ListComplaints(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list complaints.")
		return
	}
	respondOK(c, "Complaints loaded.", complaintViews(complaints))
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return 0, false
	}
	return uint(id), true
}
