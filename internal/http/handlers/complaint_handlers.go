package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/services"
)

// ComplaintHandlers handles complaint intake and workflow requests.
type ComplaintHandlers struct {
	complaintSvc *services.ComplaintService
}

// NewComplaintHandlers creates new complaint handlers.
func NewComplaintHandlers(complaintSvc *services.ComplaintService) *ComplaintHandlers {
	return &ComplaintHandlers{complaintSvc: complaintSvc}
}

// UpdateStatusRequest carries the target workflow status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit handles POST /api/complaints: multipart with text, coordinates and
// optional voice plus media uploads.
func (h *ComplaintHandlers) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	input := services.ComplaintInput{
		Text:    c.PostForm("text"),
		Address: c.PostForm("address"),
	}
	if input.Text == "" {
		respond(c, http.StatusBadRequest, "text is required.", nil)
		return
	}
	if lat := c.PostForm("latitude"); lat != "" {
		v, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			respond(c, http.StatusBadRequest, "latitude must be a number.", nil)
			return
		}
		input.Latitude = v
	}
	if lng := c.PostForm("longitude"); lng != "" {
		v, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			respond(c, http.StatusBadRequest, "longitude must be a number.", nil)
			return
		}
		input.Longitude = v
	}

	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	if upload, file, err := formUpload(c, "voice"); err == nil {
		closers = append(closers, file)
		input.Voice = &upload
	}

	form, err := c.MultipartForm()
	if err == nil {
		for _, header := range form.File["media"] {
			file, err := header.Open()
			if err != nil {
				respond(c, http.StatusBadRequest, "Failed to read media upload.", nil)
				return
			}
			closers = append(closers, file)
			input.Media = append(input.Media, services.FileUpload{
				Reader:      file,
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
			})
		}
	}

	complaint, err := h.complaintSvc.Submit(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "Failed to submit complaint.")
		return
	}

	respondCreated(c, "Complaint submitted.", complaintView(complaint))
}

// Mine handles GET /api/complaints/mine.
func (h *ComplaintHandlers) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	complaints, err := h.complaintSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list complaints.")
		return
	}

	respondOK(c, "Complaints loaded.", complaintViews(complaints))
}

// List handles GET /api/complaints: the authority work queue, filtered by
// workflow status (defaults to pending).
func (h *ComplaintHandlers) List(c *gin.Context) {
	raw := c.DefaultQuery("status", string(domain.ComplaintPending))
	status, err := domain.ParseComplaintStatus(raw)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid complaint status: "+raw, nil)
		return
	}

	complaints, err := h.complaintSvc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to list complaints.")
		return
	}

	respondOK(c, "Complaints loaded.", complaintViews(complaints))
}

// Get handles GET /api/complaints/:id.
func (h *ComplaintHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid complaint id.", nil)
		return
	}

	complaint, err := h.complaintSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err, "Failed to load complaint.")
		return
	}

	// Citizens may only read their own complaints.
	if role, _ := c.Get("user_role"); role == string(domain.RoleCitizen) {
		if userID, ok := currentUserID(c); !ok || complaint.UserID != userID {
			respond(c, http.StatusForbidden, "Access denied.", nil)
			return
		}
	}

	respondOK(c, "Complaint loaded.", complaintView(complaint))
}

// UpdateStatus handles PATCH /api/complaints/:id/status.
func (h *ComplaintHandlers) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid complaint id.", nil)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	status, err := domain.ParseComplaintStatus(req.Status)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid complaint status: "+req.Status, nil)
		return
	}

	complaint, err := h.complaintSvc.UpdateStatus(c.Request.Context(), uint(id), status)
	if err != nil {
		respondError(c, err, "Failed to update complaint status.")
		return
	}

	respondOK(c, "Complaint status updated.", complaintView(complaint))
}

func complaintView(cp *domain.Complaint) gin.H {
	return gin.H{
		"id":        cp.ID,
		"userId":    cp.UserID,
		"text":      cp.Text,
		"latitude":  cp.Latitude,
		"longitude": cp.Longitude,
		"address":   cp.Address,
		"voiceKey":  cp.VoiceKey,
		"mediaKeys": cp.MediaKeys,
		"status":    cp.Status,
		"createdAt": cp.CreatedAt,
		"updatedAt": cp.UpdatedAt,
	}
}

func complaintViews(cps []*domain.Complaint) []gin.H {
	views := make([]gin.H, 0, len(cps))
	for _, cp := range cps {
		views = append(views, complaintView(cp))
	}
	return views
}
