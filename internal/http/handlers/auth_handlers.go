package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/services"
)

// AuthHandlers handles registration, login and profile requests.
type AuthHandlers struct {
	authSvc      domain.AuthService
	authoritySvc *services.AuthorityService
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, authoritySvc *services.AuthorityService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, authoritySvc: authoritySvc}
}

// RegisterRequest represents a citizen registration request.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles citizen sign-up. Authorities register through
// RegisterAuthority and admins are provisioned out of band.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.FullName, req.Email, req.Password, domain.RoleCitizen)
	if err != nil {
		respondError(c, err, "Failed to register user.")
		return
	}

	respondCreated(c, "Registered successfully. Please verify your email.", gin.H{
		"userId": user.ID,
		"email":  user.Email,
	})
}

// Login handles user login.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed.")
		return
	}

	respondOK(c, "Login successful.", gin.H{
		"token":     result.Token,
		"tokenType": "Bearer",
		"expiresIn": result.ExpiresIn,
		"user":      userView(result.User),
	})
}

// Me handles GET /api/auth/me for the authenticated user.
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile.")
		return
	}

	respondOK(c, "Profile loaded.", userView(user))
}

// RegisterAuthority handles the multipart authority sign-up with its four
// document uploads.
func (h *AuthHandlers) RegisterAuthority(c *gin.Context) {
	authorityType, err := domain.ParseAuthorityType(c.PostForm("authorityType"))
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid authority type: "+c.PostForm("authorityType"), nil)
		return
	}

	reg := services.AuthorityRegistration{
		FullName:          c.PostForm("fullName"),
		Email:             c.PostForm("email"),
		Password:          c.PostForm("password"),
		AuthorityType:     authorityType,
		CitizenshipNumber: c.PostForm("citizenshipNumber"),
	}
	if reg.FullName == "" || reg.Email == "" || reg.Password == "" || reg.CitizenshipNumber == "" {
		respond(c, http.StatusBadRequest, "fullName, email, password and citizenshipNumber are required.", nil)
		return
	}

	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for _, doc := range []struct {
		field  string
		target *services.FileUpload
	}{
		{"photo", &reg.Photo},
		{"frontImage", &reg.FrontImage},
		{"backImage", &reg.BackImage},
		{"identityCard", &reg.IdentityCard},
	} {
		upload, file, err := formUpload(c, doc.field)
		if err != nil {
			respond(c, http.StatusBadRequest, "Required file is missing: "+doc.field, nil)
			return
		}
		closers = append(closers, file)
		*doc.target = upload
	}

	user, err := h.authoritySvc.Register(c.Request.Context(), reg)
	if err != nil {
		respondError(c, err, "Failed to register authority.")
		return
	}

	respondCreated(c, "Authority registered. Verify your email and await admin approval.", gin.H{
		"userId": user.ID,
		"email":  user.Email,
	})
}

// formUpload opens one multipart file field as a service upload. The caller
// owns closing the returned file.
func formUpload(c *gin.Context, field string) (services.FileUpload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return services.FileUpload{}, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return services.FileUpload{}, nil, err
	}
	return services.FileUpload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, file, nil
}

// currentUserID reads the authenticated account ID the middleware stored.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw.(string), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func userView(u *domain.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"fullName":       u.FullName,
		"email":          u.Email,
		"role":           u.Role,
		"emailStatus":    u.EmailStatus,
		"identityStatus": u.IdentityStatus,
	}
}
