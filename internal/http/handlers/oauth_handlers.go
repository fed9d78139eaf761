package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

const oauthStateCookie = "oauth_state"

// OAuthHandlers handles the Google social-login flow. The userinfo URL is a
// field so tests can point the exchange at a local server.
type OAuthHandlers struct {
	authSvc     domain.AuthService
	oauth       *oauth2.Config
	userinfoURL string
	logger      *zap.Logger
}

// NewOAuthHandlers creates new OAuth handlers.
func NewOAuthHandlers(authSvc domain.AuthService, oauth *oauth2.Config, userinfoURL string, logger *zap.Logger) *OAuthHandlers {
	return &OAuthHandlers{authSvc: authSvc, oauth: oauth, userinfoURL: userinfoURL, logger: logger}
}

type googleProfile struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleRedirect handles GET /api/auth/oauth/google: issues a state cookie
// and sends the client to the Google consent screen.
func (h *OAuthHandlers) GoogleRedirect(c *gin.Context) {
	if h.oauth.ClientID == "" {
		respond(c, http.StatusServiceUnavailable, "Google login is not configured.", nil)
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		respond(c, http.StatusInternalServerError, "Failed to start Google login.", nil)
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// GoogleCallback handles GET /api/auth/oauth/google/callback: validates the
// state, exchanges the code and signs the account in.
func (h *OAuthHandlers) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		respond(c, http.StatusBadRequest, "Invalid OAuth state.", nil)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		respond(c, http.StatusBadRequest, "Missing authorization code.", nil)
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("oauth code exchange failed", zap.Error(err))
		respond(c, http.StatusBadGateway, "Google login failed.", nil)
		return
	}

	profile, err := h.fetchProfile(c, token)
	if err != nil {
		h.logger.Warn("oauth userinfo fetch failed", zap.Error(err))
		respond(c, http.StatusBadGateway, "Google login failed.", nil)
		return
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		respond(c, http.StatusForbidden, "Google account has no verified email.", nil)
		return
	}

	result, err := h.authSvc.LoginWithGoogle(c.Request.Context(), profile.Email, profile.Name)
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

func (h *OAuthHandlers) fetchProfile(c *gin.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := h.oauth.Client(c.Request.Context(), token).Get(h.userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
