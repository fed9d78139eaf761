package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/prajalbasnet/Authority-Accesss/internal/http/handlers"
	"github.com/prajalbasnet/Authority-Accesss/internal/http/middleware"
)

// BuildRouter wires all route groups. WithJWT runs globally and only
// populates identity; RequireAuth and casbin enforcement apply per group.
func BuildRouter(
	oh *handlers.OTPHandlers,
	ah *handlers.AuthHandlers,
	oah *handlers.OAuthHandlers,
	kh *handlers.KYCHandlers,
	ch *handlers.ComplaintHandlers,
	nh *handlers.NotificationHandlers,
	adh *handlers.AdminHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), jwtmw.WithJWT())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	otp := r.Group("/api/otp")
	otp.POST("/send/:purpose", oh.SendOTP)
	otp.POST("/verify/:purpose", oh.VerifyOTP)
	otp.POST("/reset-password", oh.ResetPassword)

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/authority/register", ah.RegisterAuthority)
	auth.GET("/oauth/google", oah.GoogleRedirect)
	auth.GET("/oauth/google/callback", oah.GoogleCallback)
	auth.GET("/me", middleware.RequireAuth(), ah.Me)

	users := r.Group("/api/users", middleware.RequireAuth())
	users.POST("/kyc", kh.Submit)
	users.GET("/kyc", kh.Latest)

	complaints := r.Group("/api/complaints", middleware.RequireAuth(), cb.Enforce())
	complaints.POST("", ch.Submit)
	complaints.GET("", ch.List)
	complaints.GET("/mine", ch.Mine)
	complaints.GET("/:id", ch.Get)
	complaints.PATCH("/:id/status", ch.UpdateStatus)

	notifications := r.Group("/api/notifications", middleware.RequireAuth())
	notifications.GET("", nh.List)
	notifications.POST("/seen", nh.MarkSeen)
	notifications.GET("/unread-count", nh.UnreadCount)

	r.GET("/ws/notifications", middleware.RequireAuth(), nh.Stream)

	admin := r.Group("/api/admin", middleware.RequireAuth(), cb.Enforce())
	admin.GET("/pending-kyc", adh.PendingKYC)
	admin.POST("/kyc/:id/approve", adh.ApproveKYC)
	admin.POST("/kyc/:id/reject", adh.RejectKYC)
	admin.GET("/authorities/pending", adh.PendingAuthorities)
	admin.POST("/authorities/:id/approve", adh.ApproveAuthority)
	admin.POST("/authorities/:id/reject", adh.RejectAuthority)
	admin.GET("/users", adh.Users)
	admin.GET("/complaints", adh.Complaints)

	return r
}
