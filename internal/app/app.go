package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/prajalbasnet/Authority-Accesss/internal/config"
	httpx "github.com/prajalbasnet/Authority-Accesss/internal/http"
	"github.com/prajalbasnet/Authority-Accesss/internal/http/handlers"
	"github.com/prajalbasnet/Authority-Accesss/internal/http/middleware"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/auth"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/database"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/notifications"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/repositories"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/storage"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/webhook"
	"github.com/prajalbasnet/Authority-Accesss/internal/services"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Run wires everything together and serves until the process dies.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL, cfg.ResetTTL)
	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, logger)
	store, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		return err
	}
	forwarder := webhook.NewForwarder(cfg.WebhookURL, cfg.WebhookToken, cfg.WebhookTimeout)
	hub := notifications.NewHub(rdb, logger)
	go hub.Run(ctx)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	otpRepo := repositories.NewOtpRepository(gdb)
	authorityRepo := repositories.NewAuthorityRepository(gdb)
	kycRepo := repositories.NewKYCRepository(gdb)
	complaintRepo := repositories.NewComplaintRepository(gdb)
	notificationRepo := repositories.NewNotificationRepository(gdb)

	// Services
	otpSvc := services.NewOTPService(userRepo, otpRepo, tokenSvc, passwordSvc, mailer, logger, services.OTPConfig{
		Length:   cfg.OTPLength,
		TTL:      cfg.OTPTTL,
		Cooldown: cfg.OTPCooldown,
	})
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, logger, cfg.SessionTTL)
	notificationSvc := services.NewNotificationService(notificationRepo, hub, logger)
	kycSvc := services.NewKYCService(userRepo, kycRepo, store, logger)
	complaintSvc := services.NewComplaintService(complaintRepo, userRepo, store, forwarder, notificationSvc, logger)
	authoritySvc := services.NewAuthorityService(userRepo, authorityRepo, passwordSvc, otpSvc, store, logger)
	adminSvc := services.NewAdminService(userRepo, kycRepo, authorityRepo, complaintRepo, notificationSvc, mailer, logger)

	// Stale OTP rows are history only; sweeping them is housekeeping.
	if sweeper, ok := otpSvc.(otpSweeper); ok {
		go sweepOTPs(ctx, sweeper, logger)
	}

	// Handlers
	otpH := handlers.NewOTPHandlers(otpSvc)
	authH := handlers.NewAuthHandlers(authSvc, authoritySvc)
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
	oauthH := handlers.NewOAuthHandlers(authSvc, oauthCfg, googleUserinfoURL, logger)
	kycH := handlers.NewKYCHandlers(kycSvc)
	complaintH := handlers.NewComplaintHandlers(complaintSvc)
	notificationH := handlers.NewNotificationHandlers(notificationSvc, hub, logger)
	adminH := handlers.NewAdminHandlers(adminSvc)

	// Middleware
	jwtMW := middleware.NewAuthMW(tokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(otpH, authH, oauthH, kycH, complaintH, notificationH, adminH, jwtMW, casbinMW)

	seedPolicies(cas, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on first boot.
func seedPolicies(cas *auth.CasbinService, logger *zap.Logger) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}
	cas.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|PATCH|DELETE)")
	cas.E.AddPolicy("role_admin", "/api/complaints", "GET")
	cas.E.AddPolicy("role_admin", "/api/complaints/*", "(GET|PATCH)")
	cas.E.AddPolicy("role_citizen", "/api/complaints", "POST")
	cas.E.AddPolicy("role_citizen", "/api/complaints/mine", "GET")
	cas.E.AddPolicy("role_citizen", "/api/complaints/*", "GET")
	cas.E.AddPolicy("role_authority", "/api/complaints", "GET")
	cas.E.AddPolicy("role_authority", "/api/complaints/*", "(GET|PATCH)")
	cas.E.AddPolicy("role_authority", "/api/complaints/mine", "GET")
	_ = cas.E.SavePolicy()
	logger.Info("casbin: seeded default policies")
}

type otpSweeper interface {
	SweepExpired(ctx context.Context) error
}

func sweepOTPs(ctx context.Context, otpSvc otpSweeper, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := otpSvc.SweepExpired(ctx); err != nil {
				logger.Warn("otp sweep failed", zap.Error(err))
			}
		}
	}
}
