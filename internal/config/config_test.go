package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testYAML = `
app:
  port: 8080
  gin_mode: release
database:
  dsn: "host=localhost user=app dbname=app sslmode=disable"
redis:
  addr: "localhost:6379"
  db: 0
jwt:
  secret: "file-secret"
  issuer: "gunasosvc"
  session_ttl: "1h"
  reset_ttl: "15m"
otp:
  length: 6
  ttl: "5m"
  cooldown: "120s"
smtp:
  host: "smtp.example.com"
  port: 587
  username: "mailer"
  password: "mailer-pass"
  from: "noreply@example.com"
storage:
  endpoint: "localhost:9000"
  access_key: "minio"
  secret_key: "minio123"
  bucket: "gunaso"
  use_ssl: false
webhook:
  url: "https://hooks.example.com/complaints"
  token: "hook-token"
  timeout: "10s"
oauth:
  google_client_id: "google-client"
  google_client_secret: "google-secret"
  redirect_url: "http://localhost:8080/api/auth/oauth/google/callback"
casbin:
  model_path: "config/rbac_model.conf"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(writeTestConfig(t, testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("session ttl = %v", cfg.SessionTTL)
	}
	if cfg.ResetTTL != 15*time.Minute {
		t.Errorf("reset ttl = %v", cfg.ResetTTL)
	}
	if cfg.OTPLength != 6 || cfg.OTPTTL != 5*time.Minute || cfg.OTPCooldown != 120*time.Second {
		t.Errorf("otp tunables = %d %v %v", cfg.OTPLength, cfg.OTPTTL, cfg.OTPCooldown)
	}
	if cfg.WebhookTimeout != 10*time.Second {
		t.Errorf("webhook timeout = %v", cfg.WebhookTimeout)
	}
	if cfg.GoogleClientID != "google-client" || cfg.GoogleClientSecret != "google-secret" {
		t.Errorf("oauth credentials = %q %q", cfg.GoogleClientID, cfg.GoogleClientSecret)
	}
	if cfg.OAuthRedirectURL != "http://localhost:8080/api/auth/oauth/google/callback" {
		t.Errorf("oauth redirect url = %q", cfg.OAuthRedirectURL)
	}
	if cfg.CasbinModelPath != "config/rbac_model.conf" {
		t.Errorf("casbin model path = %q", cfg.CasbinModelPath)
	}
}

func TestLoadFrom_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("WEBHOOK_URL", "https://override.example.com/hook")

	cfg, err := LoadFrom(writeTestConfig(t, testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JWTSecret != "env-secret" {
		t.Errorf("env must override the file secret, got %q", cfg.JWTSecret)
	}
	if cfg.WebhookURL != "https://override.example.com/hook" {
		t.Errorf("env must override the webhook url, got %q", cfg.WebhookURL)
	}
}

func TestLoadFrom_BadDuration(t *testing.T) {
	bad := strings.Replace(testYAML, `session_ttl: "1h"`, `session_ttl: "one hour"`, 1)
	if _, err := LoadFrom(writeTestConfig(t, bad)); err == nil {
		t.Fatal("malformed duration must fail loading")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yml")); err == nil {
		t.Fatal("missing file must fail loading")
	}
}
