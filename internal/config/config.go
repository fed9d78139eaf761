package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
	ResetTTL   string `yaml:"reset_ttl"`
}

type OTPConfig struct {
	Length   int    `yaml:"length"`
	TTL      string `yaml:"ttl"`
	Cooldown string `yaml:"cooldown"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type WebhookConfig struct {
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Timeout string `yaml:"timeout"`
}

type OAuthConfig struct {
	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`
	RedirectURL        string `yaml:"redirect_url"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Storage  StorageConfig  `yaml:"storage"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the resolved runtime configuration. It is constructed once in
// main and injected; nothing mutates it afterwards.
type Config struct {
	Port               string
	GinMode            string
	DSN                string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	JWTSecret          string
	JWTIssuer          string
	SessionTTL         time.Duration
	ResetTTL           time.Duration
	OTPLength          int
	OTPTTL             time.Duration
	OTPCooldown        time.Duration
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	MailFrom           string
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioBucket        string
	MinioUseSSL        bool
	WebhookURL         string
	WebhookToken       string
	WebhookTimeout     time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
	CasbinModelPath    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides for secrets,
// and parses duration strings.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

// LoadFrom loads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(file.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT session TTL: %w", err)
	}
	resetTTL, err := time.ParseDuration(file.JWT.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT reset TTL: %w", err)
	}
	otpTTL, err := time.ParseDuration(file.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}
	cooldown, err := time.ParseDuration(file.OTP.Cooldown)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP cooldown: %w", err)
	}
	webhookTimeout, err := time.ParseDuration(file.Webhook.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook timeout: %w", err)
	}

	return &Config{
		Port:               fmt.Sprintf("%d", file.App.Port),
		GinMode:            file.App.GinMode,
		DSN:                env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:          env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword:      env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:            file.Redis.DB,
		JWTSecret:          env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:          file.JWT.Issuer,
		SessionTTL:         sessionTTL,
		ResetTTL:           resetTTL,
		OTPLength:          file.OTP.Length,
		OTPTTL:             otpTTL,
		OTPCooldown:        cooldown,
		SMTPHost:           env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:           file.SMTP.Port,
		SMTPUsername:       env("SMTP_USERNAME", file.SMTP.Username),
		SMTPPassword:       env("SMTP_PASSWORD", file.SMTP.Password),
		MailFrom:           file.SMTP.From,
		MinioEndpoint:      env("MINIO_ENDPOINT", file.Storage.Endpoint),
		MinioAccessKey:     env("MINIO_ACCESS_KEY", file.Storage.AccessKey),
		MinioSecretKey:     env("MINIO_SECRET_KEY", file.Storage.SecretKey),
		MinioBucket:        file.Storage.Bucket,
		MinioUseSSL:        file.Storage.UseSSL,
		WebhookURL:         env("WEBHOOK_URL", file.Webhook.URL),
		WebhookToken:       env("WEBHOOK_TOKEN", file.Webhook.Token),
		WebhookTimeout:     webhookTimeout,
		GoogleClientID:     env("GOOGLE_CLIENT_ID", file.OAuth.GoogleClientID),
		GoogleClientSecret: env("GOOGLE_CLIENT_SECRET", file.OAuth.GoogleClientSecret),
		OAuthRedirectURL:   file.OAuth.RedirectURL,
		CasbinModelPath:    file.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}
