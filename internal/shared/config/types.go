package config

import "fmt"

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Path          string `mapstructure:"path" validate:"required"`
	MaxIdleConns  int    `mapstructure:"max_idle_conns"`
	MaxOpenConns  int    `mapstructure:"max_open_conns"`
	BusyTimeoutMS int    `mapstructure:"busy_timeout_ms"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret" validate:"required"`
	ExpHours   int    `mapstructure:"exp_hours" validate:"gte=1"`
	CookieName string `mapstructure:"cookie_name" validate:"required"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Session SessionConfig `mapstructure:"session"`
	Cookie  CookieConfig  `mapstructure:"cookie"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

// SeedConfig holds the credentials for the admin account created on a
// fresh database. Change these before the first run in production.
type SeedConfig struct {
	AdminID  string `mapstructure:"admin_id"`
	Password string `mapstructure:"password"`
}

type UploadConfig struct {
	Dir               string   `mapstructure:"dir" validate:"required"`
	MaxSizeBytes      int64    `mapstructure:"max_size_bytes" validate:"gte=1"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AdminAddress string `mapstructure:"admin_address"`
}

type TranslateConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	Endpoint         string `mapstructure:"endpoint"`
	TTSEndpoint      string `mapstructure:"tts_endpoint"`
	TimeoutSec       int    `mapstructure:"timeout_sec"`
	DefaultLanguage  string `mapstructure:"default_language"`
}
