package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "gramseva/internal/shared/config"
	"gramseva/internal/shared/utils"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Upload    sharedConfig.UploadConfig    `mapstructure:"upload"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Translate sharedConfig.TranslateConfig `mapstructure:"translate"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error: every key has a default, so the
// binary runs standalone with just the defaults.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("GRAMSEVA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := utils.ValidateStruct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	// Database defaults
	viper.SetDefault("database.path", "gramseva.db")
	viper.SetDefault("database.max_idle_conns", 2)
	viper.SetDefault("database.max_open_conns", 1)
	viper.SetDefault("database.busy_timeout_ms", 5000)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.session.secret", "change-me-in-production")
	viper.SetDefault("auth.session.exp_hours", 12)
	viper.SetDefault("auth.session.cookie_name", "admin_session")
	viper.SetDefault("auth.cookie.domain", "")
	viper.SetDefault("auth.cookie.path", "/")
	viper.SetDefault("auth.cookie.secure", false)
	viper.SetDefault("auth.cookie.same_site", "Lax")
	viper.SetDefault("auth.seed.admin_id", "admin")
	viper.SetDefault("auth.seed.password", "admin123")

	// Upload defaults
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.max_size_bytes", 16*1024*1024)
	viper.SetDefault("upload.allowed_extensions", []string{"txt", "pdf", "docx", "doc"})

	// Email defaults (disabled unless configured)
	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@gramseva.local")
	viper.SetDefault("email.from_name", "Gram Seva Help Desk")
	viper.SetDefault("email.admin_address", "")

	// Translate defaults
	viper.SetDefault("translate.enabled", true)
	viper.SetDefault("translate.endpoint", "https://translate.googleapis.com/translate_a/single")
	viper.SetDefault("translate.tts_endpoint", "https://translate.google.com/translate_tts")
	viper.SetDefault("translate.timeout_sec", 5)
	viper.SetDefault("translate.default_language", "en")
}
