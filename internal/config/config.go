package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/omercengiz/warehouse-pro/internal/sms"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SMS      SMSConfig      `mapstructure:"sms"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SMSConfig describes the outbound channel: an email-to-SMS gateway reached
// over SMTP. Destination is the operator's phone number.
type SMSConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Destination   string `mapstructure:"destination"`
	GatewayDomain string `mapstructure:"gateway_domain"`
	From          string `mapstructure:"from"`
	SMTPServer    string `mapstructure:"smtp_server"`
	SMTPPort      string `mapstructure:"smtp_port"`
	SMTPUser      string `mapstructure:"smtp_user"`
	SMTPPassword  string `mapstructure:"smtp_password"`
	AuthDisabled  bool   `mapstructure:"auth_disabled"`
}

type AlertsConfig struct {
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	SendInterval   time.Duration `mapstructure:"send_interval"`
	MaxRetries     int           `mapstructure:"max_retries"`
	SummaryTo      string        `mapstructure:"summary_to"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Load reads the config file (optional) and environment overrides, e.g.
// WAREHOUSE_DATABASE_URL, WAREHOUSE_SMS_DESTINATION.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Every key needs a default so environment-only overrides are picked
	// up by Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.destination", "")
	v.SetDefault("sms.gateway_domain", "")
	v.SetDefault("sms.from", "")
	v.SetDefault("sms.smtp_server", "")
	v.SetDefault("sms.smtp_port", "587")
	v.SetDefault("sms.smtp_user", "")
	v.SetDefault("sms.smtp_password", "")
	v.SetDefault("sms.auth_disabled", false)
	v.SetDefault("alerts.debounce_window", 300*time.Millisecond)
	v.SetDefault("alerts.send_interval", time.Second)
	v.SetDefault("alerts.max_retries", 2)
	v.SetDefault("alerts.summary_to", "")
	v.SetDefault("auth.jwt_secret", "super-secret-key") // move to env in prod

	v.SetEnvPrefix("WAREHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.SMS.Enabled {
		if c.SMS.Destination == "" {
			return fmt.Errorf("sms.destination is required when sms is enabled")
		}
		if !sms.IsValidPhoneNumber(c.SMS.Destination) {
			return fmt.Errorf("sms.destination %q is not a valid phone number", c.SMS.Destination)
		}
	}
	return nil
}
