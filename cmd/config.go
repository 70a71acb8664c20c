package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"shop/internal/adapters/out/kafka"
	"shop/internal/core/application/dispatch"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/jobs"
	"shop/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// DefaultRecipientCacheTTL also bounds how long a user change can take to reach
// cached recipient lists.
const DefaultRecipientCacheTTL = time.Minute

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string
	LogLevel   string

	AdminEmail   string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	PushAPIURL   string

	RedisAddr         string
	RecipientCacheTTL time.Duration

	KafkaBrokers            []string
	KafkaNotificationsTopic string

	DispatchWorkers   int
	DispatchQueueSize int

	OrderRetention        time.Duration
	NotificationRetention time.Duration
	RetentionSchedule     string
}

// LoadConfig reads the process environment after loading envFile into it. A missing
// envFile is not an error; variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var p envParser
	cfg := Config{
		HTTPPort:   p.str("HTTP_PORT", "8080"),
		DBHost:     p.str("DB_HOST", "localhost"),
		DBPort:     p.str("DB_PORT", "5432"),
		DBUser:     p.str("DB_USER", ""),
		DBPassword: p.str("DB_PASSWORD", ""),
		DBName:     p.str("DB_NAME", ""),
		DBSslMode:  p.str("DB_SSLMODE", "disable"),
		JWTSecret:  p.str("JWT_SECRET", ""),
		LogLevel:   p.str("LOG_LEVEL", "info"),

		AdminEmail:   p.str("ADMIN_EMAIL", ""),
		SMTPHost:     p.str("SMTP_HOST", ""),
		SMTPPort:     p.integer("SMTP_PORT", 587),
		SMTPUser:     p.str("SMTP_USER", ""),
		SMTPPassword: p.str("SMTP_PASSWORD", ""),
		SMTPFrom:     p.str("SMTP_FROM", ""),
		PushAPIURL:   p.str("PUSH_API_URL", ""),

		RedisAddr:         p.str("REDIS_ADDR", ""),
		RecipientCacheTTL: p.duration("RECIPIENT_CACHE_TTL", DefaultRecipientCacheTTL),

		KafkaBrokers:            kafka.ParseBrokers(p.str("KAFKA_BROKERS", "")),
		KafkaNotificationsTopic: p.str("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),

		DispatchWorkers:   p.integer("DISPATCH_WORKERS", dispatch.DefaultWorkers),
		DispatchQueueSize: p.integer("DISPATCH_QUEUE_SIZE", dispatch.DefaultQueueSize),

		OrderRetention:        p.duration("ORDER_RETENTION", commands.DefaultOrderRetention),
		NotificationRetention: p.duration("NOTIFICATION_RETENTION", commands.DefaultNotificationRetention),
		RetentionSchedule:     p.str("RETENTION_SCHEDULE", jobs.DefaultRetentionSchedule),
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var result []error
	if c.DBUser == "" {
		result = append(result, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		result = append(result, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.JWTSecret == "" {
		result = append(result, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.SMTPHost != "" && c.SMTPFrom == "" {
		result = append(result, errs.NewValueIsRequiredError("SMTP_FROM"))
	}
	return errors.Join(result...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// envParser collects every malformed variable instead of stopping at the first.
type envParser struct {
	errs []error
}

func (p *envParser) str(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (p *envParser) integer(key string, fallback int) int {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (p *envParser) duration(key string, fallback time.Duration) time.Duration {
	raw := p.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}
