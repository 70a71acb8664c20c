package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shop/cmd"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 4, cfg.DispatchWorkers)
	assert.Equal(t, 256, cfg.DispatchQueueSize)
	assert.Equal(t, 168*time.Hour, cfg.OrderRetention)
	assert.Equal(t, 72*time.Hour, cfg.NotificationRetention)
	assert.Equal(t, "@every 24h", cfg.RetentionSchedule)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, time.Minute, cfg.RecipientCacheTTL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("DISPATCH_WORKERS", "8")
	t.Setenv("ORDER_RETENTION", "48h")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RETENTION_SCHEDULE", "0 3 * * *")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.DispatchWorkers)
	assert.Equal(t, 48*time.Hour, cfg.OrderRetention)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "0 3 * * *", cfg.RetentionSchedule)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_USER=file-user\nDB_NAME=file-db\nJWT_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_USER")
		_ = os.Unsetenv("DB_NAME")
	})

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "file-user", cfg.DBUser)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	setRequired(t)

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DISPATCH_QUEUE_SIZE", "lots")
	t.Setenv("NOTIFICATION_RETENTION", "3 days")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "DISPATCH_QUEUE_SIZE")
	assert.Contains(t, err.Error(), "NOTIFICATION_RETENTION")
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.Config{DBUser: "shop", DBName: "shop", JWTSecret: "secret", SMTPHost: "smtp.example.com"}

	err := cfg.Validate()

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "SMTP_FROM")
}
