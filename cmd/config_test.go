package cmd_test

import (
	"log/slog"
	"os"
	"testing"

	"courierapi/cmd"
	"courierapi/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	return pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "ADMIN_PORT", "ADMIN_USER", "ADMIN_PASSWORD", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "LOG_LEVEL", "ASSIGNMENT_ORDERING", "ASSIGNMENT_SWEEP_SCHEDULE",
		"RATE_LIMIT_RPS", "BODY_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(newFlags(), nil)
	require.NoError(t, err)

	require.Equal(t, cmd.DefaultConfig(), cfg)
	require.Equal(t, order.ByID, cfg.Ordering())
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.Equal(t, log.INFO, cfg.EchoLogLevel())
	require.Empty(t, cfg.AssignmentSweepSchedule)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ASSIGNMENT_ORDERING", "weight")
	t.Setenv("ASSIGNMENT_SWEEP_SCHEDULE", "*/30 * * * * *")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := cmd.LoadConfig(newFlags(), nil)
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.HTTPPort)
	require.Equal(t, "db", cfg.DBHost)
	require.Equal(t, order.ByWeight, cfg.Ordering())
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, "*/30 * * * * *", cfg.AssignmentSweepSchedule)
	require.InDelta(t, 2.5, cfg.RateLimitRPS, 0)
	require.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=courierapi sslmode=disable",
		cfg.DSN(),
	)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("ASSIGNMENT_ORDERING", "weight")

	cfg, err := cmd.LoadConfig(newFlags(), []string{"--http-port=7070", "--assignment-ordering=id"})
	require.NoError(t, err)

	require.Equal(t, "7070", cfg.HTTPPort)
	require.Equal(t, order.ByID, cfg.Ordering())
}

func TestLoadConfig_InvalidRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_RPS", "fast")

	_, err := cmd.LoadConfig(newFlags(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RATE_LIMIT_RPS")
}

func TestConfigValidate_ReportsEveryProblem(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.HTTPPort = "70000"
	cfg.AdminPort = "x"
	cfg.DBHost = ""
	cfg.LogLevel = "loud"
	cfg.AssignmentOrdering = "distance"
	cfg.AssignmentSweepSchedule = "every minute"
	cfg.RateLimitRPS = -1
	cfg.BodyLimit = "lots"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"HTTP_PORT", "ADMIN_PORT", "ADMIN_USER", "ADMIN_PASSWORD", "DB_HOST", "LOG_LEVEL", "ASSIGNMENT_ORDERING",
		"ASSIGNMENT_SWEEP_SCHEDULE", "RATE_LIMIT_RPS", "BODY_LIMIT",
	} {
		require.Contains(t, err.Error(), want)
	}
}

func TestConfigValidate_PortsMustDiffer(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.AdminPort = cfg.HTTPPort

	require.ErrorContains(t, cfg.Validate(), "must differ")
}
