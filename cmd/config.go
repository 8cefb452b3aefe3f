package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"courierapi/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	HTTPPort                string
	AdminPort               string
	AdminUser               string
	AdminPassword           string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	LogLevel                string
	AssignmentOrdering      string
	AssignmentSweepSchedule string
	RateLimitRPS            float64
	BodyLimit               string
}

var defaultConfig = Config{
	HTTPPort:           "8080",
	AdminPort:          "9090",
	DBHost:             "localhost",
	DBPort:             "5432",
	DBUser:             "postgres",
	DBName:             "courierapi",
	DBSslMode:          "disable",
	LogLevel:           "info",
	AssignmentOrdering: "id",
	RateLimitRPS:       10,
	BodyLimit:          "1M",
}

// DefaultConfig returns the settings used when neither the environment nor flags set a value.
func DefaultConfig() Config {
	return defaultConfig
}

// LoadConfig reads configuration in order: .env (if present) → environment → flags.
// A missing .env file is reported as a warning.
func LoadConfig(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn(".env not loaded", "error", err)
	}

	cfg := DefaultConfig()
	lookupString("HTTP_PORT", &cfg.HTTPPort)
	lookupString("ADMIN_PORT", &cfg.AdminPort)
	lookupString("ADMIN_USER", &cfg.AdminUser)
	lookupString("ADMIN_PASSWORD", &cfg.AdminPassword)
	lookupString("DB_HOST", &cfg.DBHost)
	lookupString("DB_PORT", &cfg.DBPort)
	lookupString("DB_USER", &cfg.DBUser)
	lookupString("DB_PASSWORD", &cfg.DBPassword)
	lookupString("DB_NAME", &cfg.DBName)
	lookupString("DB_SSLMODE", &cfg.DBSslMode)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("ASSIGNMENT_ORDERING", &cfg.AssignmentOrdering)
	lookupString("ASSIGNMENT_SWEEP_SCHEDULE", &cfg.AssignmentSweepSchedule)
	lookupString("BODY_LIMIT", &cfg.BodyLimit)
	if err := lookupFloat("RATE_LIMIT_RPS", &cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}

	flags.StringVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "port of the public API")
	flags.StringVar(&cfg.AdminPort, "admin-port", cfg.AdminPort, "port of the metrics and pprof server")
	flags.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "postgres host")
	flags.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "postgres port")
	flags.StringVar(&cfg.DBName, "db-name", cfg.DBName, "postgres database")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.AssignmentOrdering, "assignment-ordering", cfg.AssignmentOrdering,
		"order in which a courier takes candidates: id or weight")
	flags.StringVar(&cfg.AssignmentSweepSchedule, "assignment-sweep-schedule", cfg.AssignmentSweepSchedule,
		"cron expression with seconds for the assignment sweep, empty disables it")
	flags.Float64Var(&cfg.RateLimitRPS, "rate-limit-rps", cfg.RateLimitRPS,
		"requests per second per client IP, 0 disables limiting")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	errs = append(errs, validatePort("HTTP_PORT", c.HTTPPort), validatePort("ADMIN_PORT", c.AdminPort))
	if c.HTTPPort == c.AdminPort {
		errs = append(errs, fmt.Errorf("HTTP_PORT and ADMIN_PORT must differ, both are %s", c.HTTPPort))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	errs = append(errs, validatePort("DB_PORT", c.DBPort))
	if c.DBUser == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if _, ok := parseLogLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if _, err := order.ParseOrdering(c.AssignmentOrdering); err != nil {
		errs = append(errs, fmt.Errorf("ASSIGNMENT_ORDERING: %w", err))
	}
	if c.AssignmentSweepSchedule != "" {
		if _, err := sweepScheduleParser.Parse(c.AssignmentSweepSchedule); err != nil {
			errs = append(errs, fmt.Errorf("ASSIGNMENT_SWEEP_SCHEDULE: %w", err))
		}
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS %g is negative", c.RateLimitRPS))
	}
	if c.BodyLimit != "" {
		if _, err := bytes.Parse(c.BodyLimit); err != nil {
			errs = append(errs, fmt.Errorf("BODY_LIMIT: %w", err))
		}
	}

	return errors.Join(errs...)
}

// DSN builds the libpq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Ordering returns the parsed ASSIGNMENT_ORDERING.
func (c Config) Ordering() order.Ordering {
	o, _ := order.ParseOrdering(c.AssignmentOrdering)
	return o
}

// SlogLevel returns the application log level.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLogLevel(c.LogLevel)
	return level
}

// EchoLogLevel maps LOG_LEVEL onto echo's logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}

// GormLogLevel maps LOG_LEVEL onto gorm's logger. SQL statements are only logged at debug.
func (c Config) GormLogLevel() gormlogger.LogLevel {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return gormlogger.Info
	case slog.LevelError:
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

var sweepScheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func parseLogLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func validatePort(name, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("%s %q is not a valid port", name, value)
	}
	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
