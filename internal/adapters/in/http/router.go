package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "courierapi/docs"
	"courierapi/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// Options configures the echo instance built by NewEcho.
type Options struct {
	Logger *slog.Logger
	// LogLevel is applied to echo's own logger.
	LogLevel log.Lvl
	// RateLimit is the number of requests per second allowed per client IP; 0 disables limiting.
	RateLimit float64
	// BodyLimit caps request bodies, e.g. "1M".
	BodyLimit string
	// Metrics is optional.
	Metrics *metrics.HTTP
	// OpenAPI enables request validation and the /openapi.json endpoint when set.
	OpenAPI *openapi3.T
}

// NewEcho builds the public HTTP API: middleware chain, error handling and routes.
func NewEcho(handlers Handlers, opts Options) (*echo.Echo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(opts.LogLevel)
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if opts.Metrics != nil {
		e.Use(observe(opts.Metrics))
	}
	e.Use(requestLogger(logger))
	if opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(opts.BodyLimit))
	}
	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(opts.RateLimit, opts.Metrics)))
	}
	if opts.OpenAPI != nil {
		validate, err := OpenAPIValidator(opts.OpenAPI)
		if err != nil {
			return nil, err
		}
		e.Use(validate)
		e.GET("/openapi.json", serveOpenAPI(opts.OpenAPI))
	}

	NewServer(handlers).RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// requestLogger writes one structured line per request. HandleError lets the error
// handler commit the response first so that the logged status is the one sent.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "http request", attrs...)
			return nil
		},
	})
}

// observe records request counts and latencies by route pattern.
func observe(m *metrics.HTTP) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return err
		}
	}
}

func rateLimiterConfig(rps float64, m *metrics.HTTP) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(rps), ExpiresIn: time.Minute},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			if m != nil {
				m.RateLimited()
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		},
	}
}
