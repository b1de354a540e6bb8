// Package server exposes the generation pipeline over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
	"github.com/samcharles93/gpurand/internal/rng"
)

const (
	DefaultMaxCount    int64 = 1 << 24
	DefaultStreamChunk       = 1 << 16
)

type Config struct {
	Defaults pipeline.Defaults
	// MaxCount caps the values produced by a single request.
	MaxCount int64
	// RequestsPerSecond limits generation requests; zero disables the limit.
	RequestsPerSecond float64
	Burst             int
	// Devices is what GET /v1/devices reports.
	Devices []device.Spec
}

type Server struct {
	dev      *device.Device
	cfg      Config
	limiter  *rate.Limiter
	upgrader websocket.Upgrader
	log      logger.Logger
}

func New(dev *device.Device, cfg Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = DefaultMaxCount
	}
	if cfg.Defaults.Variant == "" {
		cfg.Defaults = pipeline.DefaultSettings()
	}
	if key, err := rng.Normalize(cfg.Defaults.Variant); err == nil {
		cfg.Defaults.Variant = key
	}
	s := &Server{
		dev: dev,
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	if cfg.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	}
	return s
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/variants", s.handleVariants)
	e.GET("/v1/devices", s.handleDevices)
	e.POST("/v1/uniform", s.limit(s.handleUniform))
	e.GET("/v1/uniform/stream", s.limit(s.handleUniformStream))
}

func (s *Server) limit(next echo.HandlerFunc) echo.HandlerFunc {
	if s.limiter == nil {
		return next
	}
	return func(c *echo.Context) error {
		if !s.limiter.Allow() {
			return writeError(c, http.StatusTooManyRequests, "rate_limit_error", "too many generation requests", "", "")
		}
		return next(c)
	}
}

// ErrorBody is the error envelope of every non-2xx response.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Stage   string `json:"stage,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, b)
}

func writeError(c *echo.Context, status int, errType, msg, stage, kind string) error {
	return writeJSON(c, status, map[string]any{
		"error": ErrorBody{
			Message: msg,
			Type:    errType,
			Stage:   stage,
			Kind:    kind,
		},
	})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "", "")
}

// writePipelineError maps a failed run to a status code.
func writePipelineError(c *echo.Context, err error) error {
	kind := pipeline.Kind(err)
	stage := pipeline.Stage(err)
	status := statusFor(err)
	errType := "server_error"
	if status == http.StatusBadRequest {
		errType = "invalid_request_error"
	}
	return writeError(c, status, errType, err.Error(), stage, kind)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, device.ErrAllocation):
		return http.StatusInsufficientStorage
	case pipeline.Kind(err) == "GenerationError",
		pipeline.Kind(err) == "UnsupportedVariantError":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
