package health

import (
	"context"
	"net/http"
	"time"

	"github.com/cashlink/cashlink/internal/pkg/database"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/nats"
	"github.com/labstack/echo/v4"
)

// Checker defines the interface for health checking a dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a new PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSChecker checks NATS connection health
type NATSChecker struct {
	client *nats.Client
}

// NewNATSChecker creates a new NATS health checker
func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// Service manages health checks for registered dependencies
type Service struct {
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates a new health service
func NewService(zapLogger *logger.ZapLogger) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Response represents the health check response
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll performs health checks on all registered dependencies
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			s.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{
				Status: "healthy",
			}
		}
	}

	return response
}

// RegisterEndpoints registers the health check endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	healthGroup := e.Group("/health")

	// Basic health check (for load balancers)
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	// Detailed health check with dependencies
	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		return c.JSON(statusCode, response)
	})

	// Liveness probe
	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
