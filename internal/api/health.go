package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

type HealthCheck struct {
	Status   HealthStatus `json:"status"`
	Message  string       `json:"message,omitempty"`
	Duration string       `json:"duration,omitempty"`
}

type HealthCheckResponse struct {
	Status    HealthStatus           `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Checks    map[string]HealthCheck `json:"checks"`
	RequestID string                 `json:"request_id,omitempty"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	db := s.checkDatabaseHealth(r.Context())

	response := HealthCheckResponse{
		Status:    db.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).String(),
		Checks:    map[string]HealthCheck{"database": db},
		RequestID: middleware.GetReqID(r.Context()),
	}

	status := http.StatusOK
	if db.Status == HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, response)
}

func (s *Server) checkDatabaseHealth(ctx context.Context) HealthCheck {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	check := HealthCheck{Status: HealthStatusHealthy, Message: "Database connection healthy"}
	if err := s.store.Ping(ctx); err != nil {
		check = HealthCheck{Status: HealthStatusUnhealthy, Message: err.Error()}
	}
	check.Duration = time.Since(start).String()
	return check
}
