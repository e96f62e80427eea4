package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

var startTime = time.Now()

const serviceVersion = "1.0.0" // TODO: Get from build info

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    utils.FormatDuration(time.Since(startTime)),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports whether the service can serve assistant traffic:
// the LLM provider must be reachable; the session store is optional and
// only degrades the report.
func ReadinessHandler(llmManager *llm.Manager, store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if llmManager.IsHealthy() {
			checks["llm"] = "ok"
		} else {
			checks["llm"] = "unavailable"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		}

		if store != nil {
			if err := store.IsHealthy(c.Request().Context()); err != nil {
				checks["sessions"] = "unavailable"
			} else {
				checks["sessions"] = "ok"
			}
		} else {
			checks["sessions"] = "disabled"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    utils.FormatDuration(time.Since(startTime)),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    utils.FormatDuration(time.Since(startTime)),
	})
}
