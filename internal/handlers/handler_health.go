package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// getHealth godoc
// @Summary Liveness probe
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// readinessHandler reports whether the record store answers and the employee snapshot is loaded.
type readinessHandler struct {
	ping      func(ctx context.Context) error
	employees portssvc.EmployeeCollectionReaderSvc
}

// getReady godoc
// @Summary Readiness probe
// @Description Pings the record store and checks that the employee snapshot is loaded
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (h *readinessHandler) getReady(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := gin.H{"store": "ok", "snapshot": "loaded"}
	ready := true

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			logger.Warn("Record store ping failed", slog.String("error", err.Error()))
			status["store"] = "unreachable"
			ready = false
		}
	}
	if _, err := h.employees.Stats(); err != nil {
		status["snapshot"] = "unavailable"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
