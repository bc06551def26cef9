package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and database connectivity
type HealthHandler struct {
	BaseHandler
	db        *gorm.DB
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Check godoc
// @Summary      Health check
// @Description  Returns service liveness and database connectivity
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "ok"
	healthy := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			dbStatus = "unavailable"
			healthy = false
		}
	} else {
		dbStatus = "not configured"
	}

	status := http.StatusOK
	message := "Service is healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		message = "Service is degraded"
	}

	c.JSON(status, gin.H{
		"success":  healthy,
		"message":  message,
		"database": dbStatus,
		"uptime":   time.Since(h.startTime).Round(time.Second).String(),
	})
}
