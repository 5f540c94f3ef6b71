// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// HealthController handles health check endpoints.
type HealthController struct {
	sessionStoreChecker func(ctx context.Context) bool
	dataSource          string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	SessionStore string `json:"session_store"`
	DataSource   string `json:"data_source"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(sessionStoreChecker func(ctx context.Context) bool, dataSource string) *HealthController {
	return &HealthController{
		sessionStoreChecker: sessionStoreChecker,
		dataSource:          dataSource,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the web tier and its session store.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	storeStatus := "disconnected"
	if h.sessionStoreChecker != nil && h.sessionStoreChecker(ctx) {
		storeStatus = "connected"
	}

	response := HealthResponse{
		Status:       "ok",
		SessionStore: storeStatus,
		DataSource:   h.dataSource,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
