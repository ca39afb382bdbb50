package health

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
	"qravy/internal/shared/version"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

type Handler struct {
	checks  map[string]Check
	timeout time.Duration
	logger  logger.Interface
}

func NewHandler(checks map[string]Check, logger logger.Interface) *Handler {
	return &Handler{
		checks:  checks,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

type statusResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := statusResponse{Status: "ok", Version: version.String(), Checks: make(map[string]string, len(h.checks))}
	var failed []string
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "check", name, "error", err)
			resp.Checks[name] = "unavailable"
			failed = append(failed, name)
			continue
		}
		resp.Checks[name] = "ok"
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "unhealthy: "+strings.Join(failed, ", "))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
