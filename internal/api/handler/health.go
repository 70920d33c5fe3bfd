package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/loansewa/loansewa-web/internal/core/ports"
)

const readinessTimeout = 3 * time.Second

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	rdb *redis.Client
	api ports.LoanAPI
}

func NewHealthHandler(rdb *redis.Client, api ports.LoanAPI) *HealthHandler {
	return &HealthHandler{rdb: rdb, api: api}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness checks the session store and the loan API. Either dependency
// being down makes the instance unready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"redis": "ok", "loan_api": "ok"}
	healthy := true

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}
	if err := h.api.Ping(ctx); err != nil {
		checks["loan_api"] = err.Error()
		healthy = false
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, checks)
	}
	return c.JSON(http.StatusOK, checks)
}
