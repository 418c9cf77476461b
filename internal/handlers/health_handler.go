package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type ClientCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	DB      Pinger
	Clients ClientCounter
}

func NewHealthHandler(db Pinger, clients ClientCounter) *HealthHandler {
	return &HealthHandler{DB: db, Clients: clients}
}

// HealthStatus is the body of a successful health check.
type HealthStatus struct {
	Status  string `json:"status"`
	Clients int64  `json:"clients"`
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthStatus
// @Failure      503  {object}  dto.StandardError
// @Router       /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		unavailable(c, err)
		return
	}
	n, err := h.Clients.Count(ctx)
	if err != nil {
		unavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, HealthStatus{Status: "ok", Clients: n})
}

func unavailable(c *gin.Context, err error) {
	_ = c.Error(err)
	writeError(c, http.StatusServiceUnavailable, "Service unavailable", err.Error())
}
