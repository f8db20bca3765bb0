package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/models"
)

type HealthHandler struct {
	store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary     Health check
// @Description Reports app liveness and the database state: ok, missing_config (no connection string) or error with detail
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := models.HealthResponse{App: "ok"}

	switch {
	case h.store == nil:
		resp.DB = "missing_config"
	default:
		if err := h.store.Probe(); err != nil {
			resp.DB = "error"
			resp.Error = err.Error()
		} else {
			resp.DB = "ok"
		}
	}

	c.JSON(http.StatusOK, resp)
}
