package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

type HealthHandler struct {
	store *services.RequestStore
}

func NewHealthHandler(store *services.RequestStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary     Health check
// @Description Reports liveness and whether the request store holds an error
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	state := h.store.State()

	status := "ok"
	if state.Error != nil {
		status = "degraded"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   status,
		Loading:  state.Loading,
		Requests: len(state.Requests),
	})
}
