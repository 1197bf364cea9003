package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitelog/sitelog-api/internal/service"
	"github.com/sitelog/sitelog-api/pkg/response"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs a stats handler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// Get godoc
// @Summary Get dashboard statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
