package handler

import (
	"net/http"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/middleware"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct{ svc service.InsightService }

func NewInsightsHandler(svc service.InsightService) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

// Latest godoc
// @Summary      Latest cached smart insights for the caller's shop
// @Description  Serves whatever the advisor worker last cached. When nothing
// @Description  is cached yet the response carries the offline fallback text.
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InsightResponse
// @Router       /v1/insights [get]
func (h *InsightsHandler) Latest(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Latest(c.Request.Context(), claims.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh queues one advisor attempt. The caller gets 202 either way;
// the result lands in the cache, never in this response.
func (h *InsightsHandler) Refresh(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.svc.Refresh(c.Request.Context(), claims.TenantID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
