package admin

import (
	"strings"

	"github.com/zephyra-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats 仪表盘统计，refresh=1 跳过缓存
func (h *Handler) GetDashboardStats(c *gin.Context) {
	refresh := c.Query("refresh")
	forceRefresh := refresh == "1" || strings.EqualFold(refresh, "true")
	overview, err := h.DashboardService.GetOverview(c.Request.Context(), forceRefresh)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, overview)
}
