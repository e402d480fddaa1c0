package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// GetSummary godoc
// @Summary      대시보드 요약
// @Description  Goal 수와 평균 진행률을 유형, 분기, 팀, 제품별로 집계합니다
// @Tags         dashboard
// @Produce      json
// @Param        year query int false "연도"
// @Success      200 {object} response.SuccessResponse{data=dto.SummaryResponse}
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	var query yearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), query.Year)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, summary)
}

// GetYears godoc
// @Summary      데이터가 있는 연도 목록
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.YearsResponse}
// @Router       /years [get]
func (h *DashboardHandler) GetYears(c *gin.Context) {
	years, err := h.dashboardService.GetYears(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, years)
}
