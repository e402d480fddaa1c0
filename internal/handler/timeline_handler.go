package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type TimelineHandler struct {
	timelineService service.TimelineService
	logger          *zap.Logger
}

func NewTimelineHandler(timelineService service.TimelineService, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService, logger: logger}
}

type scrollQuery struct {
	Year    int `form:"year"`
	Quarter int `form:"quarter" binding:"required"`
}

// GetTimeline godoc
// @Summary      Gantt 타임라인 조회
// @Description  선택 연도와 다음 연도 범위로 잘린 Goal, Milestone, Task 막대를 반환합니다
// @Tags         timeline
// @Produce      json
// @Param        year query int false "연도"
// @Param        mode query string false "Week | Month"
// @Success      200 {object} response.SuccessResponse{data=timeline.Projection}
// @Failure      400 {object} response.ErrorResponse
// @Router       /timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	var query dto.TimelineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	projection, err := h.timelineService.GetTimeline(c.Request.Context(), query.Year, query.Mode)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, projection)
}

// UpdateProgress godoc
// @Summary      막대 진행률 변경
// @Description  드래그한 진행률을 반올림해 막대의 원본 엔티티에 저장합니다
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        request body dto.ProgressRequest true "진행률 변경"
// @Success      200 {object} response.SuccessResponse{data=dto.ProgressResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /timeline/progress [post]
func (h *TimelineHandler) UpdateProgress(c *gin.Context) {
	var req dto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.timelineService.UpdateProgress(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// OpenBar godoc
// @Summary      막대 클릭
// @Description  Goal 막대는 편집할 Goal을 반환하고, 다른 막대는 open=false를 반환합니다
// @Tags         timeline
// @Produce      json
// @Param        barId path string true "막대 ID (예: goal-1)"
// @Success      200 {object} response.SuccessResponse{data=dto.OpenBarResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /timeline/open/{barId} [get]
func (h *TimelineHandler) OpenBar(c *gin.Context) {
	result, err := h.timelineService.OpenBar(c.Request.Context(), c.Param("barId"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ScrollTarget godoc
// @Summary      분기 스크롤 위치
// @Tags         timeline
// @Produce      json
// @Param        year query int false "연도"
// @Param        quarter query int true "분기 (1-4)"
// @Success      200 {object} response.SuccessResponse{data=dto.ScrollResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /timeline/scroll [get]
func (h *TimelineHandler) ScrollTarget(c *gin.Context) {
	var query scrollQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	result, err := h.timelineService.ScrollTarget(c.Request.Context(), query.Year, query.Quarter)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
