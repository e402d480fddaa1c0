package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
	logger          *zap.Logger
}

func NewScheduleHandler(scheduleService service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, logger: logger}
}

// GetBoard godoc
// @Summary      분기 보드 조회
// @Description  Goal을 backlog, Q1..Q4 버킷으로 묶고 버킷별 개수를 함께 반환합니다
// @Tags         schedule
// @Produce      json
// @Param        year query int false "연도"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Router       /schedule/board [get]
func (h *ScheduleHandler) GetBoard(c *gin.Context) {
	var query yearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	board, err := h.scheduleService.GetBoard(c.Request.Context(), query.Year)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}

// Relocate godoc
// @Summary      Goal 분기 이동
// @Description  Goal을 버킷에 놓으면 시작일과 종료일이 해당 분기의 첫날과 마지막 날로 바뀝니다. backlog는 날짜를 지웁니다
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        request body dto.RelocateRequest true "이동 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.RelocateResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /schedule/relocate [post]
func (h *ScheduleHandler) Relocate(c *gin.Context) {
	var req dto.RelocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.scheduleService.Relocate(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
