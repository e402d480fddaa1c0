package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type GoalHandler struct {
	goalService service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{goalService: goalService, logger: logger}
}

// ListGoals godoc
// @Summary      Goal 목록 조회
// @Description  연도별 Goal 목록을 분기 순서(Q1..Q4, backlog)로 조회합니다
// @Tags         goals
// @Produce      json
// @Param        year query int false "연도 (생략 시 현재 활성 연도)"
// @Param        type query string false "issue | feature | feedback"
// @Param        team query string false "팀"
// @Param        product query string false "제품"
// @Param        quarter query string false "Q1 | Q2 | Q3 | Q4"
// @Success      200 {object} response.SuccessResponse{data=[]dto.GoalResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	var query dto.GoalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, goals)
}

// GetGoal godoc
// @Summary      Goal 조회
// @Description  마일스톤과 태스크를 포함한 Goal을 조회합니다
// @Tags         goals
// @Produce      json
// @Param        id path int true "Goal ID"
// @Success      200 {object} response.SuccessResponse{data=dto.GoalResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, goal)
}

// CreateGoal godoc
// @Summary      Goal 생성
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "재시도 키"
// @Param        request body dto.CreateGoalRequest true "Goal 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.GoalResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "중복 요청"
// @Failure      503 {object} response.ErrorResponse
// @Router       /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, goal)
}

// UpdateGoal godoc
// @Summary      Goal 수정
// @Description  전달된 필드만 수정합니다. 날짜에 null을 보내면 값을 지웁니다
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id path int true "Goal ID"
// @Param        request body dto.UpdateGoalRequest true "Goal 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.GoalResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary      Goal 삭제
// @Description  하위 마일스톤과 태스크도 함께 삭제됩니다
// @Tags         goals
// @Param        id path int true "Goal ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
