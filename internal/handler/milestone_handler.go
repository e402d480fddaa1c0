package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type MilestoneHandler struct {
	milestoneService service.MilestoneService
	logger           *zap.Logger
}

func NewMilestoneHandler(milestoneService service.MilestoneService, logger *zap.Logger) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService, logger: logger}
}

type milestoneListQuery struct {
	GoalID uint `form:"goalId"`
}

// ListMilestones godoc
// @Summary      Milestone 목록 조회
// @Tags         milestones
// @Produce      json
// @Param        goalId query int false "Goal ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MilestoneResponse}
// @Router       /milestones [get]
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	var query milestoneListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	milestones, err := h.milestoneService.ListMilestones(c.Request.Context(), query.GoalID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestones)
}

// GetMilestone godoc
// @Summary      Milestone 조회
// @Tags         milestones
// @Produce      json
// @Param        id path int true "Milestone ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MilestoneResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /milestones/{id} [get]
func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	milestone, err := h.milestoneService.GetMilestone(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestone)
}

// CreateMilestone godoc
// @Summary      Milestone 생성
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMilestoneRequest true "Milestone 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MilestoneResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse "Goal을 찾을 수 없음"
// @Router       /milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	milestone, err := h.milestoneService.CreateMilestone(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, milestone)
}

// UpdateMilestone godoc
// @Summary      Milestone 수정
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id path int true "Milestone ID"
// @Param        request body dto.UpdateMilestoneRequest true "Milestone 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.MilestoneResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /milestones/{id} [put]
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	milestone, err := h.milestoneService.UpdateMilestone(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestone)
}

// DeleteMilestone godoc
// @Summary      Milestone 삭제
// @Tags         milestones
// @Param        id path int true "Milestone ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /milestones/{id} [delete]
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.milestoneService.DeleteMilestone(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
