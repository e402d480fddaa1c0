package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
	logger        *zap.Logger
}

func NewMemberHandler(memberService service.MemberService, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{memberService: memberService, logger: logger}
}

type yearQuery struct {
	Year int `form:"year" binding:"omitempty,min=1"`
}

// ListMembers godoc
// @Summary      Member 목록 조회
// @Tags         members
// @Produce      json
// @Param        year query int false "연도"
// @Param        type query string false "existing | new"
// @Param        role query string false "역할"
// @Param        team query string false "팀"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse}
// @Router       /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var query dto.MemberListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, members)
}

// GetMemberSummary godoc
// @Summary      인력 현황 요약
// @Description  역할별, 제품별 인원과 신규/기존 인원 수를 집계합니다
// @Tags         members
// @Produce      json
// @Param        year query int false "연도"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberSummaryResponse}
// @Router       /members/summary [get]
func (h *MemberHandler) GetMemberSummary(c *gin.Context) {
	var query yearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	summary, err := h.memberService.GetMemberSummary(c.Request.Context(), query.Year)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, summary)
}

// GetMember godoc
// @Summary      Member 조회
// @Tags         members
// @Produce      json
// @Param        id path int true "Member ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, member)
}

// CreateMember godoc
// @Summary      Member 생성
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMemberRequest true "Member 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, member)
}

// UpdateMember godoc
// @Summary      Member 수정
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path int true "Member ID"
// @Param        request body dto.UpdateMemberRequest true "Member 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, member)
}

// DeleteMember godoc
// @Summary      Member 삭제
// @Description  담당 중인 태스크는 담당자 없음으로 변경됩니다
// @Tags         members
// @Param        id path int true "Member ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
