package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/service"
)

type IdeaHandler struct {
	ideaService service.IdeaService
	logger      *zap.Logger
}

func NewIdeaHandler(ideaService service.IdeaService, logger *zap.Logger) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService, logger: logger}
}

// ListIdeas godoc
// @Summary      Idea 목록 조회
// @Description  우선순위 오름차순, 같은 우선순위는 최신 순으로 정렬됩니다
// @Tags         ideas
// @Produce      json
// @Param        year query int false "연도"
// @Param        status query string false "open | approved | rejected | converted"
// @Param        type query string false "issue | feature | feedback"
// @Param        product query string false "제품"
// @Param        priority query int false "우선순위"
// @Success      200 {object} response.SuccessResponse{data=[]dto.IdeaResponse}
// @Router       /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	var query dto.IdeaListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidQuery(c, err)
		return
	}

	ideas, err := h.ideaService.ListIdeas(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, ideas)
}

// GetIdea godoc
// @Summary      Idea 조회
// @Tags         ideas
// @Produce      json
// @Param        id path int true "Idea ID"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, idea)
}

// CreateIdea godoc
// @Summary      Idea 생성
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateIdeaRequest true "Idea 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.IdeaResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	idea, err := h.ideaService.CreateIdea(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, idea)
}

// UpdateIdea godoc
// @Summary      Idea 수정
// @Description  상태는 approve/reject/convert로만 변경할 수 있습니다
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id path int true "Idea ID"
// @Param        request body dto.UpdateIdeaRequest true "Idea 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	idea, err := h.ideaService.UpdateIdea(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, idea)
}

// DeleteIdea godoc
// @Summary      Idea 삭제
// @Tags         ideas
// @Param        id path int true "Idea ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ideaService.DeleteIdea(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveIdea godoc
// @Summary      Idea 승인
// @Tags         ideas
// @Produce      json
// @Param        id path int true "Idea ID"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "허용되지 않는 상태 전환"
// @Router       /ideas/{id}/approve [post]
func (h *IdeaHandler) ApproveIdea(c *gin.Context) {
	h.transition(c, h.ideaService.ApproveIdea)
}

// RejectIdea godoc
// @Summary      Idea 반려
// @Tags         ideas
// @Produce      json
// @Param        id path int true "Idea ID"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "허용되지 않는 상태 전환"
// @Router       /ideas/{id}/reject [post]
func (h *IdeaHandler) RejectIdea(c *gin.Context) {
	h.transition(c, h.ideaService.RejectIdea)
}

func (h *IdeaHandler) transition(c *gin.Context, fn func(ctx context.Context, id uint) (*dto.IdeaResponse, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	idea, err := fn(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, idea)
}

// ConvertIdea godoc
// @Summary      Idea를 Goal로 전환
// @Description  승인된 Idea만 전환할 수 있으며, 상태 변경과 Goal 생성은 하나의 트랜잭션으로 처리됩니다
// @Tags         ideas
// @Produce      json
// @Param        id path int true "Idea ID"
// @Success      201 {object} response.SuccessResponse{data=dto.ConvertIdeaResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "허용되지 않는 상태 전환"
// @Router       /ideas/{id}/convert [post]
func (h *IdeaHandler) ConvertIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.ideaService.ConvertIdea(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// ListComments godoc
// @Summary      Idea 댓글 목록
// @Tags         ideas
// @Produce      json
// @Param        id path int true "Idea ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id}/comments [get]
func (h *IdeaHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.ideaService.ListComments(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// AddComment godoc
// @Summary      Idea 댓글 작성
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id path int true "Idea ID"
// @Param        request body dto.CreateCommentRequest true "댓글"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/{id}/comments [post]
func (h *IdeaHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	comment, err := h.ideaService.AddComment(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Idea 댓글 삭제
// @Tags         ideas
// @Param        commentId path int true "Comment ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /ideas/comments/{commentId} [delete]
func (h *IdeaHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := h.ideaService.DeleteComment(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
