package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		if status >= http.StatusInternalServerError && logger != nil {
			logger.Error("Service error",
				zap.String("code", appErr.Code),
				zap.String("path", c.FullPath()),
				zap.String("details", appErr.Details),
			)
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	if logger != nil {
		logger.Error("Unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists, response.ErrCodeInvalidTransition, response.ErrCodeDuplicateRequest:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodePersistenceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseID reads a positive numeric path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

func invalidBody(c *gin.Context, err error) {
	response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body: "+err.Error())
}

func invalidQuery(c *gin.Context, err error) {
	response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query: "+err.Error())
}
