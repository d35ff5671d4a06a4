package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps service-layer errors to HTTP responses. Anything
// unrecognized is logged and reported as a 500 with the fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErrorMessage(err, "Invalid request")})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: appErrorMessage(err, "Already exists")})
	case errors.Is(err, apperrors.ErrDayClosed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Business day is already closed"})
	case errors.Is(err, apperrors.ErrCautionOutstanding):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Caution deposit not fully paid"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUserInactive):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account is deactivated"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// appErrorMessage surfaces an AppError's message when one is wrapped in err.
func appErrorMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// requireUserID pulls the authenticated user ID set by the auth middleware,
// aborting with 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
