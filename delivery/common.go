package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

// statusForError maps service errors onto HTTP statuses and client-safe
// messages. OTP failures share one generic message by design.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, domain.ErrInvalidRole.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Record not found"
	case errors.Is(err, domain.ErrInvalidOTP), errors.Is(err, domain.ErrExpiredOTP):
		return http.StatusBadRequest, "Invalid or expired OTP"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrNotCheckedIn),
		errors.Is(err, domain.ErrAlreadyCheckedOut),
		errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError logs the real error and answers the client. Store failure
// detail is only exposed in development mode.
func respondError(c *gin.Context, err error, operation string, dev bool) {
	status, message := statusForError(err)
	utils.LogRequest(nil, status, operation, err)

	body := gin.H{"success": false, "message": message}
	if status == http.StatusInternalServerError && dev {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, err error, operation string) {
	utils.LogRequest(nil, http.StatusBadRequest, operation, err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": utils.TranslateValidationError(err),
	})
}
