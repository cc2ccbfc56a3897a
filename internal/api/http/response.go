package apiHttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/managejob/backend/internal/service"
	"github.com/managejob/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ValidationErrorStruct struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func okResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, statusResponse{Success: true, Message: message})
}

func okDataResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dataResponse{Success: true, Data: data})
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, statusResponse{Success: false, Message: message})
}

// serviceErrorResponse translates service sentinels into the documented HTTP
// statuses. Anything unmapped is a 500 and gets logged with its cause, the
// client only sees a generic message.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		newErrorResponse(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrAlreadyApplied):
		newErrorResponse(c, http.StatusConflict, "You have already applied to this job")
	case errors.Is(err, service.ErrOTPNotFound):
		newErrorResponse(c, http.StatusBadRequest, "No OTP request found. Please request a new OTP.")
	case errors.Is(err, service.ErrOTPExpired):
		newErrorResponse(c, http.StatusBadRequest, "OTP has expired. Please request a new OTP.")
	case errors.Is(err, service.ErrOTPMismatch):
		newErrorResponse(c, http.StatusBadRequest, "Invalid OTP. Please try again.")
	case errors.Is(err, service.ErrInvalidCredentials):
		newErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
		newErrorResponse(c, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, service.ErrUserNotFound):
		newErrorResponse(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrJobNotFound):
		newErrorResponse(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, service.ErrApplicationNotFound):
		newErrorResponse(c, http.StatusNotFound, "Application not found")
	case errors.Is(err, service.ErrReviewNotFound):
		newErrorResponse(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, service.ErrEmailDeliveryFailed):
		logger.Error("email delivery failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to send email. Please try again.")
	default:
		logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		newErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			Success: false,
			Message: "Validation error",
			Errors:  out,
		})
		return
	}

	newErrorResponse(c, http.StatusBadRequest, "Invalid request body")
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "number":
		return "This field must be numeric"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	}
	return tag
}
