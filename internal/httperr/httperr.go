package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

type HTTPError struct {
	Code    string                   `json:"error_code"`
	Message string                   `json:"message"`
	Fields  []appointment.FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromError maps domain and business errors onto HTTP responses.
func FromError(c *gin.Context, err error) {
	var verr *appointment.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, HTTPError{
			Code:    "validation_failed",
			Message: "Please fill in all required fields.",
			Fields:  verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, appointment.ErrNotFound):
		NotFound(c, "appointment_not_found", "Appointment not found.")
	case errors.Is(err, appointment.ErrIllegalTransition):
		Conflict(c, "illegal_transition", err.Error())
	case errors.Is(err, appointment.ErrBackend):
		Write(c, http.StatusBadGateway, "backend_unavailable", "Booking service is unavailable, please try again.")
	default:
		var be BusinessError
		if errors.As(err, &be) {
			BadRequest(c, be.Code, be.Code)
			return
		}
		Internal(c, "internal_error", "Unexpected error.")
	}
}
