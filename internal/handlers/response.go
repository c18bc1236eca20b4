package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

// MsgInternalError is the only detail a caller sees for unexpected failures.
const MsgInternalError = "Internal server error"

const requestIDKey = "request_id"

func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.SubmissionResponse{Success: true, Message: message})
}

// Failure maps a service error to 400 for validation problems and 500 for
// everything else.
func Failure(c *gin.Context, logger zerolog.Logger, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, models.SubmissionResponse{Error: vErr.Message})
		return
	}

	RequestLogger(c, logger).Error().Err(err).Msg("submission failed")
	c.JSON(http.StatusInternalServerError, models.SubmissionResponse{Error: MsgInternalError})
}

// BadBody answers a request whose body could not be decoded.
func BadBody(c *gin.Context, logger zerolog.Logger, err error) {
	RequestLogger(c, logger).Error().Err(err).Msg("failed to decode request body")
	c.JSON(http.StatusInternalServerError, models.SubmissionResponse{Error: MsgInternalError})
}

// RequestLogger adds the request id set by the RequestID middleware.
func RequestLogger(c *gin.Context, logger zerolog.Logger) *zerolog.Logger {
	l := logger.With().
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Str(requestIDKey, c.GetString(requestIDKey)).
		Logger()
	return &l
}
