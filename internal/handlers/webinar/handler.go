package webinar

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Rakeshkoyya/skillverse/internal/handlers"
	"github.com/Rakeshkoyya/skillverse/internal/models"
)

const timeoutDuration = 10 * time.Second

const MsgRegistered = "Registration successful! You will receive the webinar link on WhatsApp."

type registrar interface {
	RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) error
}

type Handler struct {
	Service registrar
	event   models.WebinarEvent
	logger  zerolog.Logger
}

func NewHandler(svc registrar, event models.WebinarEvent, logger zerolog.Logger) *Handler {
	return &Handler{Service: svc, event: event, logger: logger}
}

// Register
// @Summary Register a parent for the awareness webinar
// @Tags webinar
// @Accept json
// @Produce json
// @Param request body models.WebinarRegistration true "Registration"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.SubmissionResponse
// @Failure 500 {object} models.SubmissionResponse
// @Router /webinar/register [post]
func (h *Handler) Register(c *gin.Context) {
	var reg models.WebinarRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		handlers.BadBody(c, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	if err := h.Service.RegisterWebinar(ctx, reg); err != nil {
		handlers.Failure(c, h.logger, err)
		return
	}

	handlers.Success(c, MsgRegistered)
}

// Describe
// @Summary Describe the webinar and its registration endpoint
// @Tags webinar
// @Produce json
// @Success 200 {object} models.EndpointDescription
// @Router /webinar/register [get]
func (h *Handler) Describe(c *gin.Context) {
	event := h.event
	c.JSON(http.StatusOK, models.EndpointDescription{
		Message: "Skillverse Webinar Registration API",
		Webinar: &event,
		Endpoints: map[string]string{
			http.MethodPost: "Register for the webinar",
		},
	})
}
