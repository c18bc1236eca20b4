package eduwarrior

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

const MsgApplied = "Thank you for your interest in becoming an EduWarrior! " +
	"We will review your application and contact you soon."

type applicant interface {
	ApplyEduWarrior(ctx context.Context, app models.EduWarriorApplication) error
}

type Handler struct {
	Service applicant
	logger  zerolog.Logger
}

func NewHandler(svc applicant, logger zerolog.Logger) *Handler {
	return &Handler{Service: svc, logger: logger}
}

// Apply
// @Summary Apply to run a Skillverse centre as an EduWarrior
// @Tags eduwarrior
// @Accept json
// @Produce json
// @Param request body models.EduWarriorApplication true "Application"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.SubmissionResponse
// @Failure 500 {object} models.SubmissionResponse
// @Router /eduwarrior/apply [post]
func (h *Handler) Apply(c *gin.Context) {
	var app models.EduWarriorApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		handlers.BadBody(c, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	if err := h.Service.ApplyEduWarrior(ctx, app); err != nil {
		handlers.Failure(c, h.logger, err)
		return
	}

	handlers.Success(c, MsgApplied)
}

// Describe
// @Summary Describe the EduWarrior application endpoint
// @Tags eduwarrior
// @Produce json
// @Success 200 {object} models.EndpointDescription
// @Router /eduwarrior/apply [get]
func (h *Handler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, models.EndpointDescription{
		Message: "Skillverse EduWarrior Application API",
		Endpoints: map[string]string{
			http.MethodPost: "Submit EduWarrior application",
		},
	})
}
