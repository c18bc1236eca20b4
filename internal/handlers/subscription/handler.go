package subscription

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

const (
	MsgSubscribed = "Successfully subscribed for updates!"
	MsgRegistered = "Successfully registered for the webinar!"
)

type subscriber interface {
	Subscribe(ctx context.Context, req models.SubscriptionRequest) error
}

type Handler struct {
	Service subscriber
	logger  zerolog.Logger
}

func NewHandler(svc subscriber, logger zerolog.Logger) *Handler {
	return &Handler{Service: svc, logger: logger}
}

// Subscribe
// @Summary Subscribe for updates or sign up for the webinar
// @Description type "subscribe" needs only an email. Any other type also needs name, city and role.
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body models.SubscriptionRequest true "Subscription"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.SubmissionResponse
// @Failure 500 {object} models.SubmissionResponse
// @Router /subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.BadBody(c, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	if err := h.Service.Subscribe(ctx, req); err != nil {
		handlers.Failure(c, h.logger, err)
		return
	}

	if req.IsWebinar() {
		handlers.Success(c, MsgRegistered)
		return
	}
	handlers.Success(c, MsgSubscribed)
}

// Describe
// @Summary Describe the subscription endpoint
// @Tags subscription
// @Produce json
// @Success 200 {object} models.EndpointDescription
// @Router /subscribe [get]
func (h *Handler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, models.EndpointDescription{
		Message: "Skillverse Subscription API",
		Endpoints: map[string]string{
			http.MethodPost: "Submit subscription/webinar registration",
		},
	})
}
