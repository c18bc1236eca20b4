package submissions

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/services/sheets"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

const defaultDeliveryTimeout = 10 * time.Second

type formValidator interface {
	Subscription(req models.SubscriptionRequest) error
	EduWarrior(app models.EduWarriorApplication) error
	Webinar(reg models.WebinarRegistration) error
}

type recorder interface {
	RecordSubmission(form models.FormType, err error)
	RecordDelivery(form models.FormType, status string, duration time.Duration)
}

// Sender delivers one row to a spreadsheet webhook.
type Sender interface {
	Send(ctx context.Context, row any) error
}

// Targets maps a form to the webhook its rows go to. Forms without an entry
// are accepted but not forwarded.
type Targets map[models.FormType]Sender

type Option func(*Service)

// WithClock overrides the time source used for row timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithDeliveryTimeout bounds a single webhook call.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

type Service struct {
	validator formValidator
	targets   Targets
	recorder  recorder
	logger    zerolog.Logger
	now       func() time.Time
	timeout   time.Duration
}

func NewService(v formValidator, targets Targets, rec recorder, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		validator: v,
		targets:   targets,
		recorder:  rec,
		logger:    logger,
		now:       time.Now,
		timeout:   defaultDeliveryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Subscribe(ctx context.Context, req models.SubscriptionRequest) error {
	if err := s.check(models.FormSubscription, s.validator.Subscription(req)); err != nil {
		return err
	}

	at := s.now()
	s.logSubmission(ctx, models.FormSubscription, at, req)
	s.forward(ctx, models.FormSubscription, sheets.NewSubscriptionRow(req, at))
	return nil
}

func (s *Service) ApplyEduWarrior(ctx context.Context, app models.EduWarriorApplication) error {
	if err := s.check(models.FormEduWarrior, s.validator.EduWarrior(app)); err != nil {
		return err
	}

	at := s.now()
	s.logSubmission(ctx, models.FormEduWarrior, at, app)
	s.forward(ctx, models.FormEduWarrior, sheets.NewEduWarriorRow(app, at))
	return nil
}

func (s *Service) RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) error {
	if err := s.check(models.FormWebinar, s.validator.Webinar(reg)); err != nil {
		return err
	}

	at := s.now()
	s.logSubmission(ctx, models.FormWebinar, at, reg)
	s.forward(ctx, models.FormWebinar, sheets.NewWebinarRow(reg, at))
	return nil
}

func (s *Service) check(form models.FormType, err error) error {
	s.recorder.RecordSubmission(form, err)
	if err == nil {
		return nil
	}

	if validation.IsValidationError(err) {
		s.logger.Info().Str("form", form.String()).Str("reason", err.Error()).Msg("submission rejected")
		return err
	}
	return fmt.Errorf("validate %s submission: %w", form, err)
}

func (s *Service) logSubmission(ctx context.Context, form models.FormType, at time.Time, payload any) {
	s.logger.Info().
		Ctx(ctx).
		Str("form", form.String()).
		Str("timestamp", sheets.Timestamp(at)).
		Interface("payload", payload).
		Msg("submission received")
}

// forward makes at most one webhook call. The call is detached from request
// cancellation so a client hanging up does not drop the row.
func (s *Service) forward(ctx context.Context, form models.FormType, row any) DeliveryResult {
	target, ok := s.targets[form]
	if !ok || target == nil {
		result := DeliveryResult{Form: form, Status: StatusSkipped}
		s.logger.Debug().Ctx(ctx).Str("form", form.String()).Msg("no webhook configured, row not forwarded")
		s.recorder.RecordDelivery(form, string(result.Status), 0)
		return result
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	err := target.Send(sendCtx, row)
	result := DeliveryResult{Form: form, Status: StatusDelivered, Duration: time.Since(start)}

	if err != nil {
		result.Status = StatusFailed
		result.Err = &DeliveryError{Form: form, Err: err}
		s.logger.Error().
			Ctx(ctx).
			Err(result.Err).
			Str("form", form.String()).
			Dur("duration", result.Duration).
			Msg("failed to forward submission")
	} else {
		s.logger.Info().
			Ctx(ctx).
			Str("form", form.String()).
			Dur("duration", result.Duration).
			Msg("submission forwarded")
	}

	s.recorder.RecordDelivery(form, string(result.Status), result.Duration)
	return result
}
