package forms

import (
	"context"

	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

// Form is a one-step form: the data being edited plus its submission status.
type Form[T any] struct {
	Data    T
	Status  Status
	Message string
}

func NewForm[T any](data T) Form[T] {
	return Form[T]{Data: data, Status: StatusIdle}
}

// Edit returns a copy with update applied. Edits are ignored while a
// submission is in flight; any other non-idle status returns to idle.
func (f Form[T]) Edit(update func(T) T) Form[T] {
	if f.Status == StatusLoading {
		return f
	}
	f.Data = update(f.Data)
	if f.Status != StatusIdle {
		f.Status = StatusIdle
		f.Message = ""
	}
	return f
}

// submit validates locally, makes at most one call, and on success replaces
// the data with reset(data). fallback is shown when the server sends no message.
func submit[T any](
	ctx context.Context,
	f Form[T],
	fallback string,
	validate func(T) error,
	send func(context.Context, T) (models.SubmissionResponse, error),
	reset func(T) T,
) Form[T] {
	if f.Status == StatusLoading {
		return f
	}
	if err := validate(f.Data); err != nil {
		f.Status = StatusIdle
		f.Message = err.Error()
		return f
	}

	f.Status = StatusLoading
	f.Message = ""

	resp, err := send(ctx, f.Data)
	if err != nil || !resp.Success {
		f.Status = StatusError
		f.Message = failureMessage(resp, err)
		return f
	}

	f.Status = StatusSuccess
	f.Data = reset(f.Data)
	f.Message = resp.Message
	if f.Message == "" {
		f.Message = fallback
	}
	return f
}

// NewSubscriptionForm starts a form of the given type ("subscribe" or
// "webinar").
func NewSubscriptionForm(formType string) Form[models.SubscriptionRequest] {
	return NewForm(models.SubscriptionRequest{Type: formType})
}

// SubmitSubscription keeps the form type after a successful reset.
func SubmitSubscription(
	ctx context.Context,
	f Form[models.SubscriptionRequest],
	v *validation.Validator,
	s SubscriptionSubmitter,
) Form[models.SubscriptionRequest] {
	return submit(ctx, f, MsgSubscribed, v.Subscription, s.Subscribe, func(old models.SubscriptionRequest) models.SubscriptionRequest {
		return models.SubscriptionRequest{Type: old.Type}
	})
}

func NewEduWarriorForm() Form[models.EduWarriorApplication] {
	return NewForm(models.EduWarriorApplication{})
}

// SetEduWarriorMobile keeps only the digits typed into the mobile field.
func SetEduWarriorMobile(f Form[models.EduWarriorApplication], value string) Form[models.EduWarriorApplication] {
	return f.Edit(func(app models.EduWarriorApplication) models.EduWarriorApplication {
		app.Mobile = DigitsOnly(value, 0)
		return app
	})
}

func SubmitEduWarrior(
	ctx context.Context,
	f Form[models.EduWarriorApplication],
	v *validation.Validator,
	s EduWarriorSubmitter,
) Form[models.EduWarriorApplication] {
	return submit(ctx, f, MsgApplied, v.EduWarrior, s.ApplyEduWarrior, func(models.EduWarriorApplication) models.EduWarriorApplication {
		return models.EduWarriorApplication{}
	})
}
