package forms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rakeshkoyya/skillverse/internal/forms"
	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

func TestSubmitSubscription(t *testing.T) {
	v := validation.New()

	t.Run("client validation blocks the call", func(t *testing.T) {
		sub := &mockSubmitter{}
		f := forms.NewSubscriptionForm(models.SubscriptionTypeSubscribe)

		next := forms.SubmitSubscription(context.Background(), f, v, sub)

		assert.Equal(t, forms.StatusIdle, next.Status)
		assert.Equal(t, validation.MsgEmailRequired, next.Message)
		sub.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
	})

	t.Run("success resets data but keeps the type", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Subscribe", mock.Anything, models.SubscriptionRequest{Email: "a@b.co", Type: "subscribe"}).
			Return(models.SubmissionResponse{Success: true, Message: "Successfully subscribed for updates!"}, nil).
			Once()

		f := forms.NewSubscriptionForm(models.SubscriptionTypeSubscribe).
			Edit(func(r models.SubscriptionRequest) models.SubscriptionRequest {
				r.Email = "a@b.co"
				return r
			})

		next := forms.SubmitSubscription(context.Background(), f, v, sub)

		assert.Equal(t, forms.StatusSuccess, next.Status)
		assert.Equal(t, "Successfully subscribed for updates!", next.Message)
		assert.Equal(t, models.SubscriptionRequest{Type: "subscribe"}, next.Data)
		sub.AssertExpectations(t)
	})

	t.Run("empty server message falls back to the subscribe text", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Subscribe", mock.Anything, mock.Anything).
			Return(models.SubmissionResponse{Success: true}, nil).Once()

		f := forms.NewSubscriptionForm(models.SubscriptionTypeSubscribe).
			Edit(func(r models.SubscriptionRequest) models.SubscriptionRequest {
				r.Email = "a@b.co"
				return r
			})

		next := forms.SubmitSubscription(context.Background(), f, v, sub)

		assert.Equal(t, forms.StatusSuccess, next.Status)
		assert.Equal(t, "Successfully subscribed!", next.Message)
	})

	t.Run("network failure", func(t *testing.T) {
		sub := &mockSubmitter{}
		sub.On("Subscribe", mock.Anything, mock.Anything).
			Return(models.SubmissionResponse{}, errors.New("offline")).Once()

		f := forms.NewSubscriptionForm(models.SubscriptionTypeSubscribe).
			Edit(func(r models.SubscriptionRequest) models.SubscriptionRequest {
				r.Email = "a@b.co"
				return r
			})

		next := forms.SubmitSubscription(context.Background(), f, v, sub)

		assert.Equal(t, forms.StatusError, next.Status)
		assert.Equal(t, forms.MsgNetworkError, next.Message)
		assert.Equal(t, "a@b.co", next.Data.Email, "data is kept for a retry")

		edited := next.Edit(func(r models.SubscriptionRequest) models.SubscriptionRequest { return r })
		assert.Equal(t, forms.StatusIdle, edited.Status)
		assert.Empty(t, edited.Message)
	})
}

func TestSubmitEduWarrior(t *testing.T) {
	v := validation.New()
	sub := &mockSubmitter{}
	sub.On("ApplyEduWarrior", mock.Anything, mock.Anything).
		Return(models.SubmissionResponse{Success: true}, nil).Once()

	f := forms.NewEduWarriorForm().Edit(func(a models.EduWarriorApplication) models.EduWarriorApplication {
		a.Name = "Ravi"
		a.Email = "ravi@example.com"
		a.City = "Indore"
		a.Education = "graduate"
		a.Expertise = "business"
		a.Motivation = "Teach"
		a.Availability = "flexible"
		return a
	})
	f = forms.SetEduWarriorMobile(f, "91234 56780")
	assert.Equal(t, "9123456780", f.Data.Mobile)

	next := forms.SubmitEduWarrior(context.Background(), f, v, sub)

	assert.Equal(t, forms.StatusSuccess, next.Status)
	assert.Equal(t, "Application submitted successfully! We'll contact you soon.", next.Message)
	assert.Equal(t, models.EduWarriorApplication{}, next.Data)
	sub.AssertExpectations(t)
}

func TestForm_EditIgnoredWhileLoading(t *testing.T) {
	f := forms.Form[models.SubscriptionRequest]{Status: forms.StatusLoading}
	next := f.Edit(func(r models.SubscriptionRequest) models.SubscriptionRequest {
		r.Email = "changed@b.co"
		return r
	})
	assert.Equal(t, f, next)
}
