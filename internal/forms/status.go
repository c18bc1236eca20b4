package forms

import (
	"context"
	"strings"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

// Status tracks one submission attempt: idle -> loading -> success | error.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	MsgSomethingWrong = "Something went wrong. Please try again."
	MsgNetworkError   = "Network error. Please check your connection and try again."

	// Shown when a successful response carries no message of its own.
	MsgSubscribed = "Successfully subscribed!"
	MsgApplied    = "Application submitted successfully! We'll contact you soon."
)

type SubscriptionSubmitter interface {
	Subscribe(ctx context.Context, req models.SubscriptionRequest) (models.SubmissionResponse, error)
}

type EduWarriorSubmitter interface {
	ApplyEduWarrior(ctx context.Context, app models.EduWarriorApplication) (models.SubmissionResponse, error)
}

type WebinarSubmitter interface {
	RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) (models.SubmissionResponse, error)
}

// DigitsOnly drops every non-digit rune and keeps at most limit digits. A
// limit of zero keeps them all.
func DigitsOnly(s string, limit int) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if limit > 0 && count == limit {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}

// failureMessage picks the text shown after a failed submission.
func failureMessage(resp models.SubmissionResponse, err error) string {
	if err != nil {
		return MsgNetworkError
	}
	if resp.Error != "" {
		return resp.Error
	}
	return MsgSomethingWrong
}
