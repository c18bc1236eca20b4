package submissions

import (
	"fmt"
	"time"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

type DeliveryStatus string

const (
	StatusDelivered DeliveryStatus = "delivered"
	StatusFailed    DeliveryStatus = "failed"
	StatusSkipped   DeliveryStatus = "skipped"
)

// DeliveryError wraps a failed webhook call for one form.
type DeliveryError struct {
	Form models.FormType
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s row: %v", e.Form, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// DeliveryResult describes what happened to the forwarded copy of a
// submission. It is logged and counted but never changes the response sent
// to the person who submitted the form.
type DeliveryResult struct {
	Form     models.FormType
	Status   DeliveryStatus
	Duration time.Duration
	Err      error
}
