package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Sender delivers one row to a webhook.
type Sender interface {
	Send(ctx context.Context, row any) error
}

// BreakerPolicy decides when a webhook is treated as down. The zero value
// turns the breaker off and every row is attempted.
type BreakerPolicy struct {
	Trips    uint32
	Window   time.Duration
	Cooldown time.Duration
}

func (p BreakerPolicy) Enabled() bool {
	return p.Trips > 0
}

// Guard puts s behind a circuit breaker when p is enabled and returns s as
// is otherwise.
func Guard(name string, p BreakerPolicy, s Sender, logger zerolog.Logger) Sender {
	if !p.Enabled() {
		return s
	}
	return NewBreakerClient(name, p, s, logger)
}

// BreakerClient skips the webhook after Trips consecutive failures and lets
// a single trial row through once Cooldown has passed.
type BreakerClient struct {
	cb   *gobreaker.CircuitBreaker
	next Sender
}

func NewBreakerClient(name string, p BreakerPolicy, next Sender, logger zerolog.Logger) *BreakerClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    p.Window,
		Timeout:     p.Cooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= p.Trips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("webhook breaker changed state")
		},
	})
	return &BreakerClient{cb: cb, next: next}
}

func (b *BreakerClient) Send(ctx context.Context, row any) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Send(ctx, row)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s skipped: %w", b.cb.Name(), err)
	default:
		return err
	}
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}
