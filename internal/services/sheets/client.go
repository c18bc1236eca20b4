package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// WebhookClient posts rows as JSON to a spreadsheet ingestion webhook.
type WebhookClient struct {
	url    string
	client HTTPClient
	logger zerolog.Logger
}

func NewWebhookClient(url string, httpClient HTTPClient, logger zerolog.Logger) *WebhookClient {
	return &WebhookClient{url: url, client: httpClient, logger: logger}
}

// Send makes exactly one POST. Any 2xx counts as delivered and the response
// body is ignored.
func (w *WebhookClient) Send(ctx context.Context, row any) error {
	start := time.Now()

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.logger.Error().Ctx(ctx).Err(err).Msg("failed to create webhook request")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Error().Ctx(ctx).Err(err).Msg("error sending row to webhook")
		return err
	}
	defer func() {
		if _, cerr := io.Copy(io.Discard, resp.Body); cerr != nil {
			w.logger.Debug().Ctx(ctx).Err(cerr).Msg("failed to drain webhook response")
		}
		if cerr := resp.Body.Close(); cerr != nil {
			w.logger.Error().Ctx(ctx).Err(cerr).Msg("failed to close webhook response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		w.logger.Error().
			Ctx(ctx).
			Int("status_code", resp.StatusCode).
			Msg("webhook returned non-2xx status")
		return &StatusError{StatusCode: resp.StatusCode}
	}

	w.logger.Debug().
		Ctx(ctx).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("row delivered to webhook")

	return nil
}
