package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

const (
	SubscribePath  = "/api/subscribe"
	EduWarriorPath = "/api/eduwarrior/apply"
	WebinarPath    = "/api/webinar/register"

	requestIDHeader = "X-Request-ID"
)

// ErrEmptyResponse is returned when the API answers without a JSON body.
var ErrEmptyResponse = errors.New("empty response body")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the lead-capture API. It satisfies the submitter interfaces
// of the forms package.
type Client struct {
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

func New(baseURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

func (c *Client) Subscribe(ctx context.Context, req models.SubscriptionRequest) (models.SubmissionResponse, error) {
	return c.post(ctx, SubscribePath, req)
}

func (c *Client) ApplyEduWarrior(ctx context.Context, app models.EduWarriorApplication) (models.SubmissionResponse, error) {
	return c.post(ctx, EduWarriorPath, app)
}

func (c *Client) RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) (models.SubmissionResponse, error) {
	return c.post(ctx, WebinarPath, reg)
}

// Describe fetches the GET description of one of the form endpoints.
func (c *Client) Describe(ctx context.Context, path string) (models.EndpointDescription, error) {
	var desc models.EndpointDescription

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return desc, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return desc, err
	}
	defer c.closeBody(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return desc, fmt.Errorf("describe %s: status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&desc); err != nil {
		return desc, fmt.Errorf("decode description: %w", err)
	}
	return desc, nil
}

// post sends payload as JSON and decodes the envelope whatever the status
// code is. Only transport and decoding failures are returned as errors.
func (c *Client) post(ctx context.Context, path string, payload any) (models.SubmissionResponse, error) {
	var out models.SubmissionResponse

	body, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Str("path", path).Msg("submission request failed")
		return out, err
	}
	defer c.closeBody(ctx, resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyResponse
		}
		return out, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	c.logger.Debug().
		Ctx(ctx).
		Str("path", path).
		Str("request_id", requestID).
		Int("status_code", resp.StatusCode).
		Bool("success", out.Success).
		Msg("submission answered")

	return out, nil
}

func (c *Client) closeBody(ctx context.Context, body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Msg("failed to close response body")
	}
}
