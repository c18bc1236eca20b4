package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rakeshkoyya/skillverse/internal/client"
	"github.com/Rakeshkoyya/skillverse/internal/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", srv.Client(), zerolog.Nop())
}

func TestClient_Subscribe_Success(t *testing.T) {
	var got models.SubscriptionRequest
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, client.SubscribePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"message":"Successfully subscribed for updates!"}`)
	})

	resp, err := c.Subscribe(context.Background(), models.SubscriptionRequest{Email: "a@b.co", Type: "subscribe"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Successfully subscribed for updates!", resp.Message)
	assert.Equal(t, "a@b.co", got.Email)
}

func TestClient_ErrorEnvelopeIsNotAnError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.EduWarriorPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"error":"Invalid mobile number. Please enter 10 digits."}`)
	})

	resp, err := c.ApplyEduWarrior(context.Background(), models.EduWarriorApplication{Mobile: "123"})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid mobile number. Please enter 10 digits.", resp.Error)
}

func TestClient_EmptyBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.WebinarPath, r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.RegisterWebinar(context.Background(), models.WebinarRegistration{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrEmptyResponse))
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(url, http.DefaultClient, zerolog.Nop())
	_, err := c.Subscribe(context.Background(), models.SubscriptionRequest{Email: "a@b.co"})

	assert.Error(t, err)
}

func TestClient_Describe(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = io.WriteString(w, `{"message":"Skillverse Webinar Registration API",`+
			`"webinar":{"title":"Life Skills","date":"Sunday","audience":"Parents","mode":"Online"},`+
			`"endpoints":{"POST":"Register for the webinar"}}`)
	})

	desc, err := c.Describe(context.Background(), client.WebinarPath)

	require.NoError(t, err)
	assert.Equal(t, "Skillverse Webinar Registration API", desc.Message)
	require.NotNil(t, desc.Webinar)
	assert.Equal(t, "Online", desc.Webinar.Mode)
	assert.Equal(t, "Register for the webinar", desc.Endpoints["POST"])
}

func TestClient_DescribeNonOK(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Describe(context.Background(), "/api/missing")
	assert.Error(t, err)
}
