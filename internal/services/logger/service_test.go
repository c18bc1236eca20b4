package logger_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Rakeshkoyya/skillverse/internal/services/logger"
)

type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestRoundTripper_LogsCompletedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	core, logs := observer.New(zap.InfoLevel)
	client := &http.Client{Transport: logger.NewRoundTripper(zap.New(core))}

	resp, err := client.Post(srv.URL+"/exec?key=secret", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	entries := logs.FilterMessage("outbound request completed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusCreated), fields["status_code"])
	assert.Equal(t, srv.URL+"/exec", fields["url"])
	assert.NotContains(t, fields["url"], "secret")
}

func TestRoundTripper_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rt := &logger.RoundTripper{Logger: zap.New(core), Proxy: failingTransport{err: errors.New("dial tcp: refused")}}

	req, err := http.NewRequest(http.MethodPost, "https://sheets.example.com/hook", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("outbound request failed").Len())
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "outbound.log")

	l, closeLog, err := logger.NewFileLogger(path)
	require.NoError(t, err)

	l.Info("hello")
	require.NoError(t, l.Sync())
	require.NoError(t, closeLog())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)

	assert.Error(t, closeLog(), "file is already closed")
}
