package logger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/services/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRoundTripper_LogsCompletedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.InfoLevel)
	client := logger.NewHTTPClient(zap.New(core), time.Second)

	resp, err := client.Get(srv.URL + "/v2/email/outbound-emails")
	require.NoError(t, err)
	_ = resp.Body.Close()

	entries := logs.FilterMessage("HTTP request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusAccepted), fields["status_code"])
	assert.Equal(t, "/v2/email/outbound-emails", fields["path"])
}

func TestRoundTripper_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := logger.NewHTTPClient(zap.New(core), time.Second)

	_, err := client.Get("http://127.0.0.1:1/unreachable")
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("HTTP request failed").Len())
}
