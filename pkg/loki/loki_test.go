package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopReporter struct{}

func (r *nopReporter) Error(msg string, args ...any) {
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &nopReporter{})
	assert.Error(t, err)

	cfg.URL = "http://localhost/loki/api/v1/push"
	pusher, err := New(context.Background(), cfg, &nopReporter{})
	assert.NoError(t, err)
	assert.Equal(t, cfg.URL, pusher.config.URL)
	assert.Equal(t, 500, pusher.config.BatchSize)
	assert.Equal(t, 5*time.Second, pusher.config.FlushInterval)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
	pusher.Stop()
}

func Test_StopFlushesPendingBatch(t *testing.T) {

	received := make(chan pushRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz, err := gzip.NewReader(r.Body)
		assert.NoError(t, err)
		body, err := io.ReadAll(gz)
		assert.NoError(t, err)

		var req pushRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		received <- req

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pusher, err := New(context.Background(), Config{
		URL:    server.URL,
		Labels: map[string]string{"app": "test"},
	}, &nopReporter{})
	assert.NoError(t, err)

	assert.NoError(t, pusher.Push(Entry{Level: "error", Message: "boom"}))
	pusher.Stop()

	select {
	case req := <-received:
		assert.Len(t, req.Streams, 1)
		assert.Equal(t, "test", req.Streams[0].Stream["app"])
		assert.Len(t, req.Streams[0].Values, 1)
		assert.Contains(t, req.Streams[0].Values[0][1], "boom")
	case <-time.After(time.Second):
		t.Fatal("no push received before shutdown completed")
	}
}
