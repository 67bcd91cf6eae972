package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"koostory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.EmailEvent{
		RequestID: "req-1",
		MessageID: "msg-1",
		To:        "someone@example.com",
		Subject:   "Hello",
		TextBody:  "Hi",
	}

	require.NoError(t, pub.PublishEmailEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "msg-1", received.Message.MessageID)
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.EmailEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := pub.PublishEmailEvent(context.Background(), &service.EmailEvent{MessageID: "m"})

	assert.ErrorContains(t, err, "500")
}
