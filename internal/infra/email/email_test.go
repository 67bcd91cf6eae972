package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"koostory/config"
	"koostory/internal/domain/constants"
	"koostory/internal/domain/entity"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPostmarkSender_Send(t *testing.T) {
	var body map[string]any
	var token string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Postmark-Server-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"a@example.com","MessageID":"pm-123","ErrorCode":0,"Message":"OK"}`))
	}))
	defer srv.Close()

	cfg := &config.EmailConfig{ServerToken: "server", From: "Koostory <no-reply@mail.koostory.net>"}
	client := postmark.NewClient(cfg.ServerToken, "")
	client.BaseURL = srv.URL

	receipt, err := newPostmarkSender(client, cfg, discardLogger()).Send(context.Background(), &entity.EmailMessage{
		To:       "a@example.com",
		Subject:  "Hi",
		TextBody: "plain",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "pm-123", receipt.ID)
	assert.Equal(t, "server", token)
	assert.Equal(t, "a@example.com", body["To"])
	assert.Equal(t, cfg.From, body["From"])
	assert.Equal(t, "plain", body["TextBody"])
}

func TestPostmarkSender_ProviderErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	defer srv.Close()

	cfg := &config.EmailConfig{ServerToken: "server", From: "no-reply@mail.koostory.net"}
	client := postmark.NewClient(cfg.ServerToken, "")
	client.BaseURL = srv.URL

	_, err := newPostmarkSender(client, cfg, discardLogger()).Send(context.Background(), &entity.EmailMessage{To: "x"})
	assert.ErrorContains(t, err, "300")
}

func TestNewEmailSender_SelectsProvider(t *testing.T) {
	logCfg := &config.Config{Email: &config.EmailConfig{Provider: constants.EmailProviderLog}}
	sender, err := NewEmailSender(SenderParams{Config: logCfg, Logger: discardLogger()})
	require.NoError(t, err)

	receipt, err := sender.Send(context.Background(), &entity.EmailMessage{Subject: "s"})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)

	missingToken := &config.Config{Email: &config.EmailConfig{Provider: constants.EmailProviderPostmark}}
	_, err = NewEmailSender(SenderParams{Config: missingToken, Logger: discardLogger()})
	assert.Error(t, err)

	unknown := &config.Config{Email: &config.EmailConfig{Provider: "carrier-pigeon"}}
	_, err = NewEmailSender(SenderParams{Config: unknown, Logger: discardLogger()})
	assert.Error(t, err)
}
