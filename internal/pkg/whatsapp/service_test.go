// internal/pkg/whatsapp/service_test.go
package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"11999998888", "11999998888"},
		{"(11) 99999-8888", "11999998888"},
		{"+55 11 99999 8888", "5511999998888"},
		{"abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePhone(tt.input))
		})
	}
}

func TestSendMessage_InvalidContact(t *testing.T) {
	cfg := &config.Config{WhatsApp: config.WhatsAppConfig{Timeout: time.Second}}
	svc := NewService(cfg, testLogger())

	err := svc.SendMessage(context.Background(), "no digits", "hello")

	assert.Error(t, err)
}

func TestSendMessage_NoGatewayLogsLink(t *testing.T) {
	cfg := &config.Config{WhatsApp: config.WhatsAppConfig{Timeout: time.Second}}
	svc := NewService(cfg, testLogger())

	err := svc.SendMessage(context.Background(), "11999998888", "hello")

	assert.NoError(t, err)
}

func TestSendMessage_PostsToGateway(t *testing.T) {
	var got sendRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{WhatsApp: config.WhatsAppConfig{
		GatewayURL: srv.URL,
		APIKey:     "test-key",
		Timeout:    time.Second,
	}}
	svc := NewService(cfg, testLogger())

	err := svc.SendMessage(context.Background(), "(11) 99999-8888", "PEDIDO PIX")

	require.NoError(t, err)
	assert.Equal(t, "11999998888", got.To)
	assert.Equal(t, "PEDIDO PIX", got.Body)
	assert.Equal(t, "Bearer test-key", auth)
}

func TestSendMessage_GatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.Config{WhatsApp: config.WhatsAppConfig{
		GatewayURL: srv.URL,
		Timeout:    time.Second,
	}}
	svc := NewService(cfg, testLogger())

	err := svc.SendMessage(context.Background(), "11999998888", "hello")

	assert.ErrorContains(t, err, "status 502")
}
