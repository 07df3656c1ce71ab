// internal/pkg/whatsapp/service.go
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Service dispatches outbound WhatsApp messages through an HTTP
// gateway. When no gateway is configured it degrades to logging a
// click-to-chat link, which keeps development setups working without
// credentials.
type Service struct {
	config *config.Config
	client *http.Client
	log    *logrus.Logger
}

// NewService creates a new WhatsApp messaging service
func NewService(cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.WhatsApp.Timeout,
		},
		log: log,
	}
}

// sendRequest is the gateway API payload
type sendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendMessage dispatches a message to a phone-like contact handle.
// Callers treat this as best-effort; delivery confirmation is not
// modeled.
func (s *Service) SendMessage(ctx context.Context, to, body string) error {
	phone := normalizePhone(to)
	if phone == "" {
		return fmt.Errorf("invalid whatsapp contact: %q", to)
	}

	if s.config.WhatsApp.GatewayURL == "" {
		s.log.WithFields(logrus.Fields{
			"to":   phone,
			"link": chatLink(phone, body),
		}).Info("whatsapp gateway not configured, logging click-to-chat link")
		return nil
	}

	payload, err := json.Marshal(sendRequest{To: phone, Body: body})
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WhatsApp.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.WhatsApp.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.WhatsApp.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// normalizePhone strips everything but digits from the contact handle
func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// chatLink builds a wa.me click-to-chat URL for the message
func chatLink(phone, body string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(body))
}
