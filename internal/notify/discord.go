// Package notify delivers semantic pet events to a Discord webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/domain"
)

const _webhookTimeout = 5 * time.Second

// DiscordNotifier posts events to a webhook URL. Delivery is best
// effort: failures are logged and swallowed, never surfaced to the
// sync loop.
type DiscordNotifier struct {
	logger     *zap.Logger
	client     *http.Client
	webhookURL string
}

// NewDiscordNotifier creates a notifier; an empty webhook URL yields a
// disabled notifier that drops every event.
func NewDiscordNotifier(logger *zap.Logger, webhookURL string) *DiscordNotifier {
	if webhookURL == "" {
		logger.Debug("Discord notifications disabled")
	}
	return &DiscordNotifier{
		logger:     logger,
		client:     &http.Client{Timeout: _webhookTimeout},
		webhookURL: webhookURL,
	}
}

type webhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Notify delivers one event
func (n *DiscordNotifier) Notify(ctx context.Context, event domain.Event) {
	if n.webhookURL == "" {
		return
	}

	body, err := json.Marshal(webhookPayload{
		Content:  fmt.Sprintf("[%s] %s", event.Kind, event.Message),
		Username: "Melody",
	})
	if err != nil {
		n.logger.Warn("Failed to encode webhook payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Warn("Failed to create webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "pimoDaemon/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("Webhook delivery failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("Webhook rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(event.Kind)))
		return
	}
	n.logger.Debug("Event delivered",
		zap.String("kind", string(event.Kind)))
}
