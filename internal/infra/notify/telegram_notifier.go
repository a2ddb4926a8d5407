// Package notify delivers out-of-band messages to users.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gaspass/config"
	"gaspass/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultAPIBaseURL = "https://api.telegram.org"

// telegramNotifier implements ResetNotifier by calling the Telegram Bot API's
// sendMessage method. The recipient ID is the user's Telegram chat ID.
type telegramNotifier struct {
	botToken   string
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// NewTelegramNotifier creates a Telegram-backed reset notifier.
func NewTelegramNotifier(cfg *config.Config, logger *slog.Logger) (service.ResetNotifier, error) {
	if cfg.Telegram == nil || cfg.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token must be provided")
	}

	apiBaseURL := cfg.Telegram.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return &telegramNotifier{
		botToken:   cfg.Telegram.BotToken,
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// SendResetLink delivers the reset link to the given chat.
func (n *telegramNotifier) SendResetLink(ctx context.Context, recipientID, link string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: recipientID,
		Text:   "Password reset requested. Open this link within one hour:\n" + link,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The bot token is part of the URL path; it is never logged.
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBaseURL, n.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		n.logger.Error("Telegram sendMessage failed",
			slog.Int("status", resp.StatusCode),
			slog.String("response", string(payload)))

		return errors.Errorf("telegram returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Info("Reset link delivered", slog.String("chat_id", recipientID))

	return nil
}
