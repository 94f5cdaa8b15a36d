package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TelegramNotifier posts events to a chat through the Telegram bot API.
type TelegramNotifier struct {
	client *resty.Client
	token  string
	chatID string
}

func NewTelegram(token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		client: resty.New().
			SetBaseURL("https://api.telegram.org").
			SetTimeout(10 * time.Second),
		token:  token,
		chatID: chatID,
	}
}

// SetBaseURL points the notifier at a different API host, used in tests.
func (t *TelegramNotifier) SetBaseURL(baseURL string) *TelegramNotifier {
	t.client.SetBaseURL(baseURL)
	return t
}

func (t *TelegramNotifier) Notify(ctx context.Context, event Event) error {
	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":    t.chatID,
			"text":       event.Message(),
			"parse_mode": "HTML",
		}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/bot%s/sendMessage", t.token))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if resp.IsError() || !result.OK {
		desc := result.Description
		if desc == "" {
			desc = resp.Status()
		}
		return fmt.Errorf("telegram send: %s", desc)
	}
	return nil
}
