package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultURL     = "https://api.telegram.org"
	defaultTimeout = 15 * time.Second
)

var errEmptyToken = fmt.Errorf("empty messenger bot token")

// Messenger - bot api client used by the notification delivery worker
type Messenger interface {
	SendMessage(ctx context.Context, chatID, title, body string) error
}

type botClient struct {
	token  string
	url    string
	client *http.Client
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (b *botClient) SendMessage(ctx context.Context, chatID, title, body string) error {
	if b.token == "" {
		return errEmptyToken
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID: chatID,
		Text:   fmt.Sprintf("%s\n%s", title, body),
	})
	if err != nil {
		return err
	}

	query := fmt.Sprintf("%s/bot%s/sendMessage", b.url, b.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, query, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var r sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return err
	}
	if !r.OK {
		return fmt.Errorf("messenger send failed: %s", r.Description)
	}

	return nil
}

// New - new messenger client. An empty url falls back to the telegram
// bot api.
func New(token, url string) Messenger {
	if url == "" {
		url = defaultURL
	}
	return &botClient{
		token: token,
		url:   url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
