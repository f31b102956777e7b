// File: services/telegram/client.go
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roombot/utils"

	"go.uber.org/zap"
)

// Client sends messages back to the chat. Replies that carry the room
// selection table use HTML parse mode so the fixed-width block renders.
type Client interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendHTMLMessage(ctx context.Context, chatID int64, text string) error
}

// DefaultTelegramClient implements Client against the Telegram Bot API.
type DefaultTelegramClient struct {
	APIURL     string
	Token      string
	HTTPClient *http.Client
}

func NewDefaultTelegramClient(apiURL, token string) *DefaultTelegramClient {
	return &DefaultTelegramClient{
		APIURL:     apiURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

func (c *DefaultTelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.send(ctx, sendMessageRequest{ChatID: chatID, Text: text})
}

func (c *DefaultTelegramClient) SendHTMLMessage(ctx context.Context, chatID int64, text string) error {
	return c.send(ctx, sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML"})
}

func (c *DefaultTelegramClient) send(ctx context.Context, msg sendMessageRequest) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/bot%s/sendMessage", c.APIURL, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sendMessage: %w", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse sendMessage response: %w", err)
	}
	if !result.OK {
		utils.GetLogger().Warn("Telegram rejected sendMessage",
			zap.Int64("chatId", msg.ChatID),
			zap.String("description", result.Description))
		return fmt.Errorf("telegram sendMessage failed: %s", result.Description)
	}
	return nil
}
