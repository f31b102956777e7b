// File: handlers/webhook.go
package handlers

import (
	"net/http"

	"roombot/models"
	"roombot/services/dialog"
	"roombot/services/telegram"
	"roombot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const helpMessage = "do /create to create a new meeting"

// WebhookHandler receives Telegram updates and routes them into the
// booking dialog.
type WebhookHandler struct {
	DialogSvc   dialog.Service
	TelegramSvc telegram.Client
}

func NewWebhookHandler(dialogSvc dialog.Service, telegramSvc telegram.Client) *WebhookHandler {
	return &WebhookHandler{DialogSvc: dialogSvc, TelegramSvc: telegramSvc}
}

// HandleUpdate processes one webhook delivery. It always answers 200 so
// Telegram does not redeliver the update; failures are logged and, where
// possible, surfaced to the user via chat replies instead.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	logger := utils.GetLogger()

	var update models.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid update payload", err.Error())
		return
	}

	// Edited messages, channel posts etc. carry no message; ack and drop.
	if update.Message == nil || update.Message.Text == "" {
		c.Status(http.StatusOK)
		return
	}

	ctx := c.Request.Context()
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	var (
		replies []dialog.Reply
		err     error
	)
	switch text {
	case "/cancel":
		replies, err = h.DialogSvc.Cancel(ctx, chatID)
	case "/create":
		replies, err = h.DialogSvc.Start(ctx, chatID)
	default:
		var inDialog bool
		replies, inDialog, err = h.DialogSvc.HandleReply(ctx, chatID, senderName(update.Message), text)
		if err == nil && !inDialog {
			replies = []dialog.Reply{{Text: helpMessage}}
		}
	}
	if err != nil {
		logger.Error("Failed to process update",
			zap.Int64("chatId", chatID),
			zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	for _, reply := range replies {
		if reply.HTML {
			err = h.TelegramSvc.SendHTMLMessage(ctx, chatID, reply.Text)
		} else {
			err = h.TelegramSvc.SendMessage(ctx, chatID, reply.Text)
		}
		if err != nil {
			logger.Error("Failed to send reply",
				zap.Int64("chatId", chatID),
				zap.Error(err))
			break
		}
	}

	c.Status(http.StatusOK)
}

// senderName is the identifier used when the participant list falls back
// to the requester.
func senderName(msg *models.Message) string {
	if msg.From == nil {
		return ""
	}
	if msg.From.Username != "" {
		return msg.From.Username
	}
	return msg.From.FirstName
}
