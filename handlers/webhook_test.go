package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"roombot/middleware"
	"roombot/services/dialog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogService struct {
	startCalls  int
	cancelCalls int
	handleCalls int

	startReplies  []dialog.Reply
	cancelReplies []dialog.Reply
	handleReplies []dialog.Reply
	inDialog      bool
}

func (f *fakeDialogService) Start(ctx context.Context, chatID int64) ([]dialog.Reply, error) {
	f.startCalls++
	return f.startReplies, nil
}

func (f *fakeDialogService) Cancel(ctx context.Context, chatID int64) ([]dialog.Reply, error) {
	f.cancelCalls++
	return f.cancelReplies, nil
}

func (f *fakeDialogService) HandleReply(ctx context.Context, chatID int64, sender, text string) ([]dialog.Reply, bool, error) {
	f.handleCalls++
	return f.handleReplies, f.inDialog, nil
}

type sentMessage struct {
	ChatID int64
	Text   string
	HTML   bool
}

type recordingTelegramClient struct {
	sent []sentMessage
}

func (r *recordingTelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	r.sent = append(r.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func (r *recordingTelegramClient) SendHTMLMessage(ctx context.Context, chatID int64, text string) error {
	r.sent = append(r.sent, sentMessage{ChatID: chatID, Text: text, HTML: true})
	return nil
}

func newTestRouter(svc *fakeDialogService, tg *recordingTelegramClient, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhook",
		middleware.WebhookAuthMiddleware(secret),
		NewWebhookHandler(svc, tg).HandleUpdate,
	)
	return router
}

func postUpdate(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func updateJSON(text string) string {
	return `{"update_id":1,"message":{"message_id":10,"from":{"id":5,"username":"alice"},"chat":{"id":42,"type":"private"},"text":"` + text + `"}}`
}

func TestHandleUpdateCommands(t *testing.T) {
	t.Run("/create starts a dialog", func(t *testing.T) {
		svc := &fakeDialogService{startReplies: []dialog.Reply{{Text: "Enter the Title for the Meeting [Meeting Title] ?"}}}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "")

		w := postUpdate(router, updateJSON("/create"), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.startCalls)
		require.Len(t, tg.sent, 1)
		assert.Equal(t, sentMessage{ChatID: 42, Text: "Enter the Title for the Meeting [Meeting Title] ?"}, tg.sent[0])
	})

	t.Run("/cancel tears down the dialog", func(t *testing.T) {
		svc := &fakeDialogService{cancelReplies: []dialog.Reply{{Text: "Leaving."}}}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "")

		w := postUpdate(router, updateJSON("/cancel"), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.cancelCalls)
		assert.Equal(t, 0, svc.handleCalls)
		require.Len(t, tg.sent, 1)
		assert.Equal(t, "Leaving.", tg.sent[0].Text)
	})

	t.Run("text outside a dialog gets the help reply", func(t *testing.T) {
		svc := &fakeDialogService{inDialog: false}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "")

		w := postUpdate(router, updateJSON("hello there"), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.handleCalls)
		require.Len(t, tg.sent, 1)
		assert.Equal(t, "do /create to create a new meeting", tg.sent[0].Text)
	})

	t.Run("text inside a dialog forwards the dialog replies", func(t *testing.T) {
		svc := &fakeDialogService{
			inDialog:      true,
			handleReplies: []dialog.Reply{{Text: "<b>Room Selection</b>", HTML: true}},
		}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "")

		w := postUpdate(router, updateJSON("alice"), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, tg.sent, 1)
		assert.True(t, tg.sent[0].HTML)
	})
}

func TestHandleUpdateEdgeCases(t *testing.T) {
	t.Run("update without a message is acknowledged and dropped", func(t *testing.T) {
		svc := &fakeDialogService{}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "")

		w := postUpdate(router, `{"update_id":2}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, svc.startCalls+svc.cancelCalls+svc.handleCalls)
		assert.Empty(t, tg.sent)
	})

	t.Run("malformed payload is a bad request", func(t *testing.T) {
		router := newTestRouter(&fakeDialogService{}, &recordingTelegramClient{}, "")

		w := postUpdate(router, `{not json`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWebhookSecretToken(t *testing.T) {
	t.Run("mismatched secret is rejected before processing", func(t *testing.T) {
		svc := &fakeDialogService{}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "s3cret")

		w := postUpdate(router, updateJSON("/create"), map[string]string{
			"X-Telegram-Bot-Api-Secret-Token": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, svc.startCalls)
		assert.Empty(t, tg.sent)
	})

	t.Run("matching secret passes through", func(t *testing.T) {
		svc := &fakeDialogService{startReplies: []dialog.Reply{{Text: "ok"}}}
		tg := &recordingTelegramClient{}
		router := newTestRouter(svc, tg, "s3cret")

		w := postUpdate(router, updateJSON("/create"), map[string]string{
			"X-Telegram-Bot-Api-Secret-Token": "s3cret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.startCalls)
	})
}
