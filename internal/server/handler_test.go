package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/chat"
	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/router"
	"github.com/expobetonrdc/expo-bot/internal/storage"
)

type captureNotifier struct {
	mu          sync.Mutex
	transcripts []models.Transcript
}

func (n *captureNotifier) SendTranscript(ctx context.Context, t models.Transcript) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.transcripts = append(n.transcripts, t)
	return true
}

func (n *captureNotifier) SendUnansweredNotice(ctx context.Context, question string) {}

type testEnv struct {
	echo     *echo.Echo
	handler  *Handler
	log      *storage.MemoryStorage
	notifier *captureNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	logger := zaptest.NewLogger(t)
	log := storage.NewMemoryStorage(storage.MemoryConfig{})
	m := metrics.New("expobot")
	notifier := &captureNotifier{}
	r := router.New(log, catalog.Default(), nil, router.Config{}, logger)
	h := NewHandler(chat.NewService(r, log, notifier, chat.Config{}, logger, m), m, logger)
	return &testEnv{echo: New(h, logger), handler: h, log: log, notifier: notifier}
}

func (env *testEnv) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeResponses(t *testing.T, rec *httptest.ResponseRecorder) []WebhookResponse {
	var out []WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWebhook(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/rest/webhook",
		strings.NewReader(`{"sender":"web-1","message":"Bonjour","metadata":{"user_info":{"name":"Amani","email":"amani@example.com"}}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	require.NoError(t, env.handler.Webhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeResponses(t, rec)
	require.Len(t, out, 2)
	assert.Equal(t, "web-1", out[0].RecipientID)
	assert.Equal(t, catalog.Default().Lookup(catalog.KeyGreeting, language.French), out[0].Text)

	session, ok := env.log.GetSession(context.Background(), "web-1")
	require.True(t, ok)
	assert.Equal(t, "Amani", session.UserInfo.Name)
}

func TestWebhookValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/webhooks/rest/webhook", `{"message":"Bonjour"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.post(t, "/webhooks/rest/webhook", `{"sender":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookFeedbackButtons(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/webhooks/rest/webhook", `{"sender":"web-1","message":"/ask_feedback"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeResponses(t, rec)
	require.Len(t, out, 1)
	require.Len(t, out[0].Buttons, 2)
	assert.Equal(t, "/SetSlots(feedback_rating=thumbs_up)", out[0].Buttons[0].Payload)
}

func TestWebhookEndConversationWithTranscript(t *testing.T) {
	env := newTestEnv(t)
	body := `{
		"sender": "web-1",
		"message": "/end_conversation",
		"metadata": {
			"user_info": {"name": "Amani"},
			"messages": [
				{"sender": "user", "text": "Bonjour", "timestamp": "2026-04-30T10:00:00.000Z"},
				{"sender": "bot", "text": "Bonjour!", "timestamp": 1714471200}
			]
		}
	}`

	rec := env.post(t, "/webhooks/rest/webhook", body)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeResponses(t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, catalog.Default().Lookup(catalog.KeyConversationEnded, language.French), out[0].Text)
	require.Len(t, env.notifier.transcripts, 1)
	transcript := env.notifier.transcripts[0]
	assert.Equal(t, "Amani", transcript.UserInfo.Name)
	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, 10, transcript.Messages[0].Timestamp.UTC().Hour())
	assert.False(t, transcript.Messages[1].Timestamp.IsZero())
}

func TestEndEndpointUsesConversationLog(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/webhooks/rest/webhook", `{"sender":"web-2","message":"Quelles sont les dates ?"}`)

	rec := env.post(t, "/webhooks/rest/end", `{"sender":"web-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, env.notifier.transcripts, 1)
	assert.Len(t, env.notifier.transcripts[0].Messages, 2)
	_, ok := env.log.GetSession(context.Background(), "web-2")
	assert.False(t, ok)
}

func TestHealthAndStatus(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/health", "/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "expo-bot", status["service"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/webhooks/rest/webhook", `{"sender":"web-1","message":"xyzzy plugh"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `expobot_turns_total{language="fr",topic="fallback"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/webhooks/rest/webhook", nil)
	req.Header.Set(echo.HeaderOrigin, "https://expobetonrdc.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
