// Package server exposes the bot over a REST webhook compatible with the
// chat widget.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/chat"
	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/router"
)

const serviceName = "expo-bot"

// Handler handles HTTP requests.
type Handler struct {
	chat    *chat.Service
	metrics *metrics.Metrics
	logger  *zap.Logger
	started time.Time
}

func NewHandler(service *chat.Service, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		chat:    service,
		metrics: m,
		logger:  logger,
		started: time.Now(),
	}
}

// New builds the echo server with the bot routes and middleware.
func New(h *Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("Request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("Request", fields...)
			return nil
		},
	}))

	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/rest/webhook", h.Webhook)
	e.POST("/webhooks/rest/end", h.EndConversation)

	e.GET("/", h.Status)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
}

type userInfoPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type messagePayload struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	// Widgets send ISO strings; anything else is replaced by the server time.
	Timestamp any `json:"timestamp"`
}

type metadataPayload struct {
	UserInfo *userInfoPayload `json:"user_info"`
	Messages []messagePayload `json:"messages"`
}

// WebhookRequest is the body posted by the chat widget.
type WebhookRequest struct {
	Sender   string          `json:"sender"`
	Message  string          `json:"message"`
	Metadata metadataPayload `json:"metadata"`
}

type buttonResponse struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// WebhookResponse is one bot message addressed to the sender.
type WebhookResponse struct {
	RecipientID string           `json:"recipient_id"`
	Text        string           `json:"text"`
	Buttons     []buttonResponse `json:"buttons,omitempty"`
}

// Webhook answers one widget message.
func (h *Handler) Webhook(c echo.Context) error {
	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Sender) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sender is required"})
	}

	ctx := c.Request().Context()
	var replies []models.Reply
	if strings.TrimSpace(req.Message) == chat.CommandEndConversation {
		replies = h.chat.EndConversation(ctx, req.Sender, req.Metadata.endPayload())
	} else {
		replies = h.chat.Handle(ctx, chat.Event{
			SessionID: req.Sender,
			Text:      req.Message,
			UserInfo:  req.Metadata.userInfo(),
		})
	}
	return c.JSON(http.StatusOK, toResponses(req.Sender, replies))
}

// EndConversation closes a conversation, using the transcript in the
// metadata when the widget sends one.
func (h *Handler) EndConversation(c echo.Context) error {
	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Sender) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sender is required"})
	}

	replies := h.chat.EndConversation(c.Request().Context(), req.Sender, req.Metadata.endPayload())
	return c.JSON(http.StatusOK, toResponses(req.Sender, replies))
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Status describes the running service.
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": serviceName,
		"status":  "running",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"webhook": "/webhooks/rest/webhook",
	})
}

func (m metadataPayload) userInfo() *models.UserInfo {
	if m.UserInfo == nil {
		return nil
	}
	return &models.UserInfo{
		Name:  strings.TrimSpace(m.UserInfo.Name),
		Phone: strings.TrimSpace(m.UserInfo.Phone),
		Email: strings.TrimSpace(m.UserInfo.Email),
	}
}

func (m metadataPayload) endPayload() *router.EndPayload {
	if len(m.Messages) == 0 {
		return nil
	}
	payload := &router.EndPayload{Messages: make([]router.PayloadMessage, 0, len(m.Messages))}
	if info := m.userInfo(); info != nil {
		payload.UserInfo = *info
	}
	for _, msg := range m.Messages {
		ts, _ := msg.Timestamp.(string)
		payload.Messages = append(payload.Messages, router.PayloadMessage{
			Sender:    msg.Sender,
			Text:      msg.Text,
			Timestamp: ts,
		})
	}
	return payload
}

func toResponses(recipient string, replies []models.Reply) []WebhookResponse {
	out := make([]WebhookResponse, 0, len(replies))
	for _, r := range replies {
		resp := WebhookResponse{RecipientID: recipient, Text: r.Text}
		for _, b := range r.Buttons {
			resp.Buttons = append(resp.Buttons, buttonResponse{Title: b.Title, Payload: b.Payload})
		}
		out = append(out, resp)
	}
	return out
}
