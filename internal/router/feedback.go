package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

const (
	TopicFeedbackPrompt  = "feedback_prompt"
	TopicFeedbackThanks  = "feedback_thanks"
	TopicEndConversation = "end_conversation"
)

type Rating string

const (
	RatingPositive Rating = "thumbs_up"
	RatingNegative Rating = "thumbs_down"
)

// FeedbackPayload is the command a rating button sends back.
func FeedbackPayload(rating Rating) string {
	return fmt.Sprintf("/SetSlots(feedback_rating=%s)", rating)
}

func ParseRating(s string) (Rating, bool) {
	switch Rating(strings.TrimSpace(strings.ToLower(s))) {
	case RatingPositive:
		return RatingPositive, true
	case RatingNegative:
		return RatingNegative, true
	}
	return "", false
}

// auxLanguage picks the reply language for handlers that run outside a
// normal turn: the given text when there is one, else the last thing the
// visitor wrote, else French.
func (r *Router) auxLanguage(ctx context.Context, sessionID, text string) language.Code {
	if strings.TrimSpace(text) != "" {
		return language.Detect(text)
	}
	if last, ok := r.log.LastUserMessage(ctx, sessionID); ok {
		return language.Detect(last)
	}
	return language.Default
}

// FeedbackPrompt asks the visitor to rate the service with two buttons.
func (r *Router) FeedbackPrompt(ctx context.Context, sessionID, text string) Result {
	lang := r.auxLanguage(ctx, sessionID, text)
	return Result{
		Language: lang,
		Topic:    TopicFeedbackPrompt,
		Replies: []models.Reply{{
			Text: r.catalog.Lookup(catalog.KeyFeedbackPrompt, lang),
			Buttons: []models.Button{
				{Title: r.catalog.Lookup(catalog.KeyFeedbackThumbsUp, lang), Payload: FeedbackPayload(RatingPositive)},
				{Title: r.catalog.Lookup(catalog.KeyFeedbackThumbsDown, lang), Payload: FeedbackPayload(RatingNegative)},
			},
		}},
	}
}

// FeedbackThanks acknowledges a rating.
func (r *Router) FeedbackThanks(ctx context.Context, sessionID string, rating Rating, text string) Result {
	lang := r.auxLanguage(ctx, sessionID, text)
	key := catalog.KeyFeedbackPositive
	if rating == RatingNegative {
		key = catalog.KeyFeedbackNegative
	}
	return Result{
		Language: lang,
		Topic:    TopicFeedbackThanks,
		Replies:  []models.Reply{{Text: r.catalog.Lookup(key, lang)}},
	}
}

// EndPayload is the transcript a client may send when the visitor closes the chat.
type EndPayload struct {
	UserInfo models.UserInfo
	Messages []PayloadMessage
}

type PayloadMessage struct {
	Sender    string
	Text      string
	Timestamp string
}

// EndConversation requests delivery of the final transcript, taken from the
// payload when the client sent one and from the conversation log otherwise.
// The acknowledgement is always returned.
func (r *Router) EndConversation(ctx context.Context, sessionID string, payload *EndPayload) Result {
	lang := r.auxLanguage(ctx, sessionID, "")
	res := Result{
		Language: lang,
		Topic:    TopicEndConversation,
		Replies:  []models.Reply{{Text: r.catalog.Lookup(catalog.KeyConversationEnded, lang)}},
	}

	var transcript *models.Transcript
	if payload != nil && len(payload.Messages) > 0 {
		transcript = r.payloadTranscript(sessionID, payload)
	} else {
		transcript = r.transcript(ctx, sessionID)
	}
	if transcript == nil {
		r.logger.Warn("No conversation to deliver", zap.String("session_id", sessionID))
		return res
	}

	res.Notifications = []models.NotificationRequest{{
		Kind:          models.NotifyTranscript,
		SessionID:     sessionID,
		Transcript:    transcript,
		RemoveSession: true,
	}}
	return res
}

func (r *Router) payloadTranscript(sessionID string, payload *EndPayload) *models.Transcript {
	now := r.now()
	messages := make([]models.Message, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		sender := models.SenderBot
		if strings.EqualFold(m.Sender, string(models.SenderUser)) {
			sender = models.SenderUser
		}
		ts, ok := ParseTimestamp(m.Timestamp)
		if !ok {
			if m.Timestamp != "" {
				r.logger.Warn("Invalid message timestamp, using current time",
					zap.String("session_id", sessionID),
					zap.String("timestamp", m.Timestamp))
			}
			ts = now
		}
		messages = append(messages, models.Message{Sender: sender, Text: m.Text, Timestamp: ts})
	}
	return &models.Transcript{SessionID: sessionID, UserInfo: payload.UserInfo, Messages: messages}
}

var localTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp accepts RFC 3339 timestamps (as produced by JavaScript's
// toISOString) and zone-less ISO 8601 ones, read as local time.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, true
	}
	for _, layout := range localTimestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
