package router

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/storage"
)

const (
	DefaultTopK                = 3
	DefaultTranscriptThreshold = 4
)

// Retriever is the knowledge base capability consulted when no keyword
// matcher recognised the question.
type Retriever interface {
	FindRelevant(ctx context.Context, query string, topK int) []models.Document
	GenerateGroundedAnswer(ctx context.Context, query string, lang language.Code, docs []models.Document) (string, bool)
}

type Config struct {
	// Number of documents handed to the answer generator.
	TopK int
	// A fallback turn requests the transcript once the session holds this many messages.
	TranscriptThreshold int
	Now                 func() time.Time
}

// Turn is one inbound utterance.
type Turn struct {
	SessionID string
	Text      string
	UserInfo  *models.UserInfo
}

// Result is what a turn produced. Notifications are requests only; the
// caller decides how and when to deliver them.
type Result struct {
	Language      language.Code
	Topic         string
	Replies       []models.Reply
	Notifications []models.NotificationRequest
}

type Router struct {
	log       storage.ConversationLog
	catalog   *catalog.Catalog
	retriever Retriever
	matchers  []matcher
	topK      int
	threshold int
	now       func() time.Time
	logger    *zap.Logger
}

func New(log storage.ConversationLog, cat *catalog.Catalog, retriever Retriever, cfg Config, logger *zap.Logger) *Router {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.TranscriptThreshold <= 0 {
		cfg.TranscriptThreshold = DefaultTranscriptThreshold
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	r := &Router{
		log:       log,
		catalog:   cat,
		retriever: retriever,
		topK:      cfg.TopK,
		threshold: cfg.TranscriptThreshold,
		now:       cfg.Now,
		logger:    logger,
	}
	r.matchers = r.buildMatchers()
	return r
}

// Matchers returns the matcher names in evaluation order.
func (r *Router) Matchers() []string {
	names := make([]string, len(r.matchers))
	for i, m := range r.matchers {
		names[i] = m.name
	}
	return names
}

// turn is the state shared by the matchers while one utterance is routed.
type turn struct {
	sessionID string
	original  string
	// lower-cased, NFC-normalised utterance
	text          string
	lang          language.Code
	replies       []models.Reply
	notifications []models.NotificationRequest
}

func (t *turn) say(text string) {
	t.replies = append(t.replies, models.Reply{Text: text})
}

func (t *turn) notify(req models.NotificationRequest) {
	t.notifications = append(t.notifications, req)
}

// Route logs the utterance, answers it with the first matcher that accepts
// it and logs every reply. It always produces at least one reply.
func (r *Router) Route(ctx context.Context, in Turn) Result {
	r.log.RecordMessage(ctx, in.SessionID, models.SenderUser, in.Text, in.UserInfo)

	normalized := norm.NFC.String(in.Text)
	t := &turn{
		sessionID: in.SessionID,
		original:  in.Text,
		text:      strings.ToLower(normalized),
		lang:      language.Detect(normalized),
	}

	var matched *matcher
	for i := range r.matchers {
		if r.matchers[i].answer(ctx, t) {
			matched = &r.matchers[i]
			break
		}
	}

	for _, reply := range t.replies {
		r.log.RecordMessage(ctx, in.SessionID, models.SenderBot, reply.Text, in.UserInfo)
	}
	if matched.after != nil {
		matched.after(ctx, t)
	}

	r.logger.Debug("Routed message",
		zap.String("session_id", in.SessionID),
		zap.String("topic", matched.name),
		zap.String("language", string(t.lang)),
		zap.Int("replies", len(t.replies)))

	return Result{
		Language:      t.lang,
		Topic:         matched.name,
		Replies:       t.replies,
		Notifications: t.notifications,
	}
}

// transcript snapshots the logged session, or returns nil when there is
// nothing to send.
func (r *Router) transcript(ctx context.Context, sessionID string) *models.Transcript {
	session, ok := r.log.GetSession(ctx, sessionID)
	if !ok || len(session.Messages) == 0 {
		return nil
	}
	return &models.Transcript{
		SessionID: session.ID,
		UserInfo:  session.UserInfo,
		Messages:  session.Messages,
	}
}
