package chat

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/router"
	"github.com/expobetonrdc/expo-bot/internal/storage"
)

// Commands a client can send instead of an utterance.
const (
	CommandEndConversation = "/end_conversation"
	CommandAskFeedback     = "/ask_feedback"
)

var setRatingCommand = regexp.MustCompile(`^/SetSlots\(feedback_rating=([A-Za-z_]+)\)$`)

// Notifier delivers what the router asked for.
type Notifier interface {
	SendTranscript(ctx context.Context, t models.Transcript) bool
	SendUnansweredNotice(ctx context.Context, question string)
}

type Config struct {
	// Deliver notifications on background goroutines instead of inside the turn.
	Async bool
}

// Event is one inbound message from a channel.
type Event struct {
	SessionID string
	Text      string
	UserInfo  *models.UserInfo
	// End carries the client-side transcript of an end-of-conversation event.
	End *router.EndPayload
}

type Service struct {
	router   *router.Router
	log      storage.ConversationLog
	notifier Notifier
	async    bool
	locks    *sessionLocks
	wg       sync.WaitGroup
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewService(r *router.Router, log storage.ConversationLog, notifier Notifier, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		router:   r,
		log:      log,
		notifier: notifier,
		async:    cfg.Async,
		locks:    newSessionLocks(),
		logger:   logger,
		metrics:  m,
	}
}

// Handle answers one event. Turns of the same session run one at a time.
func (s *Service) Handle(ctx context.Context, ev Event) []models.Reply {
	unlock := s.locks.lock(ev.SessionID)
	defer unlock()

	res := s.dispatch(ctx, ev)
	s.metrics.ObserveTurn(res.Topic, string(res.Language))
	s.deliver(ctx, ev.SessionID, res.Notifications)
	return res.Replies
}

// EndConversation handles an explicit end event, with or without a
// client-side transcript.
func (s *Service) EndConversation(ctx context.Context, sessionID string, payload *router.EndPayload) []models.Reply {
	return s.Handle(ctx, Event{SessionID: sessionID, Text: CommandEndConversation, End: payload})
}

func (s *Service) dispatch(ctx context.Context, ev Event) router.Result {
	text := strings.TrimSpace(ev.Text)
	switch {
	case text == CommandEndConversation:
		return s.router.EndConversation(ctx, ev.SessionID, ev.End)
	case text == CommandAskFeedback:
		return s.router.FeedbackPrompt(ctx, ev.SessionID, "")
	}
	if m := setRatingCommand.FindStringSubmatch(text); m != nil {
		if rating, ok := router.ParseRating(m[1]); ok {
			return s.router.FeedbackThanks(ctx, ev.SessionID, rating, "")
		}
		s.logger.Warn("Unknown feedback rating", zap.String("rating", m[1]))
	}
	return s.router.Route(ctx, router.Turn{SessionID: ev.SessionID, Text: ev.Text, UserInfo: ev.UserInfo})
}

// deliver runs with the session lock held, so the session's last message is
// the one the turn ended on.
func (s *Service) deliver(ctx context.Context, sessionID string, reqs []models.NotificationRequest) {
	if len(reqs) == 0 {
		return
	}
	if s.notifier == nil {
		s.logger.Debug("No notifier configured, dropping notifications", zap.Int("count", len(reqs)))
		return
	}
	if !s.async {
		for _, req := range reqs {
			s.execute(ctx, req, false, "")
		}
		return
	}

	mark := s.lastMessageID(ctx, sessionID)

	// The turn's context ends with the request; delivery must outlive it.
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for _, req := range reqs {
			s.execute(ctx, req, true, mark)
		}
	}()
}

func (s *Service) lastMessageID(ctx context.Context, sessionID string) string {
	session, ok := s.log.GetSession(ctx, sessionID)
	if !ok || len(session.Messages) == 0 {
		return ""
	}
	return session.Messages[len(session.Messages)-1].ID
}

// execute runs one request. In the background the session lock is free, so
// the session is removed only if its last message is still mark.
func (s *Service) execute(ctx context.Context, req models.NotificationRequest, background bool, mark string) {
	switch req.Kind {
	case models.NotifyUnanswered:
		s.notifier.SendUnansweredNotice(ctx, req.Question)
	case models.NotifyTranscript:
		if req.Transcript == nil {
			return
		}
		if !s.notifier.SendTranscript(ctx, *req.Transcript) {
			s.logger.Warn("Transcript not persisted, keeping session", zap.String("session_id", req.SessionID))
			return
		}
		if !req.RemoveSession {
			return
		}
		if background {
			unlock := s.locks.lock(req.SessionID)
			defer unlock()
			if s.lastMessageID(ctx, req.SessionID) != mark {
				s.logger.Info("Conversation continued during delivery, keeping session",
					zap.String("session_id", req.SessionID))
				return
			}
		}
		s.log.RemoveSession(ctx, req.SessionID)
		s.logger.Info("Conversation closed", zap.String("session_id", req.SessionID))
	default:
		s.logger.Warn("Unknown notification kind", zap.String("kind", string(req.Kind)))
	}
}

// Wait blocks until background deliveries have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
