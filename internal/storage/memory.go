package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

// EvictCallback is called with a snapshot of a session dropped by the
// eviction policy. It runs on its own goroutine.
type EvictCallback func(session models.Session)

// MemoryConfig bounds the number of live sessions. Zero values disable the
// corresponding limit.
type MemoryConfig struct {
	MaxSessions int
	TTL         time.Duration
	OnEvict     EvictCallback
	// Now is overridable for tests.
	Now func() time.Time
}

type MemoryStorage struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *models.Session]
	now      func() time.Time
	onEvict  EvictCallback

	// sessions removed on purpose are not reported as evictions
	removedMu sync.Mutex
	removed   map[*models.Session]struct{}
}

func NewMemoryStorage(cfg MemoryConfig) *MemoryStorage {
	s := &MemoryStorage{
		now:     cfg.Now,
		onEvict: cfg.OnEvict,
		removed: make(map[*models.Session]struct{}),
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.sessions = expirable.NewLRU[string, *models.Session](cfg.MaxSessions, s.handleEviction, cfg.TTL)
	return s
}

func (s *MemoryStorage) RecordMessage(ctx context.Context, sessionID string, sender models.Sender, text string, info *models.UserInfo) models.Message {
	return s.RecordMessageAt(ctx, sessionID, sender, text, time.Time{}, info)
}

// RecordMessageAt appends a message to the session, creating it when needed.
// A zero timestamp is replaced with the current time. A non-empty info
// replaces the stored user info as a whole.
func (s *MemoryStorage) RecordMessageAt(ctx context.Context, sessionID string, sender models.Sender, text string, ts time.Time, info *models.UserInfo) models.Message {
	now := s.now()
	if ts.IsZero() {
		ts = now
	}
	msg := models.Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		Timestamp: ts,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionID)
	if !ok && s.sessions.Contains(sessionID) {
		// Expired but not purged yet. Add would overwrite it silently, so
		// drop it first to report the eviction.
		s.sessions.Remove(sessionID)
	}
	if !ok {
		session = &models.Session{
			ID:        sessionID,
			CreatedAt: now,
		}
	}
	session.Messages = append(session.Messages, msg)
	session.LastActivity = now
	if info != nil && !info.IsEmpty() {
		session.UserInfo = *info
	}
	// Re-adding refreshes both recency and expiry.
	s.sessions.Add(sessionID, session)
	return msg
}

func (s *MemoryStorage) GetSession(ctx context.Context, sessionID string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Peek(sessionID)
	if !ok {
		return models.Session{}, false
	}
	return cloneSession(session), true
}

func (s *MemoryStorage) RemoveSession(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Peek(sessionID)
	if !ok {
		return
	}

	s.removedMu.Lock()
	s.removed[session] = struct{}{}
	s.removedMu.Unlock()

	s.sessions.Remove(sessionID)

	s.removedMu.Lock()
	delete(s.removed, session)
	s.removedMu.Unlock()
}

func (s *MemoryStorage) LastUserMessage(ctx context.Context, sessionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Peek(sessionID)
	if !ok {
		return "", false
	}
	for i := len(session.Messages) - 1; i >= 0; i-- {
		if session.Messages[i].Sender == models.SenderUser {
			return session.Messages[i].Text, true
		}
	}
	return "", false
}

func (s *MemoryStorage) Len() int {
	return s.sessions.Len()
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}

// handleEviction may be invoked while mu is held (capacity eviction inside Add)
// or from the expiry goroutine, so the snapshot is taken asynchronously.
func (s *MemoryStorage) handleEviction(_ string, session *models.Session) {
	s.removedMu.Lock()
	_, explicit := s.removed[session]
	s.removedMu.Unlock()
	if explicit || s.onEvict == nil {
		return
	}

	go func() {
		s.mu.Lock()
		snapshot := cloneSession(session)
		s.mu.Unlock()
		s.onEvict(snapshot)
	}()
}

func cloneSession(session *models.Session) models.Session {
	out := *session
	out.Messages = make([]models.Message, len(session.Messages))
	copy(out.Messages, session.Messages)
	return out
}
