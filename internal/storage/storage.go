package storage

import (
	"context"
	"time"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

// ConversationLog keeps the per-session message history of running conversations.
// Sessions are created lazily by RecordMessage.
type ConversationLog interface {
	RecordMessage(ctx context.Context, sessionID string, sender models.Sender, text string, info *models.UserInfo) models.Message
	RecordMessageAt(ctx context.Context, sessionID string, sender models.Sender, text string, ts time.Time, info *models.UserInfo) models.Message
	GetSession(ctx context.Context, sessionID string) (models.Session, bool)
	RemoveSession(ctx context.Context, sessionID string)
	LastUserMessage(ctx context.Context, sessionID string) (string, bool)
	Close() error
}
