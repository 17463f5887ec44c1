package retrieval

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

// FallbackRanker asks the secondary ranker only when the primary fails, so
// the generator keeps receiving documents during an embedding outage.
type FallbackRanker struct {
	primary   Ranker
	secondary Ranker
	logger    *zap.Logger
}

func NewFallbackRanker(primary, secondary Ranker, logger *zap.Logger) *FallbackRanker {
	return &FallbackRanker{primary: primary, secondary: secondary, logger: logger}
}

func (r *FallbackRanker) Rank(ctx context.Context, query string, topK int) ([]models.Document, error) {
	docs, err := r.primary.Rank(ctx, query, topK)
	if err == nil {
		return docs, nil
	}
	r.logger.Warn("Primary ranker failed, using fallback index", zap.Error(err))

	fallback, ferr := r.secondary.Rank(ctx, query, topK)
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return fallback, nil
}
