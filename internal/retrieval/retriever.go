package retrieval

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

const (
	DefaultTimeout         = 15 * time.Second
	DefaultMinAnswerLength = 50
)

// Ranker orders the indexed knowledge base by relevance to a query.
type Ranker interface {
	Rank(ctx context.Context, query string, topK int) ([]models.Document, error)
}

// Generator writes an answer constrained to the supplied documents.
type Generator interface {
	Generate(ctx context.Context, query string, lang language.Code, docs []models.Document) (string, error)
}

type Config struct {
	Timeout time.Duration
	// Answers with this many runes or fewer are treated as unhelpful.
	MinAnswerLength int
}

// Retriever never surfaces errors: every failure degrades to an empty result.
type Retriever struct {
	ranker    Ranker
	generator Generator
	timeout   time.Duration
	minLength int
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// New builds a Retriever. ranker and generator may be nil when the
// corresponding capability is not configured.
func New(ranker Ranker, generator Generator, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Retriever {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MinAnswerLength <= 0 {
		cfg.MinAnswerLength = DefaultMinAnswerLength
	}
	return &Retriever{
		ranker:    ranker,
		generator: generator,
		timeout:   cfg.Timeout,
		minLength: cfg.MinAnswerLength,
		logger:    logger,
		metrics:   m,
	}
}

// FindRelevant returns at most topK documents sorted by descending score.
func (r *Retriever) FindRelevant(ctx context.Context, query string, topK int) []models.Document {
	if r == nil || r.ranker == nil || topK <= 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	docs, err := r.ranker.Rank(ctx, query, topK)
	if err != nil {
		r.logger.Warn("Failed to rank documents", zap.Error(err))
		r.metrics.ObserveRetrieval("error")
		return nil
	}
	if len(docs) == 0 {
		r.metrics.ObserveRetrieval("empty")
		return nil
	}

	sortByScore(docs)
	if len(docs) > topK {
		docs = docs[:topK]
	}
	r.metrics.ObserveRetrieval("found")
	return docs
}

// GenerateGroundedAnswer returns ok=false when generation fails or when the
// answer looks like a refusal rather than an answer.
func (r *Retriever) GenerateGroundedAnswer(ctx context.Context, query string, lang language.Code, docs []models.Document) (string, bool) {
	if r == nil || r.generator == nil || len(docs) == 0 {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	answer, err := r.generator.Generate(ctx, query, lang, docs)
	if err != nil {
		r.logger.Warn("Failed to generate grounded answer", zap.Error(err))
		r.metrics.ObserveRetrieval("generation_error")
		return "", false
	}

	answer = strings.TrimSpace(answer)
	if !r.useful(answer, lang) {
		r.logger.Debug("Discarding low quality answer",
			zap.String("answer", answer),
			zap.String("language", string(lang)))
		r.metrics.ObserveRetrieval("rejected")
		return "", false
	}
	r.metrics.ObserveRetrieval("answered")
	return answer, true
}

var unhelpfulAnswers = map[language.Code][]string{
	language.French:  {"je ne sais pas", "je ne peux pas répondre", "non", "je n'ai pas cette information"},
	language.English: {"i don't know", "i do not know", "i cannot answer", "no"},
	language.Spanish: {"no lo sé", "no sé", "no puedo responder", "no"},
	language.Russian: {"я не знаю", "не знаю", "нет"},
	language.Chinese: {"我不知道", "不知道"},
	language.Arabic:  {"لا أعرف", "لا"},
}

func (r *Retriever) useful(answer string, lang language.Code) bool {
	if utf8.RuneCountInString(answer) <= r.minLength {
		return false
	}

	normalized := strings.TrimRight(strings.ToLower(strings.TrimSpace(answer)), ".!。 ")
	phrases := unhelpfulAnswers[lang]
	if lang != language.Default {
		phrases = append(phrases[:len(phrases):len(phrases)], unhelpfulAnswers[language.Default]...)
	}
	for _, phrase := range phrases {
		if normalized == phrase {
			return false
		}
	}
	return true
}

func sortByScore(docs []models.Document) {
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Score > docs[j].Score })
}
