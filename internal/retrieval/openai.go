package retrieval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

const (
	maxEmbeddedRunes = 8000
	maxContextRunes  = 2000
)

var languageNames = map[language.Code]string{
	language.French:  "français",
	language.English: "anglais",
	language.Chinese: "chinois",
	language.Russian: "russe",
	language.Spanish: "espagnol",
	language.Arabic:  "arabe",
}

// NewOpenAIClient builds a client against the OpenAI API or any compatible endpoint.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// EmbeddingRanker ranks documents by cosine similarity of their embeddings to
// the query embedding. Document embeddings are computed once and kept.
type EmbeddingRanker struct {
	client *openai.Client
	model  openai.EmbeddingModel
	docs   []models.Document
	logger *zap.Logger

	mu         sync.Mutex
	embeddings [][]float32
}

func NewEmbeddingRanker(client *openai.Client, model string, docs []models.Document, logger *zap.Logger) *EmbeddingRanker {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &EmbeddingRanker{
		client: client,
		model:  openai.EmbeddingModel(model),
		docs:   docs,
		logger: logger,
	}
}

func (r *EmbeddingRanker) Rank(ctx context.Context, query string, topK int) ([]models.Document, error) {
	if len(r.docs) == 0 {
		return nil, nil
	}

	docEmbeddings, err := r.documentEmbeddings(ctx)
	if err != nil {
		return nil, err
	}

	queryEmbeddings, err := r.embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("error embedding query: %w", err)
	}

	ranked := make([]models.Document, len(r.docs))
	for i, doc := range r.docs {
		doc.Score = cosineSimilarity(docEmbeddings[i], queryEmbeddings[0])
		ranked[i] = doc
	}
	sortByScore(ranked)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// documentEmbeddings embeds the corpus on first use. Failures are not cached
// so the next query retries.
func (r *EmbeddingRanker) documentEmbeddings(ctx context.Context) ([][]float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.embeddings != nil {
		return r.embeddings, nil
	}

	texts := make([]string, len(r.docs))
	for i, doc := range r.docs {
		texts[i] = truncateRunes(doc.Content, maxEmbeddedRunes)
	}
	embeddings, err := r.embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("error embedding documents: %w", err)
	}

	r.logger.Info("Embedded knowledge base",
		zap.Int("documents", len(embeddings)),
		zap.String("model", string(r.model)))
	r.embeddings = embeddings
	return embeddings, nil
}

func (r *EmbeddingRanker) embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := r.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: r.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	out := make([][]float32, len(texts))
	for _, e := range resp.Data {
		if e.Index < 0 || e.Index >= len(out) {
			return nil, fmt.Errorf("embedding index %d out of range", e.Index)
		}
		out[e.Index] = e.Embedding
	}
	return out, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// ChatGenerator answers from the supplied documents with a chat completion.
type ChatGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewChatGenerator(client *openai.Client, model string, maxTokens int, temperature float64, logger *zap.Logger) *ChatGenerator {
	return &ChatGenerator{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (g *ChatGenerator) Generate(ctx context.Context, query string, lang language.Code, docs []models.Document) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt(lang),
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt(query, docs),
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.logger.Debug("Generated grounded answer",
		zap.Int("documents", len(docs)),
		zap.Int("length", len(answer)))
	return answer, nil
}

func systemPrompt(lang language.Code) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[language.Default]
	}
	return fmt.Sprintf("Tu es un assistant intelligent pour ExpoBeton RDC. Réponds de manière précise et concise en %s, "+
		"en te basant UNIQUEMENT sur les documents fournis. Si l'information n'est pas dans les documents, dis-le clairement.", name)
}

func userPrompt(query string, docs []models.Document) string {
	var b strings.Builder
	b.WriteString("Documents:\n")
	for i, doc := range docs {
		fmt.Fprintf(&b, "\n[%d] %s\n%s\n", i+1, doc.Title, truncateRunes(doc.Content, maxContextRunes))
	}
	fmt.Fprintf(&b, "\nQuestion: %s", query)
	return b.String()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
