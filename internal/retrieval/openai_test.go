package retrieval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

// fakeOpenAI embeds texts mentioning "avril" along the first axis and
// everything else along the second one.
type fakeOpenAI struct {
	embeddingCalls atomic.Int32
	lastSystem     atomic.Value
	answer         string
	failEmbeddings atomic.Bool
}

func (f *fakeOpenAI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		f.embeddingCalls.Add(1)
		if f.failEmbeddings.Load() {
			http.Error(w, `{"error":{"message":"unavailable","type":"server_error"}}`, http.StatusServiceUnavailable)
			return
		}
		var req struct {
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		data := make([]map[string]any, len(req.Input))
		for i, text := range req.Input {
			vec := []float32{0, 1}
			if strings.Contains(strings.ToLower(text), "avril") {
				vec = []float32{1, 0.1}
			}
			data[i] = map[string]any{"object": "embedding", "embedding": vec, "index": i}
		}
		writeJSON(w, map[string]any{"object": "list", "data": data, "model": "test"})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		f.lastSystem.Store(req.Messages[0].Content)

		writeJSON(w, map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": f.answer},
				"finish_reason": "stop",
			}},
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestEmbeddingRankerRanksAndCaches(t *testing.T) {
	fake := &fakeOpenAI{}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	docs := []models.Document{
		{ID: "theme.txt", Content: "Grand Katanga, carrefour stratégique"},
		{ID: "dates.txt", Content: "Du 30 avril au 1er mai 2026"},
	}
	ranker := NewEmbeddingRanker(NewOpenAIClient("test-key", srv.URL+"/v1"), "", docs, zaptest.NewLogger(t))

	ranked, err := ranker.Rank(context.Background(), "Est-ce en avril ?", 1)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "dates.txt", ranked[0].ID)
	assert.Greater(t, ranked[0].Score, 0.9)
	assert.Equal(t, int32(2), fake.embeddingCalls.Load())

	_, err = ranker.Rank(context.Background(), "thème", 2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), fake.embeddingCalls.Load(), "document embeddings are reused")
}

func TestEmbeddingRankerFailureIsRetried(t *testing.T) {
	fake := &fakeOpenAI{}
	fake.failEmbeddings.Store(true)
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	ranker := NewEmbeddingRanker(NewOpenAIClient("test-key", srv.URL+"/v1"), "", []models.Document{{ID: "a", Content: "avril"}}, zaptest.NewLogger(t))

	_, err := ranker.Rank(context.Background(), "avril", 1)
	require.Error(t, err)

	fake.failEmbeddings.Store(false)
	ranked, err := ranker.Rank(context.Background(), "avril", 1)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestEmbeddingRankerEmptyCorpus(t *testing.T) {
	ranker := NewEmbeddingRanker(NewOpenAIClient("test-key", "http://127.0.0.1:0/v1"), "", nil, zaptest.NewLogger(t))

	ranked, err := ranker.Rank(context.Background(), "avril", 3)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestChatGeneratorThroughRetriever(t *testing.T) {
	fake := &fakeOpenAI{answer: "La 11ème édition aura lieu du 30 avril au 1er mai 2026 à Lubumbashi, au Haut-Katanga."}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	gen := NewChatGenerator(NewOpenAIClient("test-key", srv.URL+"/v1"), "gpt-4o-mini", 300, 0.3, zaptest.NewLogger(t))
	r := New(nil, gen, Config{}, zaptest.NewLogger(t), nil)

	answer, ok := r.GenerateGroundedAnswer(context.Background(), "When is it?", language.English,
		[]models.Document{{ID: "dates.txt", Title: "dates", Content: "30 avril"}})

	require.True(t, ok)
	assert.Equal(t, fake.answer, answer)
	assert.Contains(t, fake.lastSystem.Load().(string), "anglais")
}

func TestPrompts(t *testing.T) {
	assert.Contains(t, systemPrompt("xx"), "français")

	prompt := userPrompt("Quand ?", []models.Document{
		{Title: "dates", Content: strings.Repeat("a", maxContextRunes+10)},
		{Title: "lieu", Content: "Lubumbashi"},
	})
	assert.Contains(t, prompt, "[1] dates")
	assert.Contains(t, prompt, "[2] lieu\nLubumbashi")
	assert.True(t, strings.HasSuffix(prompt, "Question: Quand ?"))
	assert.NotContains(t, prompt, strings.Repeat("a", maxContextRunes+1))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 1}))
}
