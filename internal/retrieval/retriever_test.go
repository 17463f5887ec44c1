package retrieval

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

type fakeRanker struct {
	docs []models.Document
	err  error
	wait bool
}

func (f *fakeRanker) Rank(ctx context.Context, query string, topK int) ([]models.Document, error) {
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.docs, f.err
}

type fakeGenerator struct {
	answer string
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, query string, lang language.Code, docs []models.Document) (string, error) {
	f.calls++
	return f.answer, f.err
}

func TestFindRelevantSortsAndBounds(t *testing.T) {
	ranker := &fakeRanker{docs: []models.Document{
		{ID: "a", Score: 0.1},
		{ID: "b", Score: 0.9},
		{ID: "c", Score: 0.5},
		{ID: "d", Score: 0.7},
	}}
	r := New(ranker, nil, Config{}, zaptest.NewLogger(t), nil)

	docs := r.FindRelevant(context.Background(), "dates", 3)

	require.Len(t, docs, 3)
	assert.Equal(t, []string{"b", "d", "c"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})
}

func TestFindRelevantDegradesToEmpty(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	assert.Empty(t, New(nil, nil, Config{}, logger, nil).FindRelevant(ctx, "q", 3), "no ranker configured")
	assert.Empty(t, New(&fakeRanker{}, nil, Config{}, logger, nil).FindRelevant(ctx, "q", 3), "empty corpus")
	assert.Empty(t, New(&fakeRanker{err: errors.New("boom")}, nil, Config{}, logger, nil).FindRelevant(ctx, "q", 3))
	assert.Empty(t, New(&fakeRanker{docs: []models.Document{{ID: "a"}}}, nil, Config{}, logger, nil).FindRelevant(ctx, "  ", 3))

	var nilRetriever *Retriever
	assert.Empty(t, nilRetriever.FindRelevant(ctx, "q", 3))
}

func TestFindRelevantAppliesTimeout(t *testing.T) {
	r := New(&fakeRanker{wait: true}, nil, Config{Timeout: 20 * time.Millisecond}, zaptest.NewLogger(t), nil)

	start := time.Now()
	docs := r.FindRelevant(context.Background(), "q", 3)

	assert.Empty(t, docs)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGenerateGroundedAnswer(t *testing.T) {
	docs := []models.Document{{ID: "a", Content: "ExpoBeton"}}
	long := strings.Repeat("x", 51)

	tests := []struct {
		name   string
		gen    *fakeGenerator
		want   string
		wantOK bool
	}{
		{"long answer accepted", &fakeGenerator{answer: "  " + long + "  "}, long, true},
		{"exactly fifty runes rejected", &fakeGenerator{answer: strings.Repeat("é", 50)}, "", false},
		{"short answer rejected", &fakeGenerator{answer: "Oui."}, "", false},
		{"empty answer rejected", &fakeGenerator{answer: ""}, "", false},
		{"generator error", &fakeGenerator{err: errors.New("rate limited")}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(nil, tt.gen, Config{}, zaptest.NewLogger(t), nil)
			got, ok := r.GenerateGroundedAnswer(context.Background(), "q", language.French, docs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateGroundedAnswerRejectsRefusals(t *testing.T) {
	docs := []models.Document{{ID: "a"}}
	logger := zaptest.NewLogger(t)

	for _, tc := range []struct {
		answer string
		lang   language.Code
	}{
		{"Je ne sais pas.", language.French},
		{"I don't know", language.English},
		{"Je ne sais pas", language.English},
		{"Я не знаю", language.Russian},
	} {
		r := New(nil, &fakeGenerator{answer: tc.answer}, Config{MinAnswerLength: 3}, logger, nil)
		_, ok := r.GenerateGroundedAnswer(context.Background(), "q", tc.lang, docs)
		assert.False(t, ok, tc.answer)
	}

	r := New(nil, &fakeGenerator{answer: "Le 30 avril."}, Config{MinAnswerLength: 3}, logger, nil)
	got, ok := r.GenerateGroundedAnswer(context.Background(), "q", language.French, docs)
	assert.True(t, ok)
	assert.Equal(t, "Le 30 avril.", got)
}

func TestGenerateGroundedAnswerSkipsWithoutDocuments(t *testing.T) {
	gen := &fakeGenerator{answer: strings.Repeat("x", 80)}
	r := New(nil, gen, Config{}, zaptest.NewLogger(t), nil)

	_, ok := r.GenerateGroundedAnswer(context.Background(), "q", language.French, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, gen.calls)
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_theme.txt"), []byte("Grand Katanga"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_dates.txt"), []byte("30 avril 2026"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("  \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	docs, err := LoadCorpus(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a_dates.txt", docs[0].ID)
	assert.Equal(t, "a_dates", docs[0].Title)
	assert.Equal(t, "30 avril 2026", docs[0].Content)
	assert.Equal(t, "b_theme.txt", docs[1].ID)

	docs, err = LoadCorpus(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "éé", truncateRunes("ééé", 2))
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "abc", truncateRunes("abc", 0))
}
