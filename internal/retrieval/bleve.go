package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

type bleveDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BleveRanker ranks the knowledge base with an in-memory full-text index.
// It needs no external service and backs retrieval when no embedding API is configured.
type BleveRanker struct {
	index bleve.Index
	docs  map[string]models.Document
}

func NewBleveRanker(docs []models.Document) (*BleveRanker, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("error creating index: %w", err)
	}

	r := &BleveRanker{
		index: index,
		docs:  make(map[string]models.Document, len(docs)),
	}
	batch := index.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.ID, bleveDocument{Title: doc.Title, Content: doc.Content}); err != nil {
			index.Close()
			return nil, fmt.Errorf("error indexing %s: %w", doc.ID, err)
		}
		r.docs[doc.ID] = doc
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("error indexing documents: %w", err)
	}
	return r, nil
}

func (r *BleveRanker) Rank(ctx context.Context, query string, topK int) ([]models.Document, error) {
	if len(r.docs) == 0 || strings.TrimSpace(query) == "" {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), topK, 0, false)
	res, err := r.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error searching index: %w", err)
	}

	ranked := make([]models.Document, 0, len(res.Hits))
	for _, hit := range res.Hits {
		doc, ok := r.docs[hit.ID]
		if !ok {
			continue
		}
		doc.Score = hit.Score
		ranked = append(ranked, doc)
	}
	return ranked, nil
}

func (r *BleveRanker) Close() error {
	return r.index.Close()
}
