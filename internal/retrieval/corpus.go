package retrieval

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

// LoadCorpus reads every *.txt file of dir as one document. A missing
// directory yields an empty corpus.
func LoadCorpus(dir string) ([]models.Document, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	sort.Strings(paths)

	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}
		name := filepath.Base(path)
		docs = append(docs, models.Document{
			ID:      name,
			Title:   strings.TrimSuffix(name, filepath.Ext(name)),
			Content: string(content),
		})
	}
	return docs, nil
}
