package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expobetonrdc/expo-bot/internal/language"
)

// Entries maps a topic key to its localized texts
type Entries map[string]map[language.Code]string

// Catalog resolves localized response texts with a French fallback.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	entries Entries
}

func New(entries Entries) *Catalog {
	copied := make(Entries, len(entries))
	for key, texts := range entries {
		m := make(map[language.Code]string, len(texts))
		for lang, text := range texts {
			m[lang] = text
		}
		copied[key] = m
	}
	return &Catalog{entries: copied}
}

// Lookup returns the text for lang, the French text when lang is missing,
// or an empty string when the key is unknown.
func (c *Catalog) Lookup(key string, lang language.Code) string {
	texts, ok := c.entries[key]
	if !ok {
		return ""
	}
	if text, ok := texts[lang]; ok {
		return text
	}
	return texts[language.Default]
}

// Format looks up key and substitutes positional arguments.
func (c *Catalog) Format(key string, lang language.Code, args ...any) string {
	text := c.Lookup(key, lang)
	if text == "" || len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

func (c *Catalog) Has(key string, lang language.Code) bool {
	texts, ok := c.entries[key]
	if !ok {
		return false
	}
	_, ok = texts[lang]
	return ok
}

func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate reports every key that has no French text.
func (c *Catalog) Validate() error {
	var missing []string
	for _, key := range c.Keys() {
		if strings.TrimSpace(c.entries[key][language.Default]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalog keys without a %s entry: %s", language.Default, strings.Join(missing, ", "))
	}
	return nil
}
