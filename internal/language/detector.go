package language

import "strings"

// Code is one of the languages the bot can answer in
type Code string

const (
	French  Code = "fr"
	English Code = "en"
	Chinese Code = "zh"
	Russian Code = "ru"
	Spanish Code = "es"
	Arabic  Code = "ar"
)

// Default is used whenever nothing better can be inferred
const Default = French

var supported = []Code{French, English, Chinese, Russian, Spanish, Arabic}

var (
	frenchKeywords  = []string{"bonjour", "salut", "merci", "quoi", "comment", "pourquoi", "quand", "où", "est-ce", "c'est", "quelles", "quel", "quelle"}
	englishKeywords = []string{"hello", "hi", "thank", "what", "how", "why", "when", "where", "is", "are", "can", "could", "would"}
	spanishKeywords = []string{"hola", "gracias", "qué", "cómo", "cuándo", "dónde", "por qué", "buenos", "días"}
	russianKeywords = []string{"привет", "спасибо", "что", "как", "когда", "где", "почему", "здравствуй"}
)

// Supported returns the closed set of language codes.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a caller-provided code onto a supported language.
func Parse(s string) (Code, bool) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range supported {
		if c == l {
			return l, true
		}
	}
	return Default, false
}

// Detect guesses the language of a single utterance. Script detection wins over
// keyword scores, Russian keywords win over every other score and ties between
// French and English resolve to French.
func Detect(text string) Code {
	if hasRune(text, isCJK) {
		return Chinese
	}
	if hasRune(text, isArabic) {
		return Arabic
	}

	lower := strings.ToLower(text)
	fr := countHits(lower, frenchKeywords)
	en := countHits(lower, englishKeywords)
	es := countHits(lower, spanishKeywords)
	ru := countHits(lower, russianKeywords)

	switch {
	case ru > 0:
		return Russian
	case es > en && es > fr:
		return Spanish
	case en > fr:
		return English
	case fr > 0:
		return French
	}
	return Default
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func hasRune(text string, pred func(rune) bool) bool {
	for _, r := range text {
		if pred(r) {
			return true
		}
	}
	return false
}

func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}
