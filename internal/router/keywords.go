package router

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// containsAny reports whether text contains one of the keywords. Short ASCII
// keywords ("hi", "qui", "oui") only match whole words; everything else is a
// plain substring match.
func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if isShortWord(kw) {
			if containsWord(text, kw) {
				return true
			}
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func isShortWord(kw string) bool {
	if len(kw) > 3 {
		return false
	}
	for i := 0; i < len(kw); i++ {
		c := kw[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func containsWord(text, word string) bool {
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if !wordRuneBefore(text, start) && !wordRuneAfter(text, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func wordRuneBefore(text string, pos int) bool {
	if pos == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return isWordRune(r)
}

func wordRuneAfter(text string, pos int) bool {
	if pos >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
