package router

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// Names are capped at three words and cut at the first word in notName.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)je m['’]appelle\s+([A-Za-zÀ-ÿ]+(?:\s+[A-Za-zÀ-ÿ]+){0,2})`),
	regexp.MustCompile(`(?i)my name is\s+([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`),
	regexp.MustCompile(`(?i)i['’]m\s+([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`),
	regexp.MustCompile(`(?i)me llamo\s+([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`),
}

// notName ends a captured name. "i'm fine thanks" and "i'm jean and i need
// the dates" must not greet the rest of the sentence.
var notName = map[string]struct{}{
	"and": {}, "et": {}, "y": {}, "but": {}, "mais": {}, "pero": {}, "or": {}, "ou": {},
	"i": {}, "je": {}, "yo": {}, "from": {}, "here": {}, "ici": {},
	"a": {}, "an": {}, "the": {}, "not": {}, "so": {}, "very": {}, "just": {},
	"fine": {}, "good": {}, "great": {}, "well": {}, "ok": {}, "okay": {}, "bien": {},
	"thanks": {}, "thank": {}, "merci": {}, "gracias": {},
	"looking": {}, "interested": {}, "trying": {}, "doing": {}, "new": {},
}

// extractName returns the title-cased name the visitor introduced
// themselves with, or "".
func extractName(text string) string {
	for _, pattern := range namePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		var words []string
		for _, word := range strings.Fields(match[1]) {
			if _, stop := notName[strings.ToLower(word)]; stop {
				break
			}
			words = append(words, word)
		}
		if len(words) > 0 {
			return cases.Title(xlanguage.French).String(strings.Join(words, " "))
		}
	}
	return ""
}
