package router

import (
	"context"
	"strings"

	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

// Matcher names, also used as the turn topic.
const (
	TopicHowAreYou          = "how_are_you"
	TopicGreeting           = "greeting"
	TopicThankYou           = "thank_you"
	TopicRegistration       = "registration"
	TopicGoodbye            = "goodbye"
	TopicAmbassador         = "ambassador"
	TopicRetrieval          = "retrieval"
	TopicFounders           = "founders"
	TopicWhatIs             = "what_is"
	TopicDates              = "dates"
	TopicLocation           = "location"
	TopicDuration           = "duration"
	TopicWhyLubumbashi      = "why_lubumbashi"
	TopicCities             = "cities"
	TopicKolwezi            = "kolwezi"
	TopicKalemie            = "kalemie"
	TopicKamoa              = "kamoa"
	TopicPresidentialSpeech = "presidential_speech"
	TopicTheme              = "theme"
	TopicFallback           = "fallback"
)

// matcher recognises and answers one topic. answer returns false to let the
// next matcher try. after runs once the replies have been logged.
type matcher struct {
	name   string
	answer func(ctx context.Context, t *turn) bool
	after  func(ctx context.Context, t *turn)
}

// keyword matches a turn on any keyword and answers with one catalog entry.
func (r *Router) keyword(name, key string, keywords ...string) matcher {
	return matcher{
		name: name,
		answer: func(_ context.Context, t *turn) bool {
			if !containsAny(t.text, keywords...) {
				return false
			}
			t.say(r.catalog.Lookup(key, t.lang))
			return true
		},
	}
}

// The order is significant: the first matcher that answers wins.
func (r *Router) buildMatchers() []matcher {
	return []matcher{
		{name: TopicHowAreYou, answer: r.answerHowAreYou},
		{name: TopicGreeting, answer: r.answerGreeting},
		r.keyword(TopicThankYou, catalog.KeyThankYou,
			"merci", "thanks", "thank you", "thank", "danke", "gracias", "спасибо", "شكرا"),
		// Checked before goodbye: "join" or "participer" messages often end with a farewell.
		r.keyword(TopicRegistration, catalog.KeyRegistration,
			"inscription", "register", "participer", "participate", "subscribe", "join", "enroll", "comment participer"),
		{name: TopicGoodbye, answer: r.answerGoodbye, after: r.requestFinalTranscript},
		{name: TopicAmbassador, answer: r.answerAmbassador},
		{name: TopicRetrieval, answer: r.answerFromKnowledgeBase},
		{name: TopicFounders, answer: r.answerFounders},
		{name: TopicWhatIs, answer: r.answerWhatIs},
		r.keyword(TopicDates, catalog.KeyDates,
			"date", "when", "quand", "cuándo", "когда", "什么时候", "متى"),
		r.keyword(TopicLocation, catalog.KeyLocation,
			"lieu", "where", "où", "dónde", "где", "哪里", "أين"),
		r.keyword(TopicDuration, catalog.KeyDuration,
			"combien de jours", "durée", "how many days", "duration"),
		r.keyword(TopicWhyLubumbashi, catalog.KeyWhyLubumbashi,
			"pourquoi lubumbashi", "why lubumbashi"),
		{name: TopicCities, answer: r.answerCities},
		r.keyword(TopicKolwezi, catalog.KeyKolwezi, "kolwezi"),
		r.keyword(TopicKalemie, catalog.KeyKalemie, "kalemie"),
		r.keyword(TopicKamoa, catalog.KeyKamoa, "kamoa"),
		{name: TopicPresidentialSpeech, answer: r.answerPresidentialSpeech},
		{name: TopicTheme, answer: r.answerTheme},
		{name: TopicFallback, answer: r.answerFallback, after: r.requestThresholdTranscript},
	}
}

var howAreYouPhrases = []string{
	"how are you", "comment allez-vous", "comment vas-tu", "comment allez vous", "comment vas tu",
	"ça va", "ca va", "cómo estás", "如何", "как дела", "كيف حالك",
}

func (r *Router) answerHowAreYou(_ context.Context, t *turn) bool {
	clean := strings.TrimSpace(strings.NewReplacer("?", "", "!", "").Replace(t.text))
	if !containsAny(clean, howAreYouPhrases...) {
		return false
	}
	t.say(r.catalog.Lookup(catalog.KeyHowAreYou, t.lang))
	return true
}

func (r *Router) answerGreeting(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "bonjour", "salut", "hello", "hi", "bonsoir", "hola", "привет", "你好", "مرحبا") {
		return false
	}

	name := extractName(t.original)
	if name != "" && r.catalog.Has(catalog.KeyGreetingNamed, t.lang) {
		t.say(r.catalog.Format(catalog.KeyGreetingNamed, t.lang, name))
	} else {
		t.say(r.catalog.Lookup(catalog.KeyGreeting, t.lang))
	}
	if name == "" {
		t.say(r.catalog.Lookup(catalog.KeyGreetingSuggestions, t.lang))
	}
	return true
}

var (
	farewellKeywords = []string{"au revoir", "bye", "goodbye", "à bientôt", "adieu", "ciao", "adiós", "пока", "再见", "مع السلامة"}
	// A farewell keyword next to one of these is a question, not a goodbye.
	questionKeywords = []string{"oui", "comment", "qui", "quoi", "où", "quand", "pourquoi"}
)

func (r *Router) answerGoodbye(_ context.Context, t *turn) bool {
	if !containsAny(t.text, farewellKeywords...) || containsAny(t.text, questionKeywords...) {
		return false
	}
	t.say(r.catalog.Lookup(catalog.KeyGoodbye, t.lang))
	return true
}

func (r *Router) requestFinalTranscript(ctx context.Context, t *turn) {
	transcript := r.transcript(ctx, t.sessionID)
	if transcript == nil {
		return
	}
	t.notify(models.NotificationRequest{
		Kind:          models.NotifyTranscript,
		SessionID:     t.sessionID,
		Transcript:    transcript,
		RemoveSession: true,
	})
}

// answerAmbassador only distinguishes English from French.
func (r *Router) answerAmbassador(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "ambassadeur", "ambassador", "devenir", "rejoindre", "become") {
		return false
	}
	lang := language.French
	if t.lang == language.English {
		lang = language.English
	}
	t.say(r.catalog.Lookup(catalog.KeyAmbassador, lang))
	t.say(r.catalog.Lookup(catalog.KeyAmbassadorSuggestions, lang))
	return true
}

func (r *Router) answerFromKnowledgeBase(ctx context.Context, t *turn) bool {
	if r.retriever == nil {
		return false
	}
	docs := r.retriever.FindRelevant(ctx, t.original, r.topK)
	if len(docs) == 0 {
		return false
	}
	answer, ok := r.retriever.GenerateGroundedAnswer(ctx, t.original, t.lang, docs)
	if !ok {
		return false
	}
	t.say(answer)
	return true
}

func (r *Router) answerFounders(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "fondateur", "créateur", "président", "qui est", "qui sont") {
		return false
	}
	switch {
	case containsAny(t.text, "jean", "bamanisa", "fondateur", "créateur"):
		t.say(r.catalog.Lookup(catalog.KeyFounder, t.lang))
		t.say(r.catalog.Lookup(catalog.KeyFounderSuggestions, t.lang))
	case containsAny(t.text, "momo", "sungunza", "vice"):
		t.say(r.catalog.Lookup(catalog.KeyVicePresident, t.lang))
		t.say(r.catalog.Lookup(catalog.KeyVicePresidentSuggestion, t.lang))
	default:
		return false
	}
	return true
}

func (r *Router) answerWhatIs(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "quoi", "what", "est-ce", "c'est", "c’est", "qué", "什么", "что", "ما") {
		return false
	}
	switch {
	case containsAny(t.text, "katanga"):
		lang := language.English
		if t.lang == language.French {
			lang = language.French
		}
		t.say(r.catalog.Lookup(catalog.KeyGrandKatanga, lang))
	case containsAny(t.text, "expobeton", "expbeton", "expo beton", "expo béton"):
		t.say(r.catalog.Lookup(catalog.KeyWhatIsExpoBeton, t.lang))
	default:
		return false
	}
	return true
}

func (r *Router) answerCities(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "villes", "quelles villes", "cities", "which cities") || !containsAny(t.text, "katanga") {
		return false
	}
	t.say(r.catalog.Lookup(catalog.KeyCities, t.lang))
	return true
}

func (r *Router) answerPresidentialSpeech(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "président", "president", "discours", "speech") ||
		!containsAny(t.text, "2024", "dit", "said", "ouverture", "opening") {
		return false
	}
	t.say(r.catalog.Lookup(catalog.KeyPresidentialSpeech, t.lang))
	return true
}

func (r *Router) answerTheme(_ context.Context, t *turn) bool {
	if !containsAny(t.text, "thème", "theme", "sujet") {
		return false
	}
	t.say(r.catalog.Lookup(catalog.KeyTheme, t.lang))
	t.say(r.catalog.Lookup(catalog.KeyThemeSuggestions, t.lang))
	return true
}

func (r *Router) answerFallback(_ context.Context, t *turn) bool {
	t.say(r.catalog.Lookup(catalog.KeyFallback, t.lang))
	t.notify(models.NotificationRequest{
		Kind:      models.NotifyUnanswered,
		SessionID: t.sessionID,
		Question:  t.original,
	})
	return true
}

// requestThresholdTranscript sends the conversation so far once it is long
// enough to be worth reading. The session stays open.
func (r *Router) requestThresholdTranscript(ctx context.Context, t *turn) {
	transcript := r.transcript(ctx, t.sessionID)
	if transcript == nil || len(transcript.Messages) < r.threshold {
		return
	}
	t.notify(models.NotificationRequest{
		Kind:       models.NotifyTranscript,
		SessionID:  t.sessionID,
		Transcript: transcript,
	})
}
