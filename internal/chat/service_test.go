package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/language"
	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/router"
	"github.com/expobetonrdc/expo-bot/internal/storage"
)

type recordingNotifier struct {
	mu   sync.Mutex
	fail bool
	// when set, transcript delivery blocks until it is closed
	gate        chan struct{}
	transcripts []models.Transcript
	questions   []string
}

func (n *recordingNotifier) SendTranscript(ctx context.Context, t models.Transcript) bool {
	if n.gate != nil {
		<-n.gate
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return false
	}
	n.transcripts = append(n.transcripts, t)
	return true
}

func (n *recordingNotifier) SendUnansweredNotice(ctx context.Context, question string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.questions = append(n.questions, question)
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.transcripts), len(n.questions)
}

type fixture struct {
	service  *Service
	log      *storage.MemoryStorage
	notifier *recordingNotifier
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T, cfg Config) *fixture {
	logger := zaptest.NewLogger(t)
	log := storage.NewMemoryStorage(storage.MemoryConfig{})
	r := router.New(log, catalog.Default(), nil, router.Config{}, logger)
	notifier := &recordingNotifier{}
	m := metrics.New("test")
	return &fixture{
		service:  NewService(r, log, notifier, cfg, logger, m),
		log:      log,
		notifier: notifier,
		metrics:  m,
	}
}

func (f *fixture) say(sessionID, text string) []models.Reply {
	return f.service.Handle(context.Background(), Event{SessionID: sessionID, Text: text})
}

func TestHandleUtterance(t *testing.T) {
	f := newFixture(t, Config{})

	replies := f.say("s1", "Bonjour")

	assert.Len(t, replies, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Turns.WithLabelValues(router.TopicGreeting, "fr")))
}

func TestFallbackDeliversUnansweredNotice(t *testing.T) {
	f := newFixture(t, Config{})

	f.say("s1", "xyzzy plugh")

	transcripts, questions := f.notifier.counts()
	assert.Equal(t, 0, transcripts)
	assert.Equal(t, 1, questions)

	f.say("s1", "plugh xyzzy")
	transcripts, questions = f.notifier.counts()
	assert.Equal(t, 1, transcripts)
	assert.Equal(t, 2, questions)

	_, ok := f.log.GetSession(context.Background(), "s1")
	assert.True(t, ok, "threshold transcripts keep the session")
}

func TestFarewellClosesSessionAfterDelivery(t *testing.T) {
	f := newFixture(t, Config{})
	f.say("s1", "Bonjour")

	f.say("s1", "au revoir")

	require.Len(t, f.notifier.transcripts, 1)
	assert.Len(t, f.notifier.transcripts[0].Messages, 5)
	_, ok := f.log.GetSession(context.Background(), "s1")
	assert.False(t, ok)
}

func TestFailedDeliveryKeepsSession(t *testing.T) {
	f := newFixture(t, Config{})
	f.notifier.fail = true
	f.say("s1", "Bonjour")

	f.say("s1", "au revoir")

	session, ok := f.log.GetSession(context.Background(), "s1")
	require.True(t, ok)
	assert.Len(t, session.Messages, 5)
}

func TestCommands(t *testing.T) {
	f := newFixture(t, Config{})
	cat := catalog.Default()
	f.say("s1", "Hello, what are the dates?")

	prompt := f.say("s1", "/ask_feedback")
	require.Len(t, prompt, 1)
	assert.Equal(t, cat.Lookup(catalog.KeyFeedbackPrompt, language.English), prompt[0].Text)
	require.Len(t, prompt[0].Buttons, 2)

	thanks := f.say("s1", prompt[0].Buttons[1].Payload)
	require.Len(t, thanks, 1)
	assert.Equal(t, cat.Lookup(catalog.KeyFeedbackNegative, language.English), thanks[0].Text)

	session, ok := f.log.GetSession(context.Background(), "s1")
	require.True(t, ok)
	assert.Len(t, session.Messages, 3, "commands are not part of the transcript")

	ended := f.say("s1", "/end_conversation")
	assert.Equal(t, cat.Lookup(catalog.KeyConversationEnded, language.French), ended[0].Text)
	require.Len(t, f.notifier.transcripts, 1)
	_, ok = f.log.GetSession(context.Background(), "s1")
	assert.False(t, ok)
}

func TestUnknownRatingIsRoutedAsText(t *testing.T) {
	f := newFixture(t, Config{})

	f.say("s1", "/SetSlots(feedback_rating=meh)")

	_, questions := f.notifier.counts()
	assert.Equal(t, 1, questions)
}

func TestEndConversationWithClientTranscript(t *testing.T) {
	f := newFixture(t, Config{})

	replies := f.service.EndConversation(context.Background(), "web-1", &router.EndPayload{
		UserInfo: models.UserInfo{Email: "visitor@example.com"},
		Messages: []router.PayloadMessage{{Sender: "user", Text: "Bonjour", Timestamp: "2026-04-30T10:00:00Z"}},
	})

	assert.Len(t, replies, 1)
	require.Len(t, f.notifier.transcripts, 1)
	assert.Equal(t, "visitor@example.com", f.notifier.transcripts[0].UserInfo.Email)
}

func TestAsyncDelivery(t *testing.T) {
	f := newFixture(t, Config{Async: true})
	f.say("s1", "Bonjour")
	f.say("s1", "bye")

	f.service.Wait()

	transcripts, _ := f.notifier.counts()
	assert.Equal(t, 1, transcripts)
	_, ok := f.log.GetSession(context.Background(), "s1")
	assert.False(t, ok)
}

func TestAsyncDeliveryKeepsMessagesLoggedDuringDelivery(t *testing.T) {
	f := newFixture(t, Config{Async: true})
	gate := make(chan struct{})
	f.notifier.gate = gate
	f.say("s1", "Bonjour")
	f.say("s1", "au revoir")

	f.say("s1", "merci")
	close(gate)
	f.service.Wait()

	require.Len(t, f.notifier.transcripts, 1)
	assert.Len(t, f.notifier.transcripts[0].Messages, 5)

	session, ok := f.log.GetSession(context.Background(), "s1")
	require.True(t, ok, "a session that kept going must survive the delivery")
	var texts []string
	for _, msg := range session.Messages {
		texts = append(texts, msg.Text)
	}
	assert.Contains(t, texts, "merci")
}

func TestNilNotifier(t *testing.T) {
	logger := zaptest.NewLogger(t)
	log := storage.NewMemoryStorage(storage.MemoryConfig{})
	s := NewService(router.New(log, catalog.Default(), nil, router.Config{}, logger), log, nil, Config{}, logger, nil)

	replies := s.Handle(context.Background(), Event{SessionID: "s1", Text: "xyzzy"})
	assert.Len(t, replies, 1)
}

func TestTurnsOfOneSessionAreSerialized(t *testing.T) {
	f := newFixture(t, Config{})
	const turns = 20

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.say("shared", "Quelles sont les dates ?")
		}()
	}
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f.say(fmt.Sprintf("other-%d", i), "Quelles sont les dates ?")
		}(i)
	}
	wg.Wait()

	session, ok := f.log.GetSession(context.Background(), "shared")
	require.True(t, ok)
	require.Len(t, session.Messages, 2*turns)
	for i, msg := range session.Messages {
		want := models.SenderUser
		if i%2 == 1 {
			want = models.SenderBot
		}
		assert.Equal(t, want, msg.Sender, "message %d", i)
	}
	assert.Equal(t, 0, f.service.locks.len())
}
