package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	Timeout time.Duration
	Now     func() time.Time
}

// Dispatcher hands transcripts and unanswered questions to the team.
// Delivery is best effort: mail first, then the archive. Nothing is returned
// to the caller as an error.
type Dispatcher struct {
	mailer  Mailer
	archive Archive
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewDispatcher builds a Dispatcher. mailer and archive may each be nil.
func NewDispatcher(mailer Mailer, archive Archive, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Dispatcher{
		mailer:  mailer,
		archive: archive,
		timeout: cfg.Timeout,
		now:     cfg.Now,
		logger:  logger,
		metrics: m,
	}
}

// SendTranscript reports whether the transcript was persisted somewhere,
// either mailed or archived.
func (d *Dispatcher) SendTranscript(ctx context.Context, t models.Transcript) bool {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	email := TranscriptEmail(t, d.now())
	logger := d.logger.With(
		zap.String("session_id", t.SessionID),
		zap.Int("messages", len(t.Messages)))

	if d.mail(ctx, email, logger) {
		logger.Info("Transcript mailed")
		d.metrics.ObserveNotification(string(models.NotifyTranscript), "mailed")
		return true
	}

	if d.archive == nil {
		logger.Error("Transcript dropped, no archive configured")
		d.metrics.ObserveNotification(string(models.NotifyTranscript), "failed")
		return false
	}
	if err := d.archive.SaveTranscript(ctx, t, email.Body); err != nil {
		logger.Error("Failed to archive transcript", zap.Error(err))
		d.metrics.ObserveNotification(string(models.NotifyTranscript), "failed")
		return false
	}
	logger.Info("Transcript archived")
	d.metrics.ObserveNotification(string(models.NotifyTranscript), "archived")
	return true
}

// SendUnansweredNotice reports a question that fell through to the default answer.
func (d *Dispatcher) SendUnansweredNotice(ctx context.Context, question string) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	now := d.now()
	email := UnansweredEmail(question, now)
	logger := d.logger.With(zap.String("question", question))

	if d.mail(ctx, email, logger) {
		logger.Info("Unanswered question mailed")
		d.metrics.ObserveNotification(string(models.NotifyUnanswered), "mailed")
		return
	}

	if d.archive == nil {
		logger.Warn("Unanswered question dropped, no archive configured")
		d.metrics.ObserveNotification(string(models.NotifyUnanswered), "failed")
		return
	}
	if err := d.archive.SaveUnanswered(ctx, question, now); err != nil {
		logger.Error("Failed to archive unanswered question", zap.Error(err))
		d.metrics.ObserveNotification(string(models.NotifyUnanswered), "failed")
		return
	}
	logger.Info("Unanswered question archived")
	d.metrics.ObserveNotification(string(models.NotifyUnanswered), "archived")
}

func (d *Dispatcher) mail(ctx context.Context, email Email, logger *zap.Logger) bool {
	if d.mailer == nil {
		logger.Debug("SMTP not configured, falling back to archive")
		return false
	}
	if err := d.mailer.Send(ctx, email); err != nil {
		logger.Warn("Failed to send notification mail", zap.Error(err))
		return false
	}
	return true
}
