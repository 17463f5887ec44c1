package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/bot"
	"github.com/expobetonrdc/expo-bot/internal/catalog"
	"github.com/expobetonrdc/expo-bot/internal/chat"
	"github.com/expobetonrdc/expo-bot/internal/metrics"
	"github.com/expobetonrdc/expo-bot/internal/models"
	"github.com/expobetonrdc/expo-bot/internal/notify"
	"github.com/expobetonrdc/expo-bot/internal/retrieval"
	"github.com/expobetonrdc/expo-bot/internal/router"
	"github.com/expobetonrdc/expo-bot/internal/server"
	"github.com/expobetonrdc/expo-bot/internal/storage"
	"github.com/expobetonrdc/expo-bot/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml configuration")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}

	// Initialize logger
	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("Failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New("expobot")

	// Initialize conversation log
	log := storage.NewMemoryStorage(storage.MemoryConfig{
		MaxSessions: cfg.Sessions.MaxSessions,
		TTL:         cfg.Sessions.TTL,
		OnEvict: func(session models.Session) {
			logger.Info("Session evicted",
				zap.String("session_id", session.ID),
				zap.Int("messages", len(session.Messages)))
		},
	})
	defer log.Close()

	retriever, closeRetrieval := buildRetriever(cfg, logger, m)
	defer closeRetrieval()

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logger.Fatal("Invalid response catalog", zap.Error(err))
	}

	r := router.New(log, cat, retriever, router.Config{
		TopK:                cfg.Retrieval.TopK,
		TranscriptThreshold: cfg.Sessions.TranscriptThreshold,
	}, logger)

	dispatcher, closeArchive := buildDispatcher(ctx, cfg, logger, m)
	defer closeArchive()

	service := chat.NewService(r, log, dispatcher, chat.Config{Async: cfg.Notifications.Async}, logger, m)
	defer service.Wait()

	// Start the REST webhook
	e := server.New(server.NewHandler(service, m, logger), logger)
	go func() {
		logger.Info("Starting webhook server", zap.String("addr", cfg.Server.Addr()))
		if err := e.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Webhook server error", zap.Error(err))
			stop()
		}
	}()

	// Start the Telegram bot when a token is configured
	botDone := make(chan struct{})
	if cfg.Telegram.Token != "" {
		b, err := bot.New(cfg.Telegram.Token, service, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
		go func() {
			defer close(botDone)
			if err := b.Start(ctx); err != nil {
				logger.Error("Bot error", zap.Error(err))
			}
		}()
	} else {
		logger.Info("TELEGRAM_TOKEN not set, Telegram channel disabled")
		close(botDone)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Webhook server shutdown error", zap.Error(err))
	}
	<-botDone
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = level
	return zcfg.Build()
}

// buildRetriever ranks with OpenAI embeddings and falls back to a local
// bleve index when the embeddings API fails. Without a key there is nothing
// to generate grounded answers, so retrieval is disabled.
func buildRetriever(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*retrieval.Retriever, func()) {
	rcfg := retrieval.Config{Timeout: cfg.Retrieval.Timeout}
	if cfg.OpenAI.APIKey == "" {
		logger.Info("OPENAI_API_KEY not set, knowledge base answers disabled")
		return retrieval.New(nil, nil, rcfg, logger, m), func() {}
	}

	docs, err := retrieval.LoadCorpus(cfg.Retrieval.DocsDir)
	if err != nil {
		logger.Warn("Failed to load retrieval corpus, continuing without documents",
			zap.Error(err),
			zap.String("dir", cfg.Retrieval.DocsDir))
	}
	logger.Info("Retrieval corpus loaded", zap.Int("documents", len(docs)))

	client := retrieval.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	generator := retrieval.NewChatGenerator(client, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature, logger)
	var ranker retrieval.Ranker = retrieval.NewEmbeddingRanker(client, cfg.OpenAI.EmbeddingModel, docs, logger)

	index, err := retrieval.NewBleveRanker(docs)
	if err != nil {
		logger.Error("Failed to build local index, embeddings only", zap.Error(err))
		return retrieval.New(ranker, generator, rcfg, logger, m), func() {}
	}
	ranker = retrieval.NewFallbackRanker(ranker, index, logger)
	return retrieval.New(ranker, generator, rcfg, logger, m), func() {
		if err := index.Close(); err != nil {
			logger.Warn("Failed to close local index", zap.Error(err))
		}
	}
}

func buildDispatcher(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*notify.Dispatcher, func()) {
	var mailer notify.Mailer
	smtpCfg := notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
		Timeout:  cfg.Notifications.Timeout,
	}
	if smtpCfg.Enabled() {
		smtpMailer, err := notify.NewSMTPMailer(smtpCfg)
		if err != nil {
			logger.Fatal("Failed to initialize mailer", zap.Error(err))
		}
		mailer = smtpMailer
	} else {
		logger.Warn("SMTP credentials not set, notifications go to the archive only")
	}

	var (
		archive notify.Archive
		closer  = func() {}
	)
	switch cfg.Archive.Driver {
	case "postgres":
		logger.Info("Using PostgreSQL archive")
		pg, err := storage.NewPostgresArchive(ctx, storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize archive", zap.Error(err))
		}
		archive = pg
		closer = func() { pg.Close() }
	default:
		logger.Info("Using file archive", zap.String("dir", cfg.Archive.Dir))
		fa, err := notify.NewFileArchive(cfg.Archive.Dir)
		if err != nil {
			logger.Fatal("Failed to initialize archive", zap.Error(err))
		}
		archive = fa
	}

	return notify.NewDispatcher(mailer, archive, notify.Config{Timeout: cfg.Notifications.Timeout}, logger, m), closer
}
