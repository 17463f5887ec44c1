package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PostgresArchive durably records transcripts and unanswered questions that
// could not be mailed.
type PostgresArchive struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresArchive(ctx context.Context, config DatabaseConfig, logger *zap.Logger) (*PostgresArchive, error) {
	db, err := sql.Open("postgres", config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	archive := &PostgresArchive{db: db, logger: logger}
	if err := archive.initializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	logger.Info("Postgres archive ready",
		zap.String("host", config.Host),
		zap.String("dbname", config.DBName))
	return archive, nil
}

func (a *PostgresArchive) initializeSchema(ctx context.Context) error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}
	return nil
}

func (a *PostgresArchive) SaveTranscript(ctx context.Context, t models.Transcript, body string) error {
	messages, err := json.Marshal(t.Messages)
	if err != nil {
		return fmt.Errorf("error encoding transcript messages: %w", err)
	}

	query := `
		INSERT INTO transcripts (session_id, user_name, user_phone, user_email, message_count, messages, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = a.db.ExecContext(ctx, query,
		t.SessionID,
		t.UserInfo.Name,
		t.UserInfo.Phone,
		t.UserInfo.Email,
		len(t.Messages),
		messages,
		body,
	)
	if err != nil {
		return fmt.Errorf("error saving transcript: %w", err)
	}
	return nil
}

func (a *PostgresArchive) SaveUnanswered(ctx context.Context, question string, at time.Time) error {
	query := `
		INSERT INTO unanswered_questions (question, asked_at)
		VALUES ($1, $2)`

	if _, err := a.db.ExecContext(ctx, query, question, at); err != nil {
		return fmt.Errorf("error saving unanswered question: %w", err)
	}
	return nil
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
