package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

const (
	transcriptLog = "conversations.log"
	unansweredLog = "unanswered_questions.log"
)

// Archive durably keeps notifications the mailer could not deliver.
// storage.PostgresArchive is the database-backed implementation.
type Archive interface {
	SaveTranscript(ctx context.Context, t models.Transcript, body string) error
	SaveUnanswered(ctx context.Context, question string, at time.Time) error
}

// FileArchive appends notifications to log files in a directory.
type FileArchive struct {
	dir string
	mu  sync.Mutex
}

func NewFileArchive(dir string) (*FileArchive, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating archive directory: %w", err)
	}
	return &FileArchive{dir: dir}, nil
}

func (a *FileArchive) SaveTranscript(_ context.Context, _ models.Transcript, body string) error {
	return a.appendTo(transcriptLog, fmt.Sprintf("\n%s\n%s\n%s\n", separator, body, separator))
}

func (a *FileArchive) SaveUnanswered(_ context.Context, question string, at time.Time) error {
	return a.appendTo(unansweredLog, fmt.Sprintf("[%s] %s\n", at.Format(time.DateTime), question))
}

func (a *FileArchive) appendTo(name, entry string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(filepath.Join(a.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", name, err)
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return f.Close()
}
