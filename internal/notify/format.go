package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

const (
	notProvided   = "Non fourni"
	anonymousUser = "Utilisateur"
	separator     = "=================================================="
)

// Email is a rendered notification ready for the mailer or an archive.
type Email struct {
	Subject string
	Body    string
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func senderLabel(s models.Sender) string {
	if s == models.SenderUser {
		return "Utilisateur"
	}
	return "Bot"
}

// TranscriptEmail renders the conversation transcript sent to the team.
func TranscriptEmail(t models.Transcript, now time.Time) Email {
	var lines strings.Builder
	for _, msg := range t.Messages {
		fmt.Fprintf(&lines, "[%s] %s: %s\n\n", msg.Timestamp.Format("15:04:05"), senderLabel(msg.Sender), msg.Text)
	}

	var b strings.Builder
	b.WriteString("\nBonjour,\n\n")
	b.WriteString("Voici le transcript d'une conversation avec le chatbot ExpoBeton RDC.\n\n")
	b.WriteString("=== INFORMATIONS UTILISATEUR ===\n")
	fmt.Fprintf(&b, "Nom: %s\n", orPlaceholder(t.UserInfo.Name, notProvided))
	fmt.Fprintf(&b, "Téléphone: %s\n", orPlaceholder(t.UserInfo.Phone, notProvided))
	fmt.Fprintf(&b, "Email: %s\n", orPlaceholder(t.UserInfo.Email, notProvided))
	fmt.Fprintf(&b, "Session ID: %s\n\n", t.SessionID)
	b.WriteString("=== CONVERSATION ===\n")
	b.WriteString(lines.String())
	b.WriteString("=== FIN DE CONVERSATION ===\n\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format(time.DateTime))
	fmt.Fprintf(&b, "Nombre de messages: %d\n\n", len(t.Messages))
	b.WriteString("Cordialement,\nBot ExpoBeton RDC\n")

	return Email{
		Subject: fmt.Sprintf("[Bot] Conversation - %s - %s",
			orPlaceholder(t.UserInfo.Name, anonymousUser), now.Format("2006-01-02 15:04")),
		Body: b.String(),
	}
}

// UnansweredEmail renders the notice for a question the bot could not answer.
func UnansweredEmail(question string, now time.Time) Email {
	var b strings.Builder
	b.WriteString("\nBonjour,\n\n")
	b.WriteString("Le chatbot ExpoBeton RDC a reçu une question à laquelle il n'a pas pu répondre.\n\n")
	fmt.Fprintf(&b, "Question de l'utilisateur:\n\"%s\"\n\n", question)
	fmt.Fprintf(&b, "Date et heure: %s\n\n", now.Format(time.DateTime))
	b.WriteString("Veuillez envisager d'ajouter cette information à la base de connaissances du bot.\n\n")
	b.WriteString("Cordialement,\nBot ExpoBeton RDC\n")

	return Email{
		Subject: fmt.Sprintf("[Bot] Question sans réponse - %s", now.Format("2006-01-02 15:04")),
		Body:    b.String(),
	}
}
