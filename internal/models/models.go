package models

import "time"

// Sender identifies who authored a message in a conversation
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single entry of a conversation transcript
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// UserInfo holds the contact details a visitor may have left in the widget
type UserInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

func (u UserInfo) IsEmpty() bool {
	return u.Name == "" && u.Phone == "" && u.Email == ""
}

// Session is the in-memory conversation state of one visitor
type Session struct {
	ID           string    `json:"id"`
	Messages     []Message `json:"messages"`
	UserInfo     UserInfo  `json:"user_info"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Document is a knowledge base entry ranked against a query
type Document struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Button is an interactive choice attached to a reply
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Reply is one outbound bot message
type Reply struct {
	Text    string   `json:"text"`
	Buttons []Button `json:"buttons,omitempty"`
}

// Transcript is the payload handed to the notification channel
type Transcript struct {
	SessionID string    `json:"session_id"`
	UserInfo  UserInfo  `json:"user_info"`
	Messages  []Message `json:"messages"`
}

type NotificationKind string

const (
	NotifyTranscript NotificationKind = "transcript"
	NotifyUnanswered NotificationKind = "unanswered"
)

// NotificationRequest is emitted by the router and executed by the chat service.
// RemoveSession asks for the session to be dropped once the transcript was persisted.
type NotificationRequest struct {
	Kind          NotificationKind `json:"kind"`
	SessionID     string           `json:"session_id"`
	Question      string           `json:"question,omitempty"`
	Transcript    *Transcript      `json:"transcript,omitempty"`
	RemoveSession bool             `json:"remove_session,omitempty"`
}
