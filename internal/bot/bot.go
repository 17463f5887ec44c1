package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/expobetonrdc/expo-bot/internal/chat"
	"github.com/expobetonrdc/expo-bot/internal/models"
)

const welcome = `Bienvenue sur l'assistant ExpoBeton RDC! 🏗️
Welcome to the ExpoBeton RDC assistant!

Posez-moi vos questions sur l'événement: dates, lieu, thème, fondateurs, inscription...
Ask me anything about the event in French, English, Spanish, Russian, Chinese or Arabic.

/help pour l'aide · /help for help`

const help = `Commandes / Commands:
/start - Démarrer / Start
/help - Aide / Help
/feedback - Donner votre avis / Rate the service
/end - Terminer la conversation / End the conversation

Vous pouvez aussi simplement écrire votre question.
You can also just type your question.`

type Bot struct {
	api    *tgbotapi.BotAPI
	chat   *chat.Service
	logger *zap.Logger
	wg     sync.WaitGroup
}

func New(token string, service *chat.Service, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))
	return &Bot{
		api:    api,
		chat:   service,
		logger: logger,
	}, nil
}

// Start long-polls Telegram until ctx is cancelled, then waits for the
// updates in flight.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			switch {
			case update.Message != nil:
				b.spawn(func() { b.handleMessage(ctx, update.Message) })
			case update.CallbackQuery != nil:
				b.spawn(func() { b.handleCallback(ctx, update.CallbackQuery) })
			}
		}
	}
}

func (b *Bot) spawn(fn func()) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn()
	}()
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	content := message.Text
	if message.Caption != "" {
		content = message.Caption
	}

	replies := b.chat.Handle(ctx, chat.Event{
		SessionID: sessionID(message.Chat.ID),
		Text:      content,
		UserInfo:  userInfo(message.From),
	})
	b.sendReplies(message.Chat.ID, replies)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.sendMessage(message.Chat.ID, welcome)
	case "help":
		b.sendMessage(message.Chat.ID, help)
	case "feedback":
		b.relay(ctx, message.Chat.ID, chat.CommandAskFeedback)
	case "end":
		b.relay(ctx, message.Chat.ID, chat.CommandEndConversation)
	default:
		b.sendMessage(message.Chat.ID, "Commande inconnue. /help pour voir les commandes disponibles.")
	}
}

// handleCallback turns an inline button press into the command it carries.
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn("Failed to answer callback query", zap.Error(err))
	}
	if query.Message == nil || query.Data == "" {
		return
	}
	b.relay(ctx, query.Message.Chat.ID, query.Data)
}

func (b *Bot) relay(ctx context.Context, chatID int64, command string) {
	replies := b.chat.Handle(ctx, chat.Event{SessionID: sessionID(chatID), Text: command})
	b.sendReplies(chatID, replies)
}

func (b *Bot) sendReplies(chatID int64, replies []models.Reply) {
	for _, reply := range replies {
		if strings.TrimSpace(reply.Text) == "" {
			continue
		}
		if _, err := b.api.Send(buildMessage(chatID, reply)); err != nil {
			b.logger.Error("Failed to send reply",
				zap.Error(err),
				zap.Int64("chat_id", chatID))
		}
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram-%d", chatID)
}

func userInfo(from *tgbotapi.User) *models.UserInfo {
	if from == nil {
		return nil
	}
	name := strings.TrimSpace(strings.TrimSpace(from.FirstName) + " " + strings.TrimSpace(from.LastName))
	if name == "" {
		name = from.UserName
	}
	if name == "" {
		return nil
	}
	return &models.UserInfo{Name: name}
}

// buildMessage renders a reply, with its buttons as an inline keyboard.
func buildMessage(chatID int64, reply models.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Buttons) == 0 {
		return msg
	}
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
	for _, button := range reply.Buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(button.Title, button.Payload))
	}
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(row)
	return msg
}
