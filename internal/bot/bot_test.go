package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expobetonrdc/expo-bot/internal/models"
)

func TestSessionID(t *testing.T) {
	assert.Equal(t, "telegram-42", sessionID(42))
	assert.Equal(t, "telegram--1001", sessionID(-1001))
}

func TestUserInfo(t *testing.T) {
	assert.Nil(t, userInfo(nil))
	assert.Nil(t, userInfo(&tgbotapi.User{}))
	assert.Equal(t, &models.UserInfo{Name: "Amani Kabila"}, userInfo(&tgbotapi.User{FirstName: "Amani", LastName: "Kabila"}))
	assert.Equal(t, &models.UserInfo{Name: "Amani"}, userInfo(&tgbotapi.User{FirstName: " Amani "}))
	assert.Equal(t, &models.UserInfo{Name: "amani_k"}, userInfo(&tgbotapi.User{UserName: "amani_k"}))
}

func TestBuildMessage(t *testing.T) {
	plain := buildMessage(7, models.Reply{Text: "Bonjour"})
	assert.Equal(t, int64(7), plain.ChatID)
	assert.Equal(t, "Bonjour", plain.Text)
	assert.Nil(t, plain.ReplyMarkup)

	withButtons := buildMessage(7, models.Reply{
		Text: "Votre avis?",
		Buttons: []models.Button{
			{Title: "👍 Excellent", Payload: "/SetSlots(feedback_rating=thumbs_up)"},
			{Title: "👎 Peut être amélioré", Payload: "/SetSlots(feedback_rating=thumbs_down)"},
		},
	})
	markup, ok := withButtons.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "👍 Excellent", markup.InlineKeyboard[0][0].Text)
	require.NotNil(t, markup.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, "/SetSlots(feedback_rating=thumbs_down)", *markup.InlineKeyboard[0][1].CallbackData)
}
