package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
)

func TestChatService_NewChat(t *testing.T) {
	h := setupServices(t)

	t.Run("Titled from prompt", func(t *testing.T) {
		chat, err := h.chats.NewChat("Plan a weekend trip to the mountains")
		require.NoError(t, err)
		assert.Equal(t, "Plan a weekend trip to the mou...", chat.Title)
		assert.True(t, strings.HasPrefix(chat.ID, "chat-"))
		assert.Equal(t, chat.ID, h.store.ActiveID())
	})

	t.Run("Short prompt still gets an ellipsis", func(t *testing.T) {
		chat, err := h.chats.NewChat("Hi")
		require.NoError(t, err)
		assert.Equal(t, "Hi...", chat.Title)
	})

	t.Run("Empty prompt", func(t *testing.T) {
		chat, err := h.chats.NewChat("")
		require.NoError(t, err)
		assert.Equal(t, "New Chat", chat.Title)
	})

	chats := h.chats.ListChats()
	require.Len(t, chats, 3)
	assert.Equal(t, "New Chat", chats[0].Title, "newest chat first")
}

func TestChatService_NewTemporaryChat(t *testing.T) {
	h := setupServices(t)

	chat, err := h.chats.NewTemporaryChat()
	require.NoError(t, err)
	assert.Equal(t, "Temporary Chat", chat.Title)
	assert.True(t, chat.IsTemporary)
	assert.True(t, strings.HasPrefix(chat.ID, "temp-chat-"))

	active, err := h.chats.ActiveChat()
	require.NoError(t, err)
	assert.Equal(t, chat.ID, active.ID)
}

func TestChatService_SelectAndDelete(t *testing.T) {
	h := setupServices(t)
	first, err := h.chats.NewChat("first")
	require.NoError(t, err)
	second, err := h.chats.NewChat("second")
	require.NoError(t, err)

	selected, err := h.chats.SelectChat(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, selected.ID)

	_, err = h.chats.SelectChat("chat-missing")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	t.Run("Deleting an inactive chat keeps the active one", func(t *testing.T) {
		require.NoError(t, h.chats.DeleteChat(second.ID))
		active, err := h.chats.ActiveChat()
		require.NoError(t, err)
		assert.Equal(t, first.ID, active.ID)
	})

	t.Run("Deleting the active chat leaves none active", func(t *testing.T) {
		third, err := h.chats.NewChat("third")
		require.NoError(t, err)

		require.NoError(t, h.chats.DeleteChat(third.ID))
		_, err = h.chats.ActiveChat()
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
		assert.Len(t, h.chats.ListChats(), 1)
	})

	assert.ErrorIs(t, h.chats.DeleteChat("chat-missing"), app_errors.ErrNotFound)
}

func TestChatService_CuriosityLevel(t *testing.T) {
	h := setupServices(t)
	chat, err := h.chats.NewChat("")
	require.NoError(t, err)

	level, err := h.chats.CuriosityLevel(chat.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, level.Score)
	assert.Equal(t, "Start chatting to measure!", level.Text)

	for i := range 4 {
		require.NoError(t, h.store.AppendMessage(chat.ID, model.Message{
			ID:      model.NewID("msg"),
			Role:    model.RoleUser,
			Content: strings.Repeat("why does this happen ", 6+i) + "?",
		}))
	}
	level, err = h.chats.CuriosityLevel(chat.ID)
	require.NoError(t, err)
	assert.InDelta(t, 14.8, level.Score, 1e-9)
	assert.Equal(t, 100.0, level.Percentage)

	_, err = h.chats.CuriosityLevel("chat-missing")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}
