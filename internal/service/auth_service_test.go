package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		h := setupServices(t)

		user, err := h.auth.Login(ctx, "ada.lovelace@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "Ada.lovelace", user.Name)
		assert.Equal(t, "ada.lovelace@example.com", user.Email)
		assert.Equal(t, "https://api.dicebear.com/8.x/initials/svg?seed=Ada.lovelace", user.Picture)

		current, err := h.auth.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, user, current)

		restored := setupServicesWithRepo(t, h.repo)
		restored.auth.Restore(ctx)
		current, err = restored.auth.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, user, current)
	})

	t.Run("Failure - Missing credentials", func(t *testing.T) {
		h := setupServices(t)

		_, err := h.auth.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		_, err = h.auth.Login(ctx, "ada@example.com", "")
		assert.ErrorIs(t, err, app_errors.ErrValidation)

		_, err = h.auth.CurrentUser()
		assert.ErrorIs(t, err, app_errors.ErrUnauthenticated)
	})
}

func TestAuthService_RestoreSkipsTemporaryChats(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)

	saved, err := h.chats.NewChat("keep me")
	require.NoError(t, err)
	require.NoError(t, h.store.AppendMessage(saved.ID, model.Message{ID: "msg-1", Role: model.RoleUser, Content: "hello"}))
	temp, err := h.chats.NewTemporaryChat()
	require.NoError(t, err)
	h.memories.Add(ctx, "likes tea")
	_, err = h.lifemap.AddGoal(ctx, service.NewGoal{Title: "Run a marathon"})
	require.NoError(t, err)

	// Reload into a fresh process.
	restored := setupServicesWithRepo(t, h.repo)
	restored.auth.Restore(ctx)

	chats := restored.chats.ListChats()
	require.Len(t, chats, 1)
	assert.Equal(t, saved.ID, chats[0].ID)
	assert.Equal(t, "hello", chats[0].Messages[0].Content)
	_, err = restored.chats.GetChat(temp.ID)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	_, err = restored.chats.ActiveChat()
	assert.ErrorIs(t, err, app_errors.ErrNotFound, "the temporary chat was active")

	assert.Equal(t, []string{"likes tea"}, restored.memories.List())
	require.Len(t, restored.lifemap.Goals(), 1)
	assert.Equal(t, "Run a marathon", restored.lifemap.Goals()[0].Title)
}

func TestAuthService_LogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)

	_, err := h.auth.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	_, err = h.chats.NewChat("hello")
	require.NoError(t, err)
	h.memories.Add(ctx, "likes tea")
	_, err = h.lifemap.AddEntry(ctx, service.NewLifemapEntry{Type: model.EntryNote, Content: "good day"})
	require.NoError(t, err)
	require.NoError(t, h.settings.Save(service.Settings{Personality: "hacker", Mood: "bored"}))
	require.NoError(t, h.repo.Set(ctx, testPrefix+"legacy-key", []byte(`{}`)))
	require.NoError(t, h.repo.Set(ctx, "other-app-key", []byte(`{}`)))

	h.auth.Logout(ctx)

	_, err = h.auth.CurrentUser()
	assert.ErrorIs(t, err, app_errors.ErrUnauthenticated)
	assert.Empty(t, h.chats.ListChats())
	assert.Empty(t, h.store.ActiveID())
	assert.Empty(t, h.memories.List())
	assert.Empty(t, h.lifemap.Entries())
	assert.Equal(t, service.Settings{Personality: "default"}, h.settings.Get())

	keys, err := h.repo.Keys(ctx, testPrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)
	keys, err = h.repo.Keys(ctx, "other-")
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	snap := h.adapter.Load(ctx)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Chats)
	assert.Empty(t, snap.ActiveChatID)
	assert.Empty(t, snap.Memories)
}
