package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/persistence"
	"savant-seeker/backend/internal/repository"
	"savant-seeker/backend/internal/store"
)

const prefix = "savant-"

func TestAdapter_LoadEmptyYieldsDefaults(t *testing.T) {
	adapter := persistence.NewAdapter(repository.NewMemoryRepository(), prefix)

	snap := adapter.Load(context.Background())
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Chats)
	assert.Empty(t, snap.ActiveChatID)
	assert.Empty(t, snap.Memories)
	assert.Empty(t, snap.LifemapEntries)
	assert.Empty(t, snap.Goals)
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := persistence.NewAdapter(repository.NewMemoryRepository(), prefix)
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	user := &model.User{Name: "Ada", Email: "ada@example.com"}
	chats := []model.Chat{{ID: "chat-1", Title: "Hello", CreatedAt: now}}
	entries := []model.LifemapEntry{{ID: "entry-1", Timestamp: now, Type: model.EntryNote, Content: "walked"}}
	goals := []model.Goal{{ID: "goal-1", Title: "Run", CreatedAt: now, Status: model.GoalActive}}

	adapter.SaveUser(ctx, user)
	adapter.SaveChats(ctx, chats, "chat-1")
	adapter.SaveMemories(ctx, []string{"likes tea"})
	adapter.SaveLifemap(ctx, entries, goals)

	snap := adapter.Load(ctx)
	assert.Equal(t, user, snap.User)
	assert.Equal(t, chats, snap.Chats)
	assert.Equal(t, "chat-1", snap.ActiveChatID)
	assert.Equal(t, []string{"likes tea"}, snap.Memories)
	assert.Equal(t, entries, snap.LifemapEntries)
	assert.Equal(t, goals, snap.Goals)

	adapter.SaveUser(ctx, nil)
	assert.Nil(t, adapter.Load(ctx).User)
}

func TestAdapter_TemporaryChatsAreNeverPersisted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	adapter := persistence.NewAdapter(repo, prefix)

	chats := store.New()
	chats.AddListener(adapter)
	require.NoError(t, chats.Create(model.Chat{ID: "chat-1", Title: "Kept"}))
	require.NoError(t, chats.Create(model.Chat{ID: "temp-chat-1", Title: "Temporary Chat", IsTemporary: true}))

	// Reload simulation: drop in-memory state, then load.
	reloaded := store.New()
	snap := adapter.Load(ctx)
	reloaded.Replace(snap.Chats, snap.ActiveChatID)

	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "chat-1", reloaded.List()[0].ID)
	assert.Empty(t, snap.ActiveChatID, "a temporary active chat is not persisted")

	require.NoError(t, chats.Select("chat-1"))
	assert.Equal(t, "chat-1", adapter.Load(ctx).ActiveChatID)
}

func TestAdapter_StaleSnapshotsAreIgnored(t *testing.T) {
	ctx := context.Background()
	adapter := persistence.NewAdapter(repository.NewMemoryRepository(), prefix)

	adapter.ChatsChanged(store.Snapshot{Version: 2, Chats: []model.Chat{{ID: "new"}}})
	adapter.ChatsChanged(store.Snapshot{Version: 1, Chats: []model.Chat{{ID: "old"}}})

	snap := adapter.Load(ctx)
	require.Len(t, snap.Chats, 1)
	assert.Equal(t, "new", snap.Chats[0].ID)
}

func TestAdapter_ClearRemovesEveryNamespacedEntry(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	adapter := persistence.NewAdapter(repo, prefix)

	adapter.SaveUser(ctx, &model.User{Name: "Ada"})
	adapter.SaveChats(ctx, []model.Chat{{ID: "chat-1"}}, "chat-1")
	adapter.SaveMemories(ctx, []string{"x"})
	require.NoError(t, repo.Set(ctx, "savant-legacy-theme", []byte(`"dark"`)))
	require.NoError(t, repo.Set(ctx, "unrelated", []byte(`1`)))

	adapter.Clear(ctx)

	keys, err := repo.Keys(ctx, prefix)
	require.NoError(t, err)
	assert.Empty(t, keys)
	_, err = repo.Get(ctx, "unrelated")
	assert.NoError(t, err)
}

func TestAdapter_CorruptEntryOnlyAffectsItself(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	adapter := persistence.NewAdapter(repo, prefix)

	require.NoError(t, repo.Set(ctx, adapter.Key("chats"), []byte(`{not json`)))
	adapter.SaveMemories(ctx, []string{"still here"})

	snap := adapter.Load(ctx)
	assert.Empty(t, snap.Chats)
	assert.Equal(t, []string{"still here"}, snap.Memories)
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) ([]byte, error) { return nil, errors.New("quota exceeded") }
func (failingRepo) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }
func (failingRepo) Delete(context.Context, ...string) error { return errors.New("quota exceeded") }
func (failingRepo) Keys(context.Context, string) ([]string, error) {
	return nil, errors.New("quota exceeded")
}

func TestAdapter_FailuresAreNeverFatal(t *testing.T) {
	ctx := context.Background()
	adapter := persistence.NewAdapter(failingRepo{}, prefix)

	assert.NotPanics(t, func() {
		adapter.SaveUser(ctx, &model.User{Name: "Ada"})
		adapter.SaveChats(ctx, []model.Chat{{ID: "chat-1"}}, "chat-1")
		adapter.SaveMemories(ctx, nil)
		adapter.SaveLifemap(ctx, nil, nil)
		adapter.Clear(ctx)
	})
	snap := adapter.Load(ctx)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Chats)
}
