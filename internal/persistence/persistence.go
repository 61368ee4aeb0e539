// Package persistence mirrors application state into namespaced entries of a
// key-value repository and reads it back at startup.
//
// Every write is best-effort: failures are logged and the in-memory state stays
// authoritative. Every read is independent: a missing or unreadable entry
// yields the default value for that slice only.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/repository"
	"savant-seeker/backend/internal/store"
)

// Entry names, appended to the configured prefix.
const (
	keyUser           = "user"
	keyChats          = "chats"
	keyActiveChat     = "active-chat"
	keyMemories       = "memories"
	keyLifemapEntries = "lifemap-entries"
	keyGoals          = "goals"
)

const writeTimeout = 5 * time.Second

// Snapshot is everything the adapter persists.
type Snapshot struct {
	User           *model.User
	Chats          []model.Chat
	ActiveChatID   string
	Memories       []string
	LifemapEntries []model.LifemapEntry
	Goals          []model.Goal
}

type Adapter struct {
	repo   repository.Repository
	prefix string

	// chatsMu orders chat writes so an older snapshot never overwrites a newer one.
	chatsMu      sync.Mutex
	chatsVersion uint64
}

func NewAdapter(repo repository.Repository, prefix string) *Adapter {
	return &Adapter{repo: repo, prefix: prefix}
}

// Key returns the namespaced repository key for an entry name.
func (a *Adapter) Key(name string) string {
	return a.prefix + name
}

// Load reads every entry independently.
func (a *Adapter) Load(ctx context.Context) Snapshot {
	var snap Snapshot

	var user model.User
	if a.read(ctx, keyUser, &user) {
		snap.User = &user
	}
	a.read(ctx, keyChats, &snap.Chats)
	if raw, ok := a.readRaw(ctx, keyActiveChat); ok {
		snap.ActiveChatID = string(raw)
	}
	a.read(ctx, keyMemories, &snap.Memories)
	a.read(ctx, keyLifemapEntries, &snap.LifemapEntries)
	a.read(ctx, keyGoals, &snap.Goals)

	slog.Debug("Loaded persisted state",
		"has_user", snap.User != nil,
		"chats", len(snap.Chats),
		"memories", len(snap.Memories),
		"lifemap_entries", len(snap.LifemapEntries),
		"goals", len(snap.Goals),
	)
	return snap
}

// SaveUser stores the profile, or removes it when user is nil.
func (a *Adapter) SaveUser(ctx context.Context, user *model.User) {
	if user == nil {
		a.remove(ctx, keyUser)
		return
	}
	a.write(ctx, keyUser, user)
}

// SaveChats stores all non-temporary chats. The active chat id is stored only
// when it names a non-temporary chat; otherwise the entry is removed.
func (a *Adapter) SaveChats(ctx context.Context, chats []model.Chat, activeID string) {
	savable := make([]model.Chat, 0, len(chats))
	activeSavable := false
	for _, c := range chats {
		if c.IsTemporary {
			continue
		}
		savable = append(savable, c)
		if c.ID == activeID {
			activeSavable = true
		}
	}

	a.write(ctx, keyChats, savable)
	if activeSavable {
		a.writeRaw(ctx, keyActiveChat, []byte(activeID))
	} else {
		a.remove(ctx, keyActiveChat)
	}
}

// ChatsChanged mirrors every chat store mutation.
func (a *Adapter) ChatsChanged(snap store.Snapshot) {
	a.chatsMu.Lock()
	defer a.chatsMu.Unlock()
	if snap.Version <= a.chatsVersion {
		return
	}
	a.chatsVersion = snap.Version

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	a.SaveChats(ctx, snap.Chats, snap.ActiveID)
}

func (a *Adapter) SaveMemories(ctx context.Context, memories []string) {
	if memories == nil {
		memories = []string{}
	}
	a.write(ctx, keyMemories, memories)
}

func (a *Adapter) SaveLifemap(ctx context.Context, entries []model.LifemapEntry, goals []model.Goal) {
	if entries == nil {
		entries = []model.LifemapEntry{}
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	a.write(ctx, keyLifemapEntries, entries)
	a.write(ctx, keyGoals, goals)
}

// Clear removes every entry under the prefix, including ones this version
// never wrote.
func (a *Adapter) Clear(ctx context.Context) {
	keys, err := a.repo.Keys(ctx, a.prefix)
	if err != nil {
		slog.Error("Failed to list persisted keys", "prefix", a.prefix, "error", err)
		keys = nil
	}
	for _, name := range []string{keyUser, keyChats, keyActiveChat, keyMemories, keyLifemapEntries, keyGoals} {
		if key := a.Key(name); !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	if err := a.repo.Delete(ctx, keys...); err != nil {
		slog.Error("Failed to clear persisted state", "prefix", a.prefix, "error", err)
	}
}

func (a *Adapter) read(ctx context.Context, name string, dst any) bool {
	raw, ok := a.readRaw(ctx, name)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("Ignoring unreadable persisted entry", "key", a.Key(name), "error", err)
		return false
	}
	return true
}

func (a *Adapter) readRaw(ctx context.Context, name string) ([]byte, bool) {
	raw, err := a.repo.Get(ctx, a.Key(name))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("Failed to load persisted entry", "key", a.Key(name), "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (a *Adapter) write(ctx context.Context, name string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("Failed to encode entry for persistence", "key", a.Key(name), "error", err)
		return
	}
	a.writeRaw(ctx, name, raw)
}

func (a *Adapter) writeRaw(ctx context.Context, name string, raw []byte) {
	if err := a.repo.Set(ctx, a.Key(name), raw); err != nil {
		slog.Error("Failed to save entry", "key", a.Key(name), "error", err)
	}
}

func (a *Adapter) remove(ctx context.Context, name string) {
	if err := a.repo.Delete(ctx, a.Key(name)); err != nil {
		slog.Error("Failed to remove entry", "key", a.Key(name), "error", err)
	}
}
