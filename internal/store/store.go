// Package store is the in-memory collection of chat sessions.
//
// Chats live in a map keyed by id with a separate ordering slice (newest first),
// so appending a chunk to one message never rebuilds the whole list. Every
// mutation bumps a store-wide version and hands a deep-copied Snapshot to the
// registered listeners, in version order.
package store

import (
	"fmt"
	"slices"
	"sync"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
)

// Snapshot is an immutable view of the store after a mutation.
type Snapshot struct {
	Version  uint64
	Chats    []model.Chat
	ActiveID string
}

// Listener observes every change to the store.
type Listener interface {
	ChatsChanged(snap Snapshot)
}

type Store struct {
	mu       sync.RWMutex
	chats    map[string]*model.Chat
	order    []string
	activeID string
	version  uint64

	notifyMu     sync.Mutex
	listeners    []Listener
	lastNotified uint64
}

func New() *Store {
	return &Store{chats: make(map[string]*model.Chat)}
}

// AddListener registers l for all future changes.
func (s *Store) AddListener(l Listener) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Create prepends chat to the list and makes it the active chat.
func (s *Store) Create(chat model.Chat) error {
	s.mu.Lock()
	if _, exists := s.chats[chat.ID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: chat %s already exists", app_errors.ErrConflict, chat.ID)
	}
	c := chat.Clone()
	s.chats[c.ID] = &c
	s.order = slices.Insert(s.order, 0, c.ID)
	s.activeID = c.ID
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Select changes the active pointer only.
func (s *Store) Select(chatID string) error {
	s.mu.Lock()
	if _, ok := s.chats[chatID]; !ok {
		s.mu.Unlock()
		return chatNotFound(chatID)
	}
	s.activeID = chatID
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Delete removes a chat. Deleting the active chat clears the active pointer;
// another chat is never selected in its place.
func (s *Store) Delete(chatID string) error {
	s.mu.Lock()
	if _, ok := s.chats[chatID]; !ok {
		s.mu.Unlock()
		return chatNotFound(chatID)
	}
	delete(s.chats, chatID)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == chatID })
	if s.activeID == chatID {
		s.activeID = ""
	}
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Get returns a copy of the chat.
func (s *Store) Get(chatID string) (model.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok {
		return model.Chat{}, chatNotFound(chatID)
	}
	return c.Clone(), nil
}

// List returns copies of all chats, newest first.
func (s *Store) List() []model.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked()
}

// ActiveID returns the active chat id or "" when none is selected.
func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Active returns a copy of the active chat.
func (s *Store) Active() (model.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[s.activeID]
	if !ok {
		return model.Chat{}, false
	}
	return c.Clone(), true
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// AppendMessage adds msg to the end of the chat's message list.
func (s *Store) AppendMessage(chatID string, msg model.Message) error {
	s.mu.Lock()
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return chatNotFound(chatID)
	}
	c.Messages = append(c.Messages, msg.Clone())
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// UpdateMessage applies fn to the message in place and returns the result.
func (s *Store) UpdateMessage(chatID, messageID string, fn func(*model.Message)) (model.Message, error) {
	s.mu.Lock()
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return model.Message{}, chatNotFound(chatID)
	}
	idx := slices.IndexFunc(c.Messages, func(m model.Message) bool { return m.ID == messageID })
	if idx < 0 {
		s.mu.Unlock()
		return model.Message{}, fmt.Errorf("%w: message %s in chat %s", app_errors.ErrNotFound, messageID, chatID)
	}
	fn(&c.Messages[idx])
	updated := c.Messages[idx].Clone()
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return updated, nil
}

// Truncate keeps only the first n messages of the chat.
func (s *Store) Truncate(chatID string, n int) error {
	s.mu.Lock()
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return chatNotFound(chatID)
	}
	if n < 0 || n > len(c.Messages) {
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot keep %d of %d messages", app_errors.ErrValidation, n, len(c.Messages))
	}
	c.Messages = slices.Clip(c.Messages[:n])
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Replace swaps the whole contents, typically with state loaded from
// persistence. An activeID that names no chat is dropped.
func (s *Store) Replace(chats []model.Chat, activeID string) {
	s.mu.Lock()
	s.chats = make(map[string]*model.Chat, len(chats))
	s.order = make([]string, 0, len(chats))
	for _, chat := range chats {
		if _, dup := s.chats[chat.ID]; dup {
			continue
		}
		c := chat.Clone()
		s.chats[c.ID] = &c
		s.order = append(s.order, c.ID)
	}
	s.activeID = ""
	if _, ok := s.chats[activeID]; ok {
		s.activeID = activeID
	}
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Reset empties the store.
func (s *Store) Reset() {
	s.Replace(nil, "")
}

func (s *Store) listLocked() []model.Chat {
	out := make([]model.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.chats[id].Clone())
	}
	return out
}

func (s *Store) commitLocked() Snapshot {
	s.version++
	return Snapshot{Version: s.version, Chats: s.listLocked(), ActiveID: s.activeID}
}

// notify delivers snap unless a newer snapshot was already delivered.
func (s *Store) notify(snap Snapshot) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if snap.Version <= s.lastNotified {
		return
	}
	s.lastNotified = snap.Version
	for _, l := range s.listeners {
		l.ChatsChanged(snap)
	}
}

func chatNotFound(chatID string) error {
	return fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
}
