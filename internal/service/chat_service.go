package service

import (
	"fmt"
	"log/slog"
	"time"

	"savant-seeker/backend/internal/curiosity"
	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/store"
)

const (
	defaultChatTitle   = "New Chat"
	temporaryChatTitle = "Temporary Chat"
	chatTitleRunes     = 30
)

// ChatService handles chat lifecycle on top of the chat store.
type ChatService struct {
	store *store.Store
}

func NewChatService(st *store.Store) *ChatService {
	return &ChatService{store: st}
}

// NewChat creates an empty chat titled after prompt and makes it active.
func (s *ChatService) NewChat(prompt string) (model.Chat, error) {
	return createChat(s.store, titleFromPrompt(prompt), false)
}

// NewTemporaryChat creates a chat that is never persisted and makes it active.
func (s *ChatService) NewTemporaryChat() (model.Chat, error) {
	return createChat(s.store, temporaryChatTitle, true)
}

// SelectChat makes chatID the active chat.
func (s *ChatService) SelectChat(chatID string) (model.Chat, error) {
	if err := s.store.Select(chatID); err != nil {
		return model.Chat{}, err
	}
	return s.store.Get(chatID)
}

// DeleteChat removes a chat. Deleting the active chat leaves no chat active.
func (s *ChatService) DeleteChat(chatID string) error {
	slog.Info("Deleting chat", "chat_id", chatID)
	return s.store.Delete(chatID)
}

// ListChats returns all chats, newest first.
func (s *ChatService) ListChats() []model.Chat {
	return s.store.List()
}

func (s *ChatService) GetChat(chatID string) (model.Chat, error) {
	return s.store.Get(chatID)
}

// ActiveChat returns the active chat or ErrNotFound when none is selected.
func (s *ChatService) ActiveChat() (model.Chat, error) {
	chat, ok := s.store.Active()
	if !ok {
		return model.Chat{}, fmt.Errorf("%w: no active chat", app_errors.ErrNotFound)
	}
	return chat, nil
}

// CuriosityLevel scores the user's messages in a chat.
func (s *ChatService) CuriosityLevel(chatID string) (curiosity.Level, error) {
	chat, err := s.store.Get(chatID)
	if err != nil {
		return curiosity.Level{}, err
	}
	return curiosity.Detect(curiosity.Calculate(chat.Messages)), nil
}

func createChat(st *store.Store, title string, temporary bool) (model.Chat, error) {
	prefix := "chat"
	if temporary {
		prefix = "temp-chat"
	}
	chat := model.Chat{
		ID:          model.NewID(prefix),
		Title:       title,
		Messages:    []model.Message{},
		CreatedAt:   time.Now(),
		IsTemporary: temporary,
	}
	if err := st.Create(chat); err != nil {
		return model.Chat{}, err
	}
	slog.Info("Created chat", "chat_id", chat.ID, "temporary", temporary)
	return chat, nil
}

// titleFromPrompt uses the first runes of the prompt, always followed by an
// ellipsis, or a fixed title for an empty prompt.
func titleFromPrompt(prompt string) string {
	if prompt == "" {
		return defaultChatTitle
	}
	return truncate(prompt, chatTitleRunes) + "..."
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
