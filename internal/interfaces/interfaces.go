package interfaces

import (
	"context"
	"time"

	"savant-seeker/backend/internal/curiosity"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these instead of the concrete services so that
// handlers can be tested against mocks.

// ChatService defines the contract for chat lifecycle logic.
type ChatService interface {
	NewChat(prompt string) (model.Chat, error)
	NewTemporaryChat() (model.Chat, error)
	SelectChat(chatID string) (model.Chat, error)
	DeleteChat(chatID string) error
	ListChats() []model.Chat
	GetChat(chatID string) (model.Chat, error)
	ActiveChat() (model.Chat, error)
	CuriosityLevel(chatID string) (curiosity.Level, error)
}

// SessionController defines the contract for running generations.
type SessionController interface {
	SendMessage(ctx context.Context, req *service.SendMessageRequest, events chan<- model.StreamEvent) error
	Regenerate(ctx context.Context, events chan<- model.StreamEvent) error
	StopGeneration() bool
	State() service.GenerationState
}

// SettingsService defines the contract for the conversation presets.
type SettingsService interface {
	Get() service.Settings
	Save(settings service.Settings) error
	Presets() service.Presets
}

// MemoryService defines the contract for the memory vault.
type MemoryService interface {
	List() []string
	Add(ctx context.Context, fact string) []string
	Delete(ctx context.Context, index int) ([]string, error)
	Replace(ctx context.Context, memories []string) []string
}

// LifemapService defines the contract for journal entries and goals.
type LifemapService interface {
	Entries() []model.LifemapEntry
	Goals() []model.Goal
	AddEntry(ctx context.Context, in service.NewLifemapEntry) (model.LifemapEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	AddGoal(ctx context.Context, in service.NewGoal) (model.Goal, error)
	UpdateGoal(ctx context.Context, goal model.Goal) (model.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
	Export(now time.Time) (string, []byte, error)
	DeleteAll(ctx context.Context)
}

// AuthService defines the contract for the local sign-in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Logout(ctx context.Context)
	CurrentUser() (model.User, error)
}
