package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/persistence"
	"savant-seeker/backend/internal/store"
)

const avatarURL = "https://api.dicebear.com/8.x/initials/svg?seed="

// AuthService owns the local sign-in and the lifecycle of all session state.
type AuthService struct {
	store    *store.Store
	adapter  *persistence.Adapter
	session  *SessionController
	settings *SettingsService
	memories *MemoryService
	lifemap  *LifemapService

	mu   sync.RWMutex
	user *model.User
}

func NewAuthService(
	st *store.Store,
	adapter *persistence.Adapter,
	session *SessionController,
	settings *SettingsService,
	memories *MemoryService,
	lifemap *LifemapService,
) *AuthService {
	return &AuthService{
		store:    st,
		adapter:  adapter,
		session:  session,
		settings: settings,
		memories: memories,
		lifemap:  lifemap,
	}
}

// Login signs in locally. Any non-empty credentials are accepted; the display
// name is the capitalized local part of the email.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: email and password are required", app_errors.ErrValidation)
	}

	name := capitalize(strings.SplitN(email, "@", 2)[0])
	user := model.User{
		Name:    name,
		Email:   email,
		Picture: avatarURL + url.QueryEscape(name),
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.adapter.SaveUser(ctx, &user)
	slog.Info("User logged in", "email", email)
	return user, nil
}

// Logout stops any generation, then clears the chats, memories, lifemap,
// settings and every persisted entry.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.StopGeneration()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.store.Reset()
	s.memories.restore(nil)
	s.lifemap.restore(nil, nil)
	s.settings.Reset()
	s.adapter.Clear(ctx)
	slog.Info("User logged out")
}

// CurrentUser returns the signed-in user or ErrUnauthenticated.
func (s *AuthService) CurrentUser() (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, app_errors.ErrUnauthenticated
	}
	return *s.user, nil
}

// Restore loads the persisted state into memory. It is called once at startup.
func (s *AuthService) Restore(ctx context.Context) {
	snap := s.adapter.Load(ctx)

	s.mu.Lock()
	s.user = snap.User
	s.mu.Unlock()

	s.store.Replace(snap.Chats, snap.ActiveChatID)
	s.memories.restore(snap.Memories)
	s.lifemap.restore(snap.LifemapEntries, snap.Goals)
	slog.Info("Restored persisted state", "chats", len(snap.Chats), "signed_in", snap.User != nil)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
