package service

import (
	"fmt"
	"slices"
	"sync"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/persona"
)

// Settings are the conversation presets applied to every request.
// An empty Mood means no mood; a request may still pick its own.
type Settings struct {
	Personality string `json:"personality"`
	Mood        string `json:"mood"`
}

// Presets lists every selectable personality and mood.
type Presets struct {
	Personalities []persona.Personality `json:"personalities"`
	Moods         []persona.Mood        `json:"moods"`
}

type SettingsService struct {
	mu       sync.RWMutex
	settings Settings
}

func NewSettingsService() *SettingsService {
	return &SettingsService{settings: defaultSettings()}
}

func (s *SettingsService) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Save validates both presets before replacing the current settings.
func (s *SettingsService) Save(settings Settings) error {
	if !slices.Contains(personalityKeys(), settings.Personality) {
		return fmt.Errorf("%w: unknown personality '%s'", app_errors.ErrValidation, settings.Personality)
	}
	if err := validateMood(settings.Mood); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

func (s *SettingsService) Presets() Presets {
	return Presets{Personalities: persona.Personalities(), Moods: persona.Moods()}
}

// Reset restores the default personality and clears the mood.
func (s *SettingsService) Reset() {
	s.mu.Lock()
	s.settings = defaultSettings()
	s.mu.Unlock()
}

func defaultSettings() Settings {
	return Settings{Personality: persona.DefaultPersonality}
}

func validateMood(mood string) error {
	if mood == "" {
		return nil
	}
	keys := make([]string, 0, len(persona.Moods()))
	for _, m := range persona.Moods() {
		keys = append(keys, m.Key)
	}
	if !slices.Contains(keys, mood) {
		return fmt.Errorf("%w: unknown mood '%s'", app_errors.ErrValidation, mood)
	}
	return nil
}

func personalityKeys() []string {
	presets := persona.Personalities()
	keys := make([]string, len(presets))
	for i, p := range presets {
		keys[i] = p.Key
	}
	return keys
}
