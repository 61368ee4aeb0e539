package model

import (
	"slices"
	"time"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// User is the locally signed-in profile.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Citation is a web source the model consulted while answering.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Message stores a single message in a chat.
type Message struct {
	ID              string     `json:"id"`
	Role            Role       `json:"role"`
	Content         string     `json:"content"`
	Timestamp       time.Time  `json:"timestamp"`
	Citations       []Citation `json:"grounding_metadata,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`         // Data URI of the attached image.
	GeneratedImages []string   `json:"generated_images,omitempty"` // Data URIs produced by image generation.
}

// Chat is a conversation thread with its messages.
type Chat struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Messages    []Message `json:"messages"`
	CreatedAt   time.Time `json:"created_at"`
	IsTemporary bool      `json:"is_temporary,omitempty"`
}

// Clone returns a deep copy so callers can never mutate store-owned data.
func (c Chat) Clone() Chat {
	out := c
	out.Messages = make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		out.Messages[i] = m.Clone()
	}
	return out
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	out := m
	out.Citations = slices.Clone(m.Citations)
	out.GeneratedImages = slices.Clone(m.GeneratedImages)
	return out
}

// LastMessage returns the most recent message, if any.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// LifemapEntryType classifies a lifemap journal entry.
type LifemapEntryType string

const (
	EntryCheckIn     LifemapEntryType = "check-in"
	EntryNote        LifemapEntryType = "note"
	EntryGoalCreated LifemapEntryType = "goal-created"
	EntryGoalUpdate  LifemapEntryType = "goal-update"
)

// LifemapEntry is a timestamped journal record.
type LifemapEntry struct {
	ID            string           `json:"id"`
	Timestamp     time.Time        `json:"timestamp"`
	Type          LifemapEntryType `json:"type"`
	Content       string           `json:"content"`
	Mood          string           `json:"mood,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	RelatedGoalID string           `json:"related_goal_id,omitempty"`
}

// GoalStatus is one of active, completed or archived.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalArchived  GoalStatus = "archived"
)

// Valid reports whether s is a known goal status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalArchived:
		return true
	}
	return false
}

// Goal is a user-defined objective tracked in the lifemap.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      GoalStatus `json:"status"`
}

// StreamEvent is a single update sent to clients while a message is being generated.
type StreamEvent struct {
	ChatID  string   `json:"chat_id"`
	Message *Message `json:"message,omitempty"`
	Done    bool     `json:"done"`
	Error   string   `json:"error,omitempty"`
}
