// Package curiosity scores how inquisitive the user has been in a chat.
package curiosity

import (
	"math"
	"strings"
	"unicode/utf8"

	"savant-seeker/backend/internal/model"
)

// deepThoughtLength is the rune count above which a user message counts as a deep thought.
const deepThoughtLength = 120

// scaleMax is the score that fills the meter; it matches the "Ultra Curious!" threshold.
const scaleMax = 10.0

// Stats are the raw counts the score is computed from.
type Stats struct {
	Questions    int `json:"questions"`
	DeepThoughts int `json:"deep_thoughts"`
}

// Level is the displayable result.
type Level struct {
	Emoji      string  `json:"emoji"`
	Text       string  `json:"text"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// Detect converts stats into a level:
//
//	score = (questions*1.5 + deepThoughts*2.2) / (1 + |questions - deepThoughts|)
//
// and the percentage is score/10 capped at 100.
func Detect(s Stats) Level {
	if s.Questions < 0 || s.DeepThoughts < 0 {
		return Level{Emoji: "🤔", Text: "Invalid input"}
	}
	if s.Questions == 0 && s.DeepThoughts == 0 {
		return Level{Emoji: "⚪", Text: "Start chatting to measure!"}
	}

	q, d := float64(s.Questions), float64(s.DeepThoughts)
	score := (q*1.5 + d*2.2) / (1 + math.Abs(q-d))
	percentage := math.Min(score/scaleMax*100, 100)

	switch {
	case score > 10:
		return Level{Emoji: "🔥", Text: "Ultra Curious!", Score: score, Percentage: percentage}
	case score > 5:
		return Level{Emoji: "🙂", Text: "Pretty Curious!", Score: score, Percentage: percentage}
	default:
		return Level{Emoji: "🧐", Text: "Mild Curiosity...", Score: score, Percentage: percentage}
	}
}

// Calculate counts questions and deep thoughts among non-empty user messages.
func Calculate(messages []model.Message) Stats {
	var s Stats
	for _, m := range messages {
		if m.Role != model.RoleUser || m.Content == "" {
			continue
		}
		if strings.HasSuffix(strings.TrimSpace(m.Content), "?") {
			s.Questions++
		}
		if utf8.RuneCountInString(m.Content) > deepThoughtLength {
			s.DeepThoughts++
		}
	}
	return s
}
