package curiosity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"savant-seeker/backend/internal/curiosity"
	"savant-seeker/backend/internal/model"
)

func TestDetect(t *testing.T) {
	t.Run("No activity", func(t *testing.T) {
		level := curiosity.Detect(curiosity.Stats{})
		assert.Equal(t, 0.0, level.Score)
		assert.Equal(t, 0.0, level.Percentage)
		assert.Equal(t, "Start chatting to measure!", level.Text)
	})

	t.Run("Balanced activity saturates the meter", func(t *testing.T) {
		level := curiosity.Detect(curiosity.Stats{Questions: 4, DeepThoughts: 4})
		assert.InDelta(t, 14.8, level.Score, 1e-9)
		assert.Equal(t, 100.0, level.Percentage)
		assert.Equal(t, "Ultra Curious!", level.Text)
	})

	t.Run("Imbalance divides the score", func(t *testing.T) {
		level := curiosity.Detect(curiosity.Stats{Questions: 3, DeepThoughts: 1})
		// (4.5 + 2.2) / 3
		assert.InDelta(t, 6.7/3, level.Score, 1e-9)
		assert.InDelta(t, 6.7/3/10*100, level.Percentage, 1e-9)
		assert.Equal(t, "Mild Curiosity...", level.Text)
	})

	t.Run("Pretty curious band", func(t *testing.T) {
		level := curiosity.Detect(curiosity.Stats{Questions: 2, DeepThoughts: 2})
		assert.InDelta(t, 7.4, level.Score, 1e-9)
		assert.Equal(t, "Pretty Curious!", level.Text)
	})

	t.Run("Negative counts are invalid", func(t *testing.T) {
		level := curiosity.Detect(curiosity.Stats{Questions: -1})
		assert.Equal(t, "Invalid input", level.Text)
		assert.Zero(t, level.Score)
	})
}

func TestCalculate(t *testing.T) {
	long := strings.Repeat("a", 121)
	messages := []model.Message{
		{Role: model.RoleUser, Content: "What is Go? "},
		{Role: model.RoleAssistant, Content: "A language?"},
		{Role: model.RoleUser, Content: long},
		{Role: model.RoleUser, Content: long + "?"},
		{Role: model.RoleUser, Content: ""},
		{Role: model.RoleUser, Content: strings.Repeat("b", 120)},
	}

	stats := curiosity.Calculate(messages)
	assert.Equal(t, curiosity.Stats{Questions: 2, DeepThoughts: 2}, stats)
}
