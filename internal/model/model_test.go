package model_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"savant-seeker/backend/internal/model"
)

func TestNewID_IsPrefixedAndOrdered(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = model.NewID("msg")
	}

	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id, "msg-"))
	}
	assert.True(t, sort.StringsAreSorted(ids), "ids must sort in creation order")
}

func TestChat_CloneIsDeep(t *testing.T) {
	original := model.Chat{
		ID: "chat-1",
		Messages: []model.Message{{
			ID:              "msg-1",
			Citations:       []model.Citation{{URI: "https://a"}},
			GeneratedImages: []string{"data:image/jpeg;base64,AA=="},
		}},
	}

	clone := original.Clone()
	clone.Messages[0].Content = "changed"
	clone.Messages[0].Citations[0].URI = "https://b"
	clone.Messages[0].GeneratedImages[0] = "other"

	assert.Empty(t, original.Messages[0].Content)
	assert.Equal(t, "https://a", original.Messages[0].Citations[0].URI)
	assert.Equal(t, "data:image/jpeg;base64,AA==", original.Messages[0].GeneratedImages[0])
}

func TestGoalStatus_Valid(t *testing.T) {
	assert.True(t, model.GoalActive.Valid())
	assert.True(t, model.GoalCompleted.Valid())
	assert.True(t, model.GoalArchived.Valid())
	assert.False(t, model.GoalStatus("paused").Valid())
}
