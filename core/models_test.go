package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("hello"), IDFromContent("hello"))
	})

	t.Run("content sensitive", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("hello"), IDFromContent("hello "))
		assert.NotEqual(t, IDFromContent(""), IDFromContent("a"))
	})
}

func TestIntentLabel_Valid(t *testing.T) {
	for _, label := range IntentLabels {
		assert.True(t, label.Valid(), label)
	}

	assert.False(t, IntentLabel("").Valid())
	assert.False(t, IntentLabel("commercial").Valid())
	assert.False(t, IntentLabel("Informational").Valid())
}

func TestEntityResult_String(t *testing.T) {
	t.Run("found entities join with comma", func(t *testing.T) {
		result := FoundEntities([]Entity{
			{Text: "paris", Type: "location", Confidence: 0.92},
			{Text: "louvre", Type: "organization", Confidence: 0.81},
		})
		assert.Equal(t, "paris (location), louvre (organization)", result.String())
	})

	t.Run("single entity", func(t *testing.T) {
		result := FoundEntities([]Entity{{Text: "2024", Type: "date"}})
		assert.Equal(t, "2024 (date)", result.String())
	})

	t.Run("sentinels", func(t *testing.T) {
		assert.Equal(t, "No specific entities found", NoEntities().String())
		assert.Equal(t, "Error extracting entities", EntityError().String())
	})
}

func TestTopicResult_String(t *testing.T) {
	assert.Equal(t, "/Travel", AssignedTopic("/Travel").String())
	assert.Equal(t, "/Travel , /Sports", AssignedTopic("/Travel , /Sports").String())
	assert.Equal(t, "Error in topic modeling", TopicError().String())
}
