package entities

import (
	"context"
	"errors"
	"testing"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/ai/mock"
	"github.com/jeredhiggins/keyintent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapter(t *testing.T) {
	t.Run("valid extractor", func(t *testing.T) {
		adapter, err := NewAdapter(mock.NewMockEntityExtractor())
		require.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("nil extractor", func(t *testing.T) {
		_, err := NewAdapter(nil)
		assert.Equal(t, ErrExtractorRequired, err)
	})
}

func TestExtract_Found(t *testing.T) {
	extractor := mock.NewMockEntityExtractor()
	extractor.ExtractEntitiesFunc = func(ctx context.Context, text string) ([]ai.ExtractedEntity, error) {
		return []ai.ExtractedEntity{
			{Text: "nike", Type: "organization", Confidence: 0.95},
			{Text: "running shoes", Type: "product", Confidence: 0.85},
		}, nil
	}

	adapter, err := NewAdapter(extractor)
	require.NoError(t, err)

	result := adapter.Extract(context.Background(), "nike running shoes")
	require.Equal(t, core.EntitiesFound, result.Outcome)
	require.Len(t, result.Entities, 2)

	// Model output order is preserved; rendering joins "text (type)" pairs.
	assert.Equal(t, "nike", result.Entities[0].Text)
	assert.Equal(t, "nike (organization), running shoes (product)", result.String())
}

func TestExtract_NoneIsNotError(t *testing.T) {
	extractor := mock.NewMockEntityExtractor()
	extractor.ExtractEntitiesFunc = func(ctx context.Context, text string) ([]ai.ExtractedEntity, error) {
		return nil, nil
	}

	adapter, err := NewAdapter(extractor)
	require.NoError(t, err)

	result := adapter.Extract(context.Background(), "how to apologize")
	assert.Equal(t, core.EntitiesNone, result.Outcome)
	assert.Equal(t, core.NoEntitiesMessage, result.String())

	// The two sentinels must stay distinguishable.
	assert.NotEqual(t, core.EntityError().Outcome, result.Outcome)
}

func TestExtract_FailureDegradesToSentinel(t *testing.T) {
	extractor := mock.NewMockEntityExtractor()
	extractor.ExtractEntitiesFunc = func(ctx context.Context, text string) ([]ai.ExtractedEntity, error) {
		return nil, errors.New("model unavailable")
	}

	adapter, err := NewAdapter(extractor)
	require.NoError(t, err)

	// Must not panic or return an error; the failure becomes a sentinel.
	result := adapter.Extract(context.Background(), "anything")
	assert.Equal(t, core.EntitiesError, result.Outcome)
	assert.Equal(t, core.EntityErrorMessage, result.String())
}
