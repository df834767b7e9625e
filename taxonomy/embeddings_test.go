package taxonomy

import (
	"context"
	"testing"

	"github.com/jeredhiggins/keyintent/ai/mock"
	badgerstore "github.com/jeredhiggins/keyintent/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmbeddingSet(t *testing.T) {
	ctx := context.Background()
	embedder := mock.NewMockEmbedder()
	categories := []string{"/Finance", "/Food & Drink", "/Sports"}

	set, err := BuildEmbeddingSet(ctx, embedder, categories, nil, "test-model", nil)
	require.NoError(t, err)

	require.Equal(t, 3, set.Len())
	for i := range categories {
		assert.NotEmpty(t, set.Row(i))
	}

	// Rows align with category order: identical text embeds identically.
	again, err := BuildEmbeddingSet(ctx, embedder, categories, nil, "test-model", nil)
	require.NoError(t, err)
	assert.Equal(t, set.Row(1), again.Row(1))
}

func TestBuildEmbeddingSet_EmptyTaxonomy(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	set, err := BuildEmbeddingSet(context.Background(), embedder, nil, nil, "test-model", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, embedder.CallCount(), "no embedder call for an empty taxonomy")
}

func TestBuildEmbeddingSet_CacheAvoidsReembedding(t *testing.T) {
	ctx := context.Background()
	cache, backend, err := badgerstore.NewMemoryCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	categories := []string{"/Finance", "/Food & Drink"}

	var embeddedTexts [][]string
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		embeddedTexts = append(embeddedTexts, texts)
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{float32(len(texts[i])), 1}
		}
		return out, nil
	}

	first, err := BuildEmbeddingSet(ctx, embedder, categories, cache, "test-model", nil)
	require.NoError(t, err)
	require.Equal(t, 2, first.Len())
	require.Len(t, embeddedTexts, 1)
	assert.Equal(t, categories, embeddedTexts[0])

	// Second build hits the cache for every category: no embedder call.
	second, err := BuildEmbeddingSet(ctx, embedder, categories, cache, "test-model", nil)
	require.NoError(t, err)
	assert.Len(t, embeddedTexts, 1)
	assert.Equal(t, first.Row(0), second.Row(0))
	assert.Equal(t, first.Row(1), second.Row(1))
}

func TestBuildEmbeddingSet_PartialCacheHit(t *testing.T) {
	ctx := context.Background()
	cache, backend, err := badgerstore.NewMemoryCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	embedder := mock.NewMockEmbedder()
	_, err = BuildEmbeddingSet(ctx, embedder, []string{"/Finance"}, cache, "test-model", nil)
	require.NoError(t, err)

	var missTexts []string
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		missTexts = texts
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 2, 3}
		}
		return out, nil
	}

	set, err := BuildEmbeddingSet(ctx, embedder, []string{"/Finance", "/Sports"}, cache, "test-model", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"/Sports"}, missTexts, "only the uncached category is embedded")
}

func TestBuildEmbeddingSet_EmbedderFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, assert.AnError
	}

	_, err := BuildEmbeddingSet(context.Background(), embedder, []string{"/Finance"}, nil, "test-model", nil)
	assert.Error(t, err)
}
