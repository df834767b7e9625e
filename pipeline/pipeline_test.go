package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/ai/mock"
	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPipeline builds a pipeline over mock services and the testdata
// taxonomy. Pool size 1 keeps mock call counting deterministic.
func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, *mock.MockProvider) {
	t.Helper()

	provider := mock.NewMockProvider().(*mock.MockProvider)
	store := taxonomy.NewStore("testdata/categories.txt")

	opts = append([]Option{
		WithPoolSize(1),
		WithRetryBaseDelay(time.Millisecond),
	}, opts...)

	p, err := NewPipeline(provider, store, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	return p, provider
}

func TestNewPipeline_Validation(t *testing.T) {
	store := taxonomy.NewStore("testdata/categories.txt")

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(nil, store)
		assert.Equal(t, ErrAIProviderRequired, err)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewPipeline(mock.NewMockProvider(), nil)
		assert.Equal(t, ErrTaxonomyStoreRequired, err)
	})
}

func TestRun_OrderAndCompleteness(t *testing.T) {
	p, _ := newTestPipeline(t)

	keywords := []string{
		"how to train for a marathon",
		"buy nike running shoes",
		"coffee shop near me",
		"best laptop vs macbook",
		"facebook login",
		"random gibberish zxqv",
	}

	table, err := p.Run(context.Background(), keywords)
	require.NoError(t, err)
	require.Equal(t, len(keywords), table.Len())

	records := table.Records()
	for i, kw := range keywords {
		assert.Equal(t, kw, records[i].Keyword, "row %d out of order", i)
		assert.True(t, records[i].Intent.Valid())
		assert.False(t, records[i].Topic.Err, "topic should resolve for row %d", i)
	}

	// Spot-check the rule table against known phrasing.
	assert.Equal(t, core.IntentInformational, records[0].Intent)
	assert.Equal(t, core.IntentTransactional, records[1].Intent)
	assert.Equal(t, core.IntentLocal, records[2].Intent)
	assert.Equal(t, core.IntentCommercial, records[3].Intent)
	assert.Equal(t, core.IntentNavigational, records[4].Intent)
	assert.Equal(t, core.IntentOther, records[5].Intent)
}

func TestRun_TruncatesPastCap(t *testing.T) {
	p, _ := newTestPipeline(t)

	keywords := make([]string, MaxKeywords+15)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("keyword number %d", i)
	}

	table, err := p.Run(context.Background(), keywords)
	require.NoError(t, err)
	assert.Equal(t, MaxKeywords, table.Len())
	assert.Equal(t, "keyword number 0", table.Records()[0].Keyword)
}

func TestRun_EmptyInputYieldsEmptyTable(t *testing.T) {
	p, provider := newTestPipeline(t)

	t.Run("blank keyword list", func(t *testing.T) {
		table, err := p.Run(context.Background(), []string{"   ", ""})
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("blank raw text", func(t *testing.T) {
		table, err := p.Process(context.Background(), "   \n\n")
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())

		// Header-only CSV, same four columns as a populated run.
		var buf bytes.Buffer
		require.NoError(t, table.WriteCSV(&buf))
		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, ResultColumns, rows[0])
	})

	// An empty run touches no model service.
	assert.Equal(t, 0, provider.GetMockEmbedder().CallCount())
	assert.Equal(t, 0, provider.GetMockExtractor().CallCount())
}

func TestRun_OneExtractionFailureDoesNotAbort(t *testing.T) {
	p, provider := newTestPipeline(t)

	provider.GetMockExtractor().ExtractEntitiesFunc = func(ctx context.Context, text string) ([]ai.ExtractedEntity, error) {
		if strings.Contains(text, "poison") {
			return nil, errors.New("model choked")
		}
		return []ai.ExtractedEntity{{Text: text, Type: "misc", Confidence: 0.9}}, nil
	}

	keywords := []string{
		"keyword one", "keyword two", "keyword three", "poison keyword",
		"keyword five", "keyword six", "keyword seven", "keyword eight",
	}

	table, err := p.Run(context.Background(), keywords)
	require.NoError(t, err)
	require.Equal(t, len(keywords), table.Len())

	records := table.Records()
	assert.Equal(t, core.EntitiesError, records[3].Entities.Outcome)
	for i, r := range records {
		if i == 3 {
			continue
		}
		assert.Equal(t, core.EntitiesFound, r.Entities.Outcome, "row %d", i)
	}
}

func TestRun_EmptyTaxonomyDegradesTopics(t *testing.T) {
	provider := mock.NewMockProvider()
	store := taxonomy.NewStore("testdata/does-not-exist.txt")

	p, err := NewPipeline(provider, store, WithPoolSize(1))
	require.NoError(t, err)
	t.Cleanup(p.Release)

	table, err := p.Run(context.Background(), []string{"buy shoes", "how to cook rice"})
	require.NoError(t, err)

	for _, r := range table.Records() {
		assert.True(t, r.Topic.Err)
		assert.Equal(t, core.TopicErrorMessage, r.Topic.String())
		// Intent and entities are unaffected by the missing taxonomy.
		assert.True(t, r.Intent.Valid())
		assert.NotEqual(t, core.EntitiesError, r.Entities.Outcome)
	}
}

func TestRun_BatchEmbeddingFailureDegradesBatchTopics(t *testing.T) {
	p, provider := newTestPipeline(t, WithMaxRetries(2), WithBatchSize(3))

	// The category taxonomy (every entry starts with "/") embeds fine;
	// every keyword batch fails permanently.
	provider.GetMockEmbedder().EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		if len(texts) > 0 && strings.HasPrefix(texts[0], "/") {
			vectors := make([][]float32, len(texts))
			for i, text := range texts {
				vectors[i] = []float32{float32(len(text)), 1}
			}
			return vectors, nil
		}
		return nil, errors.New("embedding service down")
	}

	table, err := p.Run(context.Background(), []string{"alpha", "beta", "gamma", "delta"})
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	for _, r := range table.Records() {
		assert.True(t, r.Topic.Err)
		assert.True(t, r.Intent.Valid())
	}
}

func failingEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("embedding service down")
}

func TestRun_CategoryEmbeddingFailureIsFatal(t *testing.T) {
	p, provider := newTestPipeline(t)

	provider.GetMockEmbedder().EmbedTextsFunc = failingEmbed

	_, err := p.Run(context.Background(), []string{"anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding categories")
}

func TestRun_CategoryEmbeddingsBuiltOnce(t *testing.T) {
	p, provider := newTestPipeline(t)

	var categoryCalls int
	embedder := provider.GetMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		if len(texts) > 0 && strings.HasPrefix(texts[0], "/") {
			categoryCalls++
		}
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			vectors[i] = []float32{float32(len(text)), 1}
		}
		return vectors, nil
	}

	for run := 0; run < 2; run++ {
		_, err := p.Run(context.Background(), []string{"first keyword", "second keyword"})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, categoryCalls, "category taxonomy should be embedded once per pipeline")
}

func TestRun_BatchSizeDoesNotChangeResults(t *testing.T) {
	keywords := []string{
		"how to fix a flat tire", "buy concert tickets", "pizza near me",
		"best headphones review", "youtube", "quantum flowers", "cheap flight deals",
	}

	run := func(batchSize int) []core.KeywordRecord {
		p, _ := newTestPipeline(t, WithBatchSize(batchSize))
		table, err := p.Run(context.Background(), keywords)
		require.NoError(t, err)
		return table.Records()
	}

	assert.Equal(t, run(1), run(8))
	assert.Equal(t, run(3), run(100))
}

func TestProcess_SplitsRawInput(t *testing.T) {
	p, _ := newTestPipeline(t)

	table, err := p.Process(context.Background(), "buy shoes\n\n  coffee near me \n")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "buy shoes", table.Records()[0].Keyword)
	assert.Equal(t, "coffee near me", table.Records()[1].Keyword)
}

func TestRun_CancelledContext(t *testing.T) {
	p, _ := newTestPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, []string{"anything"})
	assert.ErrorIs(t, err, context.Canceled)
}
