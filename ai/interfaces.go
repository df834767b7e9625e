package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// All vectors have the same dimension for a given model configuration.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EntityExtractor recognizes named entities in text.
// Implementations must tolerate short, ungrammatical, keyword-like input
// (one to eight words) and must be thread-safe for concurrent use.
type EntityExtractor interface {
	// ExtractEntities analyzes text and returns the named entities it
	// mentions, in model output order. Entity types are drawn from the
	// configured entity-type vocabulary, and entities below the configured
	// confidence threshold are filtered out.
	// Returns an empty slice if no entities are found.
	// Returns an error if the extraction call fails.
	ExtractEntities(ctx context.Context, text string) ([]ExtractedEntity, error)
}

// ExtractedEntity is a named entity recognized in text.
type ExtractedEntity struct {
	// Text is the entity's surface form as it appears in the input.
	Text string

	// Type categorizes the entity (e.g., "organization", "location").
	// Must match one of the configured entity types.
	Type string

	// Confidence is the model's confidence score in [0, 1].
	Confidence float64
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and EntityExtractor instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// EntityExtractor returns the entity recognition service.
	// The returned EntityExtractor is safe for concurrent use.
	EntityExtractor() EntityExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
