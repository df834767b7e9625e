// Package mock provides test doubles for the ai interfaces.
//
// The mocks default to deterministic behavior (hash-derived embeddings,
// simple word-based entity recognition) and support behavior injection via
// function fields, plus call counting for assertions.
package mock
