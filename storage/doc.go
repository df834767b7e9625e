// Package storage defines the persistence boundary for cached embeddings.
//
// Analysis results are session-scoped and never stored; the only persisted
// data is the embedding cache for the fixed category taxonomy, which is
// derived and safe to rebuild at any time. The storage/badger sub-package
// provides the BadgerDB implementation.
package storage
