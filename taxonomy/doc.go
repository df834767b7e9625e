// Package taxonomy loads the fixed category vocabulary and its embeddings.
//
// The Store reads a newline-delimited category file lazily: the first call
// loads and caches, later calls return the cache, and a failed read caches
// an empty list permanently rather than failing callers. The EmbeddingSet
// is the derived, row-aligned embedding matrix over those categories,
// computed once per process and shared read-only by every topic match.
package taxonomy
