// Package topic assigns content-taxonomy topics to keyword embeddings.
//
// Assignment is nearest-neighbor search by cosine similarity over the
// precomputed category embedding set, with a multiplicative dominance
// margin deciding between a confident single topic and an ambiguous pair.
package topic
