// Package pipeline orchestrates keyword enrichment. It normalizes raw
// keyword input, classifies search intent, extracts named entities, and
// assigns content-taxonomy topics, producing one record per keyword in
// input order.
//
// Keywords are processed in fixed-size batches. Within a batch the
// keyword embeddings are generated in a single call and entity extraction
// fans out over a worker pool; transient batch state is dropped before
// the next batch starts. A failure enriching one keyword degrades that
// keyword's field to a sentinel value and never aborts the run.
package pipeline
