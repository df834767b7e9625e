package pipeline

import (
	"log/slog"
	"strings"
)

// MaxKeywords is the hard cap on keywords per run. Input beyond the cap
// is dropped, not rejected.
const MaxKeywords = 100

// SplitLines breaks raw multi-line input into candidate keywords, one per
// line. Blank lines are dropped here so pasted input with trailing
// newlines behaves the same as a clean list.
func SplitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	keywords := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
	}
	return keywords
}

// NormalizeKeywords trims whitespace, drops empties, and enforces the
// keyword cap. Order and duplicates are preserved so output rows stay
// aligned with what the caller submitted.
func NormalizeKeywords(keywords []string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		normalized = append(normalized, kw)
	}

	if len(normalized) > MaxKeywords {
		logger.Warn("keyword list truncated", "submitted", len(normalized), "cap", MaxKeywords)
		normalized = normalized[:MaxKeywords]
	}

	return normalized
}
