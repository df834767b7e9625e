package openai

import "strings"

// scrubString removes punctuation and trims whitespace from text.
func scrubString(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:\"'()[]{}—–-", r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// capWords truncates text to at most max whitespace-separated words.
func capWords(s string, max int) string {
	words := strings.Fields(s)
	if max <= 0 || len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
