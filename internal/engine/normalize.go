package engine

import "strings"

// normalizeText canonicalizes raw CV text for scoring: trim, lower-case,
// and split into trimmed non-empty lines. The returned text is what every
// detector runs against, so all matching downstream is case-insensitive.
func normalizeText(raw string) (string, []string) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return "", nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(strings.TrimSuffix(line, "\r")); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return text, lines
}

// containsSubstring is the looser match used for regional terms, where
// suffixes are common ("johannesburg-based", "south african").
func containsSubstring(text, term string) bool {
	return term != "" && strings.Contains(text, term)
}

// containsWholeWord reports whether term occurs in text bounded by
// non-alphanumeric runes on both sides. Terms may contain characters that
// defeat \b (c#, kwazulu-natal), so boundaries are checked manually.
func containsWholeWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isWordByte(text[idx-1])
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	return !isWordByte(text[idx])
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
