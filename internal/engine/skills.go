package engine

import "math/rand"

// extractSkills returns the taxonomy skills found in the text as whole
// words, shuffled with the call-local source and truncated to max.
func extractSkills(text string, tax Taxonomy, r *rand.Rand, max int) []string {
	found := make([]string, 0, max)
	for _, skill := range tax.Skills {
		if containsWholeWord(text, skill) {
			found = append(found, skill)
		}
	}
	return shuffleTruncate(found, max, r)
}
