package engine

import "regexp"

// contentFeatures are the quality checks behind the content score.
type contentFeatures struct {
	AverageLineLength        float64
	HasActionVerbs           bool
	HasQuantifiedAchievement bool
	HasSkillKeyword          bool
}

var (
	actionVerbRe = regexp.MustCompile(`\b(managed|developed|created|implemented|led|designed|improved|increased|reduced|achieved)\b`)
	// A bare percentage, or an improvement phrase followed by a number.
	quantifiedRe = regexp.MustCompile(`\d+(\.\d+)?\s*%|\b(increased|decreased|reduced|improved|grew|saved)\b[^.\n]*\bby\s+r?\s*\d+`)
)

func detectContent(text string, lines []string, tax Taxonomy) contentFeatures {
	return contentFeatures{
		AverageLineLength:        averageLineLength(lines),
		HasActionVerbs:           actionVerbRe.MatchString(text),
		HasQuantifiedAchievement: quantifiedRe.MatchString(text),
		HasSkillKeyword:          hasAnySkill(text, tax),
	}
}

// averageLineLength is total characters over non-empty lines. With no
// lines the average is 0, which fails the length check without dividing.
func averageLineLength(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	total := 0
	for _, line := range lines {
		total += len(line)
	}
	return float64(total) / float64(len(lines))
}

func hasAnySkill(text string, tax Taxonomy) bool {
	for _, skill := range tax.Skills {
		if containsWholeWord(text, skill) {
			return true
		}
	}
	return false
}

func (f contentFeatures) score() int {
	score := 0
	if f.AverageLineLength > MinAverageLineLength && f.AverageLineLength < MaxAverageLineLength {
		score += PointsLineLength
	}
	if f.HasActionVerbs {
		score += PointsActionVerbs
	}
	if f.HasQuantifiedAchievement {
		score += PointsQuantified
	}
	if f.HasSkillKeyword {
		score += PointsSkillKeyword
	}
	return score
}
