package engine

import "math"

// Rating classifies the overall score.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingAverage          Rating = "Average"
	RatingNeedsImprovement Rating = "Needs Improvement"
)

// Relevance classifies the regional context score.
type Relevance string

const (
	RelevanceExcellent Relevance = "Excellent"
	RelevanceGood      Relevance = "Good"
	RelevanceAverage   Relevance = "Average"
	RelevanceLow       Relevance = "Low"
)

// aggregateScore blends the three dimension scores into the overall score.
func aggregateScore(formatScore, contentScore, regionalScore int) int {
	blended := FormatWeight*float64(formatScore) +
		ContentWeight*float64(contentScore) +
		RegionalWeight*float64(regionalScore)
	return int(math.Round(blended))
}

func ratingFor(overallScore int) Rating {
	switch {
	case overallScore >= RatingExcellentMin:
		return RatingExcellent
	case overallScore >= RatingGoodMin:
		return RatingGood
	case overallScore >= RatingAverageMin:
		return RatingAverage
	default:
		return RatingNeedsImprovement
	}
}

func relevanceFor(regionalScore int) Relevance {
	switch {
	case regionalScore >= RelevanceExcellentMin:
		return RelevanceExcellent
	case regionalScore >= RelevanceGoodMin:
		return RelevanceGood
	case regionalScore >= RelevanceAverageMin:
		return RelevanceAverage
	default:
		return RelevanceLow
	}
}
