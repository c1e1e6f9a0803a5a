package engine

// Scoring constants. Every threshold and point value lives here so the
// dimension scorers, the aggregator and the tests share one source of truth.
const (
	// Format dimension (sums to 100).
	PointsSections     = 25
	PointsBulletPoints = 25
	PointsContactInfo  = 20
	PointsDateRanges   = 15
	PointsAnyYear      = 15

	// Content dimension (sums to 100).
	PointsLineLength     = 25
	PointsActionVerbs    = 25
	PointsQuantified     = 25
	PointsSkillKeyword   = 25
	MinAverageLineLength = 30
	MaxAverageLineLength = 200

	// Regional dimension (sums to 100).
	PointsPerRegionalKeyword = 5
	RegionalKeywordCap       = 30
	PointsCompliance         = 25
	PointsQualification      = 25
	PointsRegionalAddress    = 20

	// Overall rating thresholds (inclusive lower bounds).
	RatingExcellentMin = 80
	RatingGoodMin      = 65
	RatingAverageMin   = 50

	// Regional relevance thresholds (inclusive lower bounds).
	RelevanceExcellentMin = 80
	RelevanceGoodMin      = 60
	RelevanceAverageMin   = 40

	// Regional suggestions only fire when the regional score is already weak.
	RegionalAdviceThreshold = 60

	// Output caps.
	MaxStrengths      = 3
	MaxImprovements   = 3
	MaxFormatFeedback = 2
	DefaultMaxSkills  = 8
)

// Overall score blend weights.
const (
	FormatWeight   = 0.3
	ContentWeight  = 0.4
	RegionalWeight = 0.3
)
