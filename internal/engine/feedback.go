package engine

import "math/rand"

// feedbackBucket routes a fired rule into one of the three output lists.
type feedbackBucket int

const (
	bucketStrength feedbackBucket = iota
	bucketImprovement
	bucketFormat
)

type feedbackRule struct {
	bucket  feedbackBucket
	when    func(f features, regionalScore int) bool
	message string
}

// feedbackRules is the fixed rule table. Rules are independent, fire at
// most once per call, and the regional suggestions gate on a weak
// regional score so a CV that already scores well is not nagged.
var feedbackRules = []feedbackRule{
	{bucketStrength, func(f features, _ int) bool { return f.structural.HasSections },
		"Your CV is organised into clear, recognisable sections."},
	{bucketStrength, func(f features, _ int) bool { return f.structural.HasBulletPoints },
		"Bullet points make your experience easy to scan."},
	{bucketStrength, func(f features, _ int) bool { return f.content.HasActionVerbs },
		"Strong action verbs describe what you actually did."},
	{bucketStrength, func(f features, _ int) bool { return f.content.HasQuantifiedAchievement },
		"Quantified achievements show measurable impact."},
	{bucketStrength, func(f features, _ int) bool { return f.content.HasSkillKeyword },
		"Relevant skills are clearly listed."},
	{bucketStrength, func(f features, _ int) bool { return f.regional.KeywordMatches > 0 },
		"Your CV speaks to the South African job market."},
	{bucketStrength, func(f features, _ int) bool { return f.regional.HasComplianceStatusMention },
		"Stating your B-BBEE status helps employers who screen for it."},
	{bucketStrength, func(f features, _ int) bool { return f.regional.HasQualificationLevelMention },
		"NQF levels make your qualifications easy to verify."},

	{bucketImprovement, func(f features, _ int) bool { return !f.structural.HasSections },
		"Organise your CV into standard sections such as education, experience and skills."},
	{bucketImprovement, func(f features, _ int) bool { return !f.structural.HasBulletPoints },
		"Use bullet points to break dense paragraphs into scannable achievements."},
	{bucketImprovement, func(f features, _ int) bool { return !f.structural.HasDateRanges },
		"Add date ranges to your work history so employers can follow your career."},
	{bucketImprovement, func(f features, _ int) bool { return !f.content.HasActionVerbs },
		"Start achievement lines with action verbs like managed, developed or led."},
	{bucketImprovement, func(f features, _ int) bool { return !f.content.HasQuantifiedAchievement },
		"Quantify your achievements with numbers or percentages."},
	{bucketImprovement, func(f features, _ int) bool { return !f.content.HasSkillKeyword },
		"List the concrete skills employers search for."},
	{bucketImprovement, func(f features, score int) bool {
		return score < RegionalAdviceThreshold && !f.regional.HasComplianceStatusMention
	}, "Mention your B-BBEE status if it applies to you."},
	{bucketImprovement, func(f features, score int) bool {
		return score < RegionalAdviceThreshold && !f.regional.HasQualificationLevelMention
	}, "State the NQF level of your qualifications."},
	{bucketImprovement, func(f features, score int) bool {
		return score < RegionalAdviceThreshold && !f.regional.HasRegionalAddressMention
	}, "Include your city or province so employers can place you."},

	{bucketFormat, func(f features, _ int) bool {
		return f.content.AverageLineLength > 0 && f.content.AverageLineLength <= MinAverageLineLength
	}, "Lines are very short; combine fragments into fuller bullet points."},
	{bucketFormat, func(f features, _ int) bool { return f.content.AverageLineLength >= MaxAverageLineLength },
		"Long unbroken paragraphs are hard to scan; split them into shorter lines."},
	{bucketFormat, func(f features, _ int) bool { return !f.structural.HasContactInfo },
		"Add contact details such as an email address and phone number."},
}

type feedback struct {
	Strengths      []string
	Improvements   []string
	FormatFeedback []string
}

// buildFeedback evaluates the rule table, shuffles each bucket with the
// call-local source, and truncates to the configured caps.
func buildFeedback(f features, regionalScore int, r *rand.Rand) feedback {
	var fb feedback
	for _, rule := range feedbackRules {
		if !rule.when(f, regionalScore) {
			continue
		}
		switch rule.bucket {
		case bucketStrength:
			fb.Strengths = append(fb.Strengths, rule.message)
		case bucketImprovement:
			fb.Improvements = append(fb.Improvements, rule.message)
		case bucketFormat:
			fb.FormatFeedback = append(fb.FormatFeedback, rule.message)
		}
	}
	fb.Strengths = shuffleTruncate(fb.Strengths, MaxStrengths, r)
	fb.Improvements = shuffleTruncate(fb.Improvements, MaxImprovements, r)
	fb.FormatFeedback = shuffleTruncate(fb.FormatFeedback, MaxFormatFeedback, r)
	return fb
}

func shuffleTruncate(messages []string, limit int, r *rand.Rand) []string {
	r.Shuffle(len(messages), func(i, j int) {
		messages[i], messages[j] = messages[j], messages[i]
	})
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return messages
}
