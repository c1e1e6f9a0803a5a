package engine

import "regexp"

// regionalFeatures capture how strongly the CV speaks to the South African
// job market: taxonomy keyword density plus three targeted heuristics.
type regionalFeatures struct {
	KeywordMatches               int
	HasComplianceStatusMention   bool
	HasQualificationLevelMention bool
	HasRegionalAddressMention    bool
}

var (
	// B-BBEE by name or abbreviation, or contributor-level language.
	complianceRe = regexp.MustCompile(`\bb[\- ]?bbee\b|\bbee\b|broad[\- ]based black economic empowerment\b|\bemployment equity\b|\blevel\s+[1-8]\s+contributor\b`)
	// NQF framework by name or abbreviation together with a numeric level.
	qualificationRe = regexp.MustCompile(`(\bnqf\b|national qualifications? framework)\s*(level)?\s*([1-9]|10)\b`)
)

func detectRegional(text string, tax Taxonomy) regionalFeatures {
	matches := 0
	for _, term := range tax.regionalTerms() {
		if containsSubstring(text, term) {
			matches++
		}
	}

	address := false
	for _, province := range tax.Provinces {
		if containsSubstring(text, province) {
			address = true
			break
		}
	}

	return regionalFeatures{
		KeywordMatches:               matches,
		HasComplianceStatusMention:   complianceRe.MatchString(text),
		HasQualificationLevelMention: qualificationRe.MatchString(text),
		HasRegionalAddressMention:    address,
	}
}

func (f regionalFeatures) score() int {
	score := f.KeywordMatches * PointsPerRegionalKeyword
	if score > RegionalKeywordCap {
		score = RegionalKeywordCap
	}
	if f.HasComplianceStatusMention {
		score += PointsCompliance
	}
	if f.HasQualificationLevelMention {
		score += PointsQualification
	}
	if f.HasRegionalAddressMention {
		score += PointsRegionalAddress
	}
	return score
}
