package engine

import "regexp"

// structuralFeatures are the presence checks behind the format score.
// Each detector is independent and operates on the full normalized text.
type structuralFeatures struct {
	HasSections     bool
	HasBulletPoints bool
	HasContactInfo  bool
	HasDateRanges   bool
	HasAnyYear      bool
}

var (
	sectionRe = regexp.MustCompile(`\b(education|experience|skills|qualifications|work history|employment|references|personal details)\b`)
	bulletRe  = regexp.MustCompile(`(?m)^\s*[•▪‣◦·*\-–]\s+`)
	contactRe = regexp.MustCompile(`\b(email|e-mail|phone|cell|tel|mobile|address|linkedin)\b|[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	// Month-year or year-year ranges, ending in a year or "present".
	dateRangeRe = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*(-|–|—|to)\s*(\d{4}|present|current)\b|\b(19|20)\d{2}\s*(-|–|—|to)\s*((19|20)\d{2}|present|current)\b`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

func detectStructure(text string) structuralFeatures {
	return structuralFeatures{
		HasSections:     sectionRe.MatchString(text),
		HasBulletPoints: bulletRe.MatchString(text),
		HasContactInfo:  contactRe.MatchString(text),
		HasDateRanges:   dateRangeRe.MatchString(text),
		HasAnyYear:      yearRe.MatchString(text),
	}
}

func (f structuralFeatures) score() int {
	score := 0
	if f.HasSections {
		score += PointsSections
	}
	if f.HasBulletPoints {
		score += PointsBulletPoints
	}
	if f.HasContactInfo {
		score += PointsContactInfo
	}
	if f.HasDateRanges {
		score += PointsDateRanges
	}
	if f.HasAnyYear {
		score += PointsAnyYear
	}
	return score
}
