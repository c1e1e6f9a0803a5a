package engine

import (
	"math"
	"regexp"
	"strings"
)

// JobMatch is the keyword-overlap comparison between a CV and a job
// description. Unlike the rest of the pipeline it needs both texts, so it
// is computed only when a job description is supplied.
type JobMatch struct {
	MatchScore int    `json:"matchScore"`
	Relevance  string `json:"relevance"`
}

const (
	matchHighMin    = 70
	matchMediumMin  = 40
	minMatchTermLen = 3
)

var matchTokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

var matchStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "you": {}, "your": {},
	"are": {}, "will": {}, "have": {}, "this": {}, "that": {}, "our": {},
	"must": {}, "should": {}, "able": {}, "work": {}, "role": {}, "team": {},
	"years": {}, "experience": {}, "candidate": {}, "applicant": {},
	"required": {}, "requirements": {}, "responsibilities": {},
}

// MatchJob scores how many distinct job-description terms appear in the CV
// text as whole words. Both inputs are lower-cased; the result is
// deterministic.
func (a *Analyzer) MatchJob(cvText, jobDescription string) (JobMatch, bool) {
	cv, _ := normalizeText(cvText)
	jd, _ := normalizeText(jobDescription)
	if cv == "" || jd == "" {
		return JobMatch{}, false
	}

	terms := matchTerms(jd)
	if len(terms) == 0 {
		return JobMatch{}, false
	}

	matched := 0
	for _, term := range terms {
		if containsWholeWord(cv, term) {
			matched++
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(terms))))
	return JobMatch{MatchScore: score, Relevance: matchRelevance(score)}, true
}

func matchTerms(jd string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, token := range matchTokenRe.FindAllString(jd, -1) {
		token = strings.Trim(token, ".-")
		if len(token) < minMatchTermLen {
			continue
		}
		if _, stop := matchStopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
	}
	return terms
}

func matchRelevance(score int) string {
	switch {
	case score >= matchHighMin:
		return "High"
	case score >= matchMediumMin:
		return "Medium"
	default:
		return "Low"
	}
}
