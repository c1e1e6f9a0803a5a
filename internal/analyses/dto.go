package analyses

import (
	"time"

	"cvscore-backend/internal/engine"
)

// AnalyzeTextRequest is the body of a raw-text analysis.
type AnalyzeTextRequest struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription"`
}

// AnalyzeDocumentRequest is the optional body when analyzing an uploaded document.
type AnalyzeDocumentRequest struct {
	JobDescription string `json:"jobDescription"`
}

// AnalysisResponse is the outward-facing representation of an analysis.
type AnalysisResponse struct {
	AnalysisID           string           `json:"analysisId"`
	DocumentID           string           `json:"documentId,omitempty"`
	Score                int              `json:"score"`
	Rating               engine.Rating    `json:"rating"`
	Strengths            []string         `json:"strengths"`
	Weaknesses           []string         `json:"weaknesses"`
	Suggestions          []string         `json:"suggestions"`
	FormatScore          int              `json:"formatScore"`
	ContentScore         int              `json:"contentScore"`
	RegionalContextScore int              `json:"regionalContextScore"`
	RegionalRelevance    engine.Relevance `json:"regionalRelevance"`
	Skills               []string         `json:"skills"`
	TaxonomyVersion      string           `json:"taxonomyVersion"`
	JobMatch             *engine.JobMatch `json:"jobMatch,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}

func toResponse(a Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:           a.ID,
		DocumentID:           a.DocumentID,
		Score:                a.Result.OverallScore,
		Rating:               a.Result.Rating,
		Strengths:            a.Result.Strengths,
		Weaknesses:           a.Result.Improvements,
		Suggestions:          a.Result.FormatFeedback,
		FormatScore:          a.Result.FormatScore,
		ContentScore:         a.Result.ContentScore,
		RegionalContextScore: a.Result.RegionalContextScore,
		RegionalRelevance:    a.Result.RegionalRelevance,
		Skills:               a.Result.Skills,
		TaxonomyVersion:      a.TaxonomyVersion,
		JobMatch:             a.JobMatch,
		CreatedAt:            a.CreatedAt,
	}
}
