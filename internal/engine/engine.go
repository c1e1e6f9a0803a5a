// Package engine scores raw CV text against South African job market
// conventions. It is a fixed set of pattern-matching heuristics over
// keyword lists and regular expressions combined via fixed linear
// weights; it makes no semantic claims. Every call is pure and
// synchronous, so analyzers are safe for concurrent use.
package engine

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyText is returned when the input is empty after trimming.
// Callers must surface this as a validation failure, never as a zero score.
var ErrEmptyText = errors.New("cv text is empty")

// features groups the per-dimension detector outputs for one analysis.
// Each detector is a pure function of the normalized text; no flag
// depends on another.
type features struct {
	structural structuralFeatures
	content    contentFeatures
	regional   regionalFeatures
}

// Result is the complete outcome of one analysis. It is created fresh
// per call and never mutated. Message and skill lists are shuffled before
// truncation, so their order (and, past the caps, their subset) varies
// between calls while the qualifying sets stay stable.
type Result struct {
	OverallScore         int       `json:"overallScore"`
	Rating               Rating    `json:"rating"`
	FormatScore          int       `json:"formatScore"`
	ContentScore         int       `json:"contentScore"`
	RegionalContextScore int       `json:"regionalContextScore"`
	RegionalRelevance    Relevance `json:"regionalRelevance"`
	Strengths            []string  `json:"strengths"`
	Improvements         []string  `json:"improvements"`
	FormatFeedback       []string  `json:"formatFeedback"`
	Skills               []string  `json:"skills"`
	TaxonomyVersion      string    `json:"taxonomyVersion"`
}

// Analyzer runs the scoring pipeline against one taxonomy.
type Analyzer struct {
	Taxonomy Taxonomy
	// MaxSkills caps the skills list; zero means DefaultMaxSkills.
	MaxSkills int
	// Seed overrides the shuffle seed, letting tests pin output order.
	Seed func() int64
}

// NewAnalyzer constructs an Analyzer over the given taxonomy.
func NewAnalyzer(tax Taxonomy) *Analyzer {
	return &Analyzer{Taxonomy: tax}
}

// Analyze runs the full pipeline: normalize, detect, score, aggregate,
// generate feedback and extract skills.
func (a *Analyzer) Analyze(raw string) (Result, error) {
	text, lines := normalizeText(raw)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	f := features{
		structural: detectStructure(text),
		content:    detectContent(text, lines, a.Taxonomy),
		regional:   detectRegional(text, a.Taxonomy),
	}

	formatScore := f.structural.score()
	contentScore := f.content.score()
	regionalScore := f.regional.score()
	overall := aggregateScore(formatScore, contentScore, regionalScore)

	r := a.newRand()
	fb := buildFeedback(f, regionalScore, r)

	maxSkills := a.MaxSkills
	if maxSkills <= 0 {
		maxSkills = DefaultMaxSkills
	}

	return Result{
		OverallScore:         overall,
		Rating:               ratingFor(overall),
		FormatScore:          formatScore,
		ContentScore:         contentScore,
		RegionalContextScore: regionalScore,
		RegionalRelevance:    relevanceFor(regionalScore),
		Strengths:            fb.Strengths,
		Improvements:         fb.Improvements,
		FormatFeedback:       fb.FormatFeedback,
		Skills:               extractSkills(text, a.Taxonomy, r, maxSkills),
		TaxonomyVersion:      a.Taxonomy.Version,
	}, nil
}

// newRand builds the call-local shuffle source. Output order is the only
// non-determinism in the engine; it never depends on shared state.
func (a *Analyzer) newRand() *rand.Rand {
	if a.Seed != nil {
		return rand.New(rand.NewSource(a.Seed()))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
