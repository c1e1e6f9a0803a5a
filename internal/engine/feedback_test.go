package engine

import (
	"math/rand"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestFeedbackRegionalAdviceGatesOnWeakScore(t *testing.T) {
	f := features{} // no regional signals at all

	regionalMessages := []string{
		"Mention your B-BBEE status if it applies to you.",
		"State the NQF level of your qualifications.",
		"Include your city or province so employers can place you.",
	}

	// Below the threshold the regional suggestions qualify; they compete
	// with the generic ones for the cap, so scan seeds until one shows.
	found := false
	for seed := int64(0); seed < 20 && !found; seed++ {
		fb := buildFeedback(f, RegionalAdviceThreshold-1, rand.New(rand.NewSource(seed)))
		for _, msg := range regionalMessages {
			if containsString(fb.Improvements, msg) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no regional suggestion surfaced below the threshold")
	}

	// At or above the threshold they must never appear.
	for seed := int64(0); seed < 20; seed++ {
		fb := buildFeedback(f, RegionalAdviceThreshold, rand.New(rand.NewSource(seed)))
		for _, msg := range regionalMessages {
			if containsString(fb.Improvements, msg) {
				t.Fatalf("regional suggestion %q fired at threshold score", msg)
			}
		}
	}
}

func TestFeedbackBucketsRespectCaps(t *testing.T) {
	f := features{
		structural: structuralFeatures{
			HasSections:     true,
			HasBulletPoints: true,
			HasDateRanges:   true,
		},
		content: contentFeatures{
			AverageLineLength:        10,
			HasActionVerbs:           true,
			HasQuantifiedAchievement: true,
			HasSkillKeyword:          true,
		},
		regional: regionalFeatures{
			KeywordMatches:               4,
			HasComplianceStatusMention:   true,
			HasQualificationLevelMention: true,
		},
	}
	fb := buildFeedback(f, 0, testRand())
	if len(fb.Strengths) > MaxStrengths {
		t.Errorf("strengths len = %d, want <= %d", len(fb.Strengths), MaxStrengths)
	}
	if len(fb.Improvements) > MaxImprovements {
		t.Errorf("improvements len = %d, want <= %d", len(fb.Improvements), MaxImprovements)
	}
	if len(fb.FormatFeedback) > MaxFormatFeedback {
		t.Errorf("format feedback len = %d, want <= %d", len(fb.FormatFeedback), MaxFormatFeedback)
	}
}

func TestFeedbackMissingContactInfo(t *testing.T) {
	f := features{
		content: contentFeatures{AverageLineLength: 50},
	}
	fb := buildFeedback(f, 100, testRand())
	const msg = "Add contact details such as an email address and phone number."
	if !containsString(fb.FormatFeedback, msg) {
		t.Errorf("format feedback = %v, want contact message", fb.FormatFeedback)
	}
}

func TestFeedbackNoRuleFiresTwice(t *testing.T) {
	f := features{
		structural: structuralFeatures{HasBulletPoints: true},
		content:    contentFeatures{AverageLineLength: 10, HasActionVerbs: true},
	}
	for seed := int64(0); seed < 20; seed++ {
		fb := buildFeedback(f, 0, rand.New(rand.NewSource(seed)))
		for _, bucket := range [][]string{fb.Strengths, fb.Improvements, fb.FormatFeedback} {
			seen := make(map[string]bool)
			for _, msg := range bucket {
				if seen[msg] {
					t.Fatalf("message repeated in one bucket: %q", msg)
				}
				seen[msg] = true
			}
		}
	}
}
