package engine

import "testing"

func TestDetectContentFlags(t *testing.T) {
	tax := DefaultTaxonomy()
	cases := []struct {
		name           string
		text           string
		wantVerbs      bool
		wantQuantified bool
		wantSkill      bool
	}{
		{
			name:      "action_verb",
			text:      "managed the regional office",
			wantVerbs: true,
		},
		{
			name:           "percentage_is_quantified",
			text:           "delivered 95% of projects on time",
			wantQuantified: true,
		},
		{
			name:           "rand_amount_is_quantified",
			text:           "increased annual revenue by r 2000000",
			wantVerbs:      true,
			wantQuantified: true,
		},
		{
			name:      "skill_keyword",
			text:      "fluent in python and sql",
			wantSkill: true,
		},
		{
			name: "substring_is_not_a_skill",
			text: "javanese culture enthusiast",
		},
		{
			name: "nothing",
			text: "a quiet person from a small town",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, lines := normalizeText(tc.text)
			got := detectContent(text, lines, tax)
			if got.HasActionVerbs != tc.wantVerbs {
				t.Errorf("HasActionVerbs = %v, want %v", got.HasActionVerbs, tc.wantVerbs)
			}
			if got.HasQuantifiedAchievement != tc.wantQuantified {
				t.Errorf("HasQuantifiedAchievement = %v, want %v", got.HasQuantifiedAchievement, tc.wantQuantified)
			}
			if got.HasSkillKeyword != tc.wantSkill {
				t.Errorf("HasSkillKeyword = %v, want %v", got.HasSkillKeyword, tc.wantSkill)
			}
		})
	}
}

func TestAverageLineLength(t *testing.T) {
	if got := averageLineLength(nil); got != 0 {
		t.Errorf("averageLineLength(nil) = %v, want 0", got)
	}
	if got := averageLineLength([]string{"abcd", "ab"}); got != 3 {
		t.Errorf("averageLineLength = %v, want 3", got)
	}
}

// The readable band is exclusive on both ends.
func TestContentScoreLineLengthBand(t *testing.T) {
	cases := []struct {
		name   string
		avg    float64
		points bool
	}{
		{"at_minimum", MinAverageLineLength, false},
		{"just_above_minimum", MinAverageLineLength + 1, true},
		{"just_below_maximum", MaxAverageLineLength - 1, true},
		{"at_maximum", MaxAverageLineLength, false},
		{"zero", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := contentFeatures{AverageLineLength: tc.avg}
			want := 0
			if tc.points {
				want = PointsLineLength
			}
			if got := f.score(); got != want {
				t.Errorf("score with avg %v = %d, want %d", tc.avg, got, want)
			}
		})
	}
}
