package engine

import "testing"

func TestAggregateScore(t *testing.T) {
	cases := []struct {
		name                     string
		format, content, regional int
		want                     int
	}{
		{"all_zero", 0, 0, 0, 0},
		{"all_hundred", 100, 100, 100, 100},
		{"content_weighs_most", 0, 100, 0, 40},
		{"rounds_to_nearest", 85, 70, 45, 67},
		{"rounds_half_up", 95, 70, 0, 57},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := aggregateScore(tc.format, tc.content, tc.regional); got != tc.want {
				t.Errorf("aggregateScore(%d, %d, %d) = %d, want %d",
					tc.format, tc.content, tc.regional, got, tc.want)
			}
		})
	}
}

func TestRatingThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Rating
	}{
		{100, RatingExcellent},
		{80, RatingExcellent},
		{79, RatingGood},
		{65, RatingGood},
		{64, RatingAverage},
		{50, RatingAverage},
		{49, RatingNeedsImprovement},
		{0, RatingNeedsImprovement},
	}
	for _, tc := range cases {
		if got := ratingFor(tc.score); got != tc.want {
			t.Errorf("ratingFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestRelevanceThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Relevance
	}{
		{100, RelevanceExcellent},
		{80, RelevanceExcellent},
		{79, RelevanceGood},
		{60, RelevanceGood},
		{59, RelevanceAverage},
		{40, RelevanceAverage},
		{39, RelevanceLow},
		{0, RelevanceLow},
	}
	for _, tc := range cases {
		if got := relevanceFor(tc.score); got != tc.want {
			t.Errorf("relevanceFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
