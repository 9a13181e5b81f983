package internal

import (
	"strings"
	"testing"
)

func TestGenerateInsights(t *testing.T) {
	ops := &OperatorPerformance{Operators: []OperatorStats{
		{Operator: "Ana", Sessions: 5, AvgRating: 4.7, Efficiency: 12},
		{Operator: "Bruno", Sessions: 3, AvgRating: 4.9, Efficiency: 8},
	}}
	sentiment := &SentimentBreakdown{
		Analyzed: 10,
		Totals:   map[SentimentLabel]int{SentimentNegative: 3, SentimentNeutral: 5, SentimentPositive: 2},
	}
	peaks := &PeakVolumeProfile{PeakHours: []int{9, 14}}
	segments := &CustomerSegmentation{
		Contacts: 4,
		Tiers:    []TierStats{{Tier: TierFrequent, Contacts: 1}},
	}

	insights := GenerateInsights(ops, sentiment, peaks, segments)
	if len(insights) != 5 {
		t.Fatalf("expected 5 insights, got %d: %v", len(insights), insights)
	}

	if insights[0] != "Best rated operator: Bruno (4.9 stars)" {
		t.Errorf("best rated = %q", insights[0])
	}
	if insights[1] != "Most efficient operator: Ana (12.0 sessions/hour)" {
		t.Errorf("most efficient = %q", insights[1])
	}
	if insights[2] != "30.0% of inbound messages carry negative sentiment" {
		t.Errorf("sentiment = %q", insights[2])
	}
	if insights[3] != "Peak hours: 9h, 14h" {
		t.Errorf("peaks = %q", insights[3])
	}
	if insights[4] != "25.0% of contacts are frequent customers" {
		t.Errorf("segments = %q", insights[4])
	}
}

func TestGenerateInsightsPartial(t *testing.T) {
	sentiment := &SentimentBreakdown{
		Analyzed: 4,
		Totals:   map[SentimentLabel]int{SentimentNegative: 1},
	}

	insights := GenerateInsights(nil, sentiment, nil, nil)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d: %v", len(insights), insights)
	}
	if !strings.Contains(insights[0], "negative sentiment") {
		t.Errorf("insight = %q", insights[0])
	}
}

func TestGenerateInsightsEmpty(t *testing.T) {
	insights := GenerateInsights(nil, nil, nil, nil)
	if len(insights) != 0 {
		t.Errorf("expected no insights, got %v", insights)
	}
}
