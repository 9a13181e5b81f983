package internal

import (
	"fmt"
	"strings"
)

// GenerateInsights derives the headline facts from the aggregate views.
// Each fact is independently optional: a nil upstream view omits its
// facts rather than rendering a placeholder. The returned order is
// stable: operators, sentiment, peaks, segmentation.
func GenerateInsights(ops *OperatorPerformance, sentiment *SentimentBreakdown, peaks *PeakVolumeProfile, segments *CustomerSegmentation) []string {
	var insights []string

	if ops != nil && len(ops.Operators) > 0 {
		best := ops.Operators[0]
		for _, o := range ops.Operators[1:] {
			if o.AvgRating > best.AvgRating {
				best = o
			}
		}
		insights = append(insights, fmt.Sprintf("Best rated operator: %s (%.1f stars)", best.Operator, best.AvgRating))

		efficient := ops.Operators[0]
		for _, o := range ops.Operators[1:] {
			if o.Efficiency > efficient.Efficiency {
				efficient = o
			}
		}
		insights = append(insights, fmt.Sprintf("Most efficient operator: %s (%.1f sessions/hour)", efficient.Operator, efficient.Efficiency))
	}

	if sentiment != nil {
		insights = append(insights, fmt.Sprintf("%.1f%% of inbound messages carry negative sentiment", sentiment.NegativeShare()))
	}

	if peaks != nil && len(peaks.PeakHours) > 0 {
		hours := make([]string, 0, len(peaks.PeakHours))
		for _, h := range peaks.PeakHours {
			hours = append(hours, fmt.Sprintf("%dh", h))
		}
		insights = append(insights, fmt.Sprintf("Peak hours: %s", strings.Join(hours, ", ")))
	}

	if segments != nil {
		insights = append(insights, fmt.Sprintf("%.1f%% of contacts are frequent customers", segments.FrequentShare()))
	}

	return insights
}
