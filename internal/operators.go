package internal

import (
	"sort"
)

// OperatorStats holds the per-operator performance metrics. Metrics that
// cannot be computed (no usable durations, no ratings) are zero, with
// the corresponding count fields telling the two cases apart.
type OperatorStats struct {
	Operator          string  `json:"operator" yaml:"operator"`
	Sessions          int     `json:"sessions" yaml:"sessions"`
	AvgDuration       float64 `json:"avg_duration" yaml:"avg_duration"`
	MedianDuration    float64 `json:"median_duration" yaml:"median_duration"`
	StdDuration       float64 `json:"std_duration" yaml:"std_duration"`
	AvgQueueTime      float64 `json:"avg_queue_time" yaml:"avg_queue_time"`
	MedianQueueTime   float64 `json:"median_queue_time" yaml:"median_queue_time"`
	AvgManualTime     float64 `json:"avg_manual_time" yaml:"avg_manual_time"`
	MedianManualTime  float64 `json:"median_manual_time" yaml:"median_manual_time"`
	AvgRating         float64 `json:"avg_rating" yaml:"avg_rating"`
	TotalRatings      int     `json:"total_ratings" yaml:"total_ratings"`
	TotalMessages     int     `json:"total_messages" yaml:"total_messages"`
	AvgMessages       float64 `json:"avg_messages" yaml:"avg_messages"`
	Efficiency        float64 `json:"efficiency_sessions_per_hour" yaml:"efficiency_sessions_per_hour"`
	SatisfactionRate  float64 `json:"satisfaction_rate" yaml:"satisfaction_rate"`
}

// OperatorPerformance is the operator view, ordered by session count
// descending.
type OperatorPerformance struct {
	Operators []OperatorStats `json:"operators" yaml:"operators"`
}

// OperatorPerformanceAnalysis groups sessions by operator and computes
// the performance metrics. Returns nil when the table is empty or no
// session carries an operator name.
func OperatorPerformanceAnalysis(t *SessionTable) *OperatorPerformance {
	if t.Empty() {
		return nil
	}

	groups := make(map[string][]*Session)
	for i := range t.Sessions {
		s := &t.Sessions[i]
		if s.Operator == "" {
			continue
		}
		groups[s.Operator] = append(groups[s.Operator], s)
	}
	if len(groups) == 0 {
		return nil
	}

	perf := &OperatorPerformance{Operators: make([]OperatorStats, 0, len(groups))}
	for operator, sessions := range groups {
		perf.Operators = append(perf.Operators, operatorStats(operator, sessions))
	}

	sort.Slice(perf.Operators, func(i, j int) bool {
		if perf.Operators[i].Sessions != perf.Operators[j].Sessions {
			return perf.Operators[i].Sessions > perf.Operators[j].Sessions
		}
		return perf.Operators[i].Operator < perf.Operators[j].Operator
	})

	return perf
}

func operatorStats(operator string, sessions []*Session) OperatorStats {
	stats := OperatorStats{Operator: operator, Sessions: len(sessions)}

	var durations, queues, manuals, ratings []*float64
	highRatings := 0
	for _, s := range sessions {
		durations = append(durations, s.Duration)
		queues = append(queues, s.QueueDuration)
		manuals = append(manuals, s.ManualDuration)
		ratings = append(ratings, s.Rating)
		if s.Rating != nil && *s.Rating >= 4 {
			highRatings++
		}
		stats.TotalMessages += s.MessageCount
	}

	durationValues := positiveValues(durations)
	if m, ok := mean(durationValues); ok {
		stats.AvgDuration = round2(m)
	}
	if m, ok := median(durationValues); ok {
		stats.MedianDuration = round2(m)
	}
	if sd, ok := stddev(durationValues); ok {
		stats.StdDuration = round2(sd)
	}

	queueValues := positiveValues(queues)
	if m, ok := mean(queueValues); ok {
		stats.AvgQueueTime = round2(m)
	}
	if m, ok := median(queueValues); ok {
		stats.MedianQueueTime = round2(m)
	}

	manualValues := positiveValues(manuals)
	if m, ok := mean(manualValues); ok {
		stats.AvgManualTime = round2(m)
	}
	if m, ok := median(manualValues); ok {
		stats.MedianManualTime = round2(m)
	}

	ratingValues := presentValues(ratings)
	stats.TotalRatings = len(ratingValues)
	if m, ok := mean(ratingValues); ok {
		stats.AvgRating = round2(m)
	}

	stats.AvgMessages = round2(float64(stats.TotalMessages) / float64(stats.Sessions))

	// Sessions per worked hour. Undefined when the mean duration is
	// missing or zero; guarded to 0 rather than dividing.
	if stats.AvgDuration > 0 {
		stats.Efficiency = round2(float64(stats.Sessions) / (stats.AvgDuration / 3600))
	}

	// Share of ratings at 4 stars or above; 0 when nothing was rated.
	if stats.TotalRatings > 0 {
		stats.SatisfactionRate = round2(float64(highRatings) / float64(stats.TotalRatings) * 100)
	}

	return stats
}
