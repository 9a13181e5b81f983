package internal

import (
	"math"
	"sort"
)

// CloseReasonStats holds the metrics for one session close reason.
type CloseReasonStats struct {
	Reason       string  `json:"reason" yaml:"reason"`
	Sessions     int     `json:"sessions" yaml:"sessions"`
	AvgDuration  float64 `json:"avg_duration" yaml:"avg_duration"`
	AvgMessages  float64 `json:"avg_messages" yaml:"avg_messages"`
	AvgRating    float64 `json:"avg_rating" yaml:"avg_rating"`
	TotalRatings int     `json:"total_ratings" yaml:"total_ratings"`
}

// DurationBand is one of the five fixed session-length bands, bounded in
// minutes with a half-open upper edge.
type DurationBand struct {
	Label      string  `json:"label" yaml:"label"`
	MinMinutes float64 `json:"min_minutes" yaml:"min_minutes"`
	MaxMinutes float64 `json:"max_minutes" yaml:"max_minutes"` // +Inf for the last band
	Sessions   int     `json:"sessions" yaml:"sessions"`
	Ratings    int     `json:"ratings" yaml:"ratings"`
	AvgRating  float64 `json:"avg_rating" yaml:"avg_rating"`
}

// ResolutionPatterns is the resolution view: metrics per close reason
// (empty when the export carries no close reasons) plus the fixed
// duration-band breakdown.
type ResolutionPatterns struct {
	CloseReasons  []CloseReasonStats `json:"close_reasons" yaml:"close_reasons"`
	DurationBands []DurationBand     `json:"duration_bands" yaml:"duration_bands"`
}

// durationBandEdges are the band lower bounds in minutes; each band is
// half-open on the right, the last unbounded.
var durationBandEdges = []struct {
	label string
	min   float64
	max   float64
}{
	{"Very Fast (0-5min)", 0, 5},
	{"Fast (5-15min)", 5, 15},
	{"Medium (15-30min)", 15, 30},
	{"Long (30-60min)", 30, 60},
	{"Very Long (60min+)", 60, math.Inf(1)},
}

// ResolutionPatternAnalysis computes close-reason metrics and the
// duration-band rating breakdown. Returns nil for an empty table. When
// no session has a close reason the CloseReasons slice is empty and only
// the band breakdown is populated.
func ResolutionPatternAnalysis(t *SessionTable) *ResolutionPatterns {
	if t.Empty() {
		return nil
	}

	patterns := &ResolutionPatterns{}

	groups := make(map[string][]*Session)
	for i := range t.Sessions {
		s := &t.Sessions[i]
		if s.CloseReason == "" {
			continue
		}
		groups[s.CloseReason] = append(groups[s.CloseReason], s)
	}

	for reason, sessions := range groups {
		stats := CloseReasonStats{Reason: reason, Sessions: len(sessions)}

		var durations, ratings []*float64
		totalMessages := 0
		for _, s := range sessions {
			durations = append(durations, s.Duration)
			ratings = append(ratings, s.Rating)
			totalMessages += s.MessageCount
		}
		if m, ok := mean(positiveValues(durations)); ok {
			stats.AvgDuration = round2(m)
		}
		ratingValues := presentValues(ratings)
		stats.TotalRatings = len(ratingValues)
		if m, ok := mean(ratingValues); ok {
			stats.AvgRating = round2(m)
		}
		stats.AvgMessages = round2(float64(totalMessages) / float64(len(sessions)))

		patterns.CloseReasons = append(patterns.CloseReasons, stats)
	}
	sort.Slice(patterns.CloseReasons, func(i, j int) bool {
		if patterns.CloseReasons[i].Sessions != patterns.CloseReasons[j].Sessions {
			return patterns.CloseReasons[i].Sessions > patterns.CloseReasons[j].Sessions
		}
		return patterns.CloseReasons[i].Reason < patterns.CloseReasons[j].Reason
	})

	patterns.DurationBands = durationBands(t)

	return patterns
}

// durationBands buckets sessions with a usable duration into the five
// fixed bands and computes the rating profile per band. All five bands
// are always present, zero-count ones included.
func durationBands(t *SessionTable) []DurationBand {
	bands := make([]DurationBand, len(durationBandEdges))
	ratingSums := make([]float64, len(durationBandEdges))

	for i, edge := range durationBandEdges {
		bands[i] = DurationBand{Label: edge.label, MinMinutes: edge.min, MaxMinutes: edge.max}
	}

	for i := range t.Sessions {
		s := &t.Sessions[i]
		if !s.HasDuration() {
			continue
		}
		minutes := *s.Duration / 60
		for bi, edge := range durationBandEdges {
			if minutes >= edge.min && minutes < edge.max {
				bands[bi].Sessions++
				if s.Rating != nil {
					bands[bi].Ratings++
					ratingSums[bi] += *s.Rating
				}
				break
			}
		}
	}

	for i := range bands {
		if bands[i].Ratings > 0 {
			bands[i].AvgRating = round2(ratingSums[i] / float64(bands[i].Ratings))
		}
	}

	return bands
}
