package internal

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func hourMessage(id string, hour int, direction Direction) Message {
	created := time.Date(2024, 3, 4, hour, 0, 0, 0, time.UTC)
	return Message{
		ID:         id,
		Direction:  direction,
		CreatedAt:  created,
		Hour:       hour,
		WeekdayNum: weekdayIndex(created),
	}
}

func TestPeakVolumeAnalysis(t *testing.T) {
	// Eight quiet hours at 10 messages each, two busy hours at 90 and 95.
	// The interpolated 80th percentile of [10x8, 90, 95] is 26, so only
	// the two busy hours cross it.
	var messages []Message
	id := 0
	add := func(hour, count int, direction Direction) {
		for i := 0; i < count; i++ {
			id++
			messages = append(messages, hourMessage(fmt.Sprintf("m%d", id), hour, direction))
		}
	}
	for hour := 0; hour < 8; hour++ {
		add(hour, 10, DirectionInbound)
	}
	add(14, 90, DirectionInbound)
	add(16, 95, DirectionOutbound)

	profile := PeakVolumeAnalysis(&MessageTable{Messages: messages})
	if profile == nil {
		t.Fatal("expected a peak-volume profile")
	}

	if len(profile.Hourly) != 10 {
		t.Fatalf("expected 10 hourly buckets, got %d", len(profile.Hourly))
	}
	if math.Abs(profile.Threshold-26) > 1e-9 {
		t.Errorf("threshold = %v, want 26", profile.Threshold)
	}
	if len(profile.PeakHours) != 2 {
		t.Fatalf("peak hours = %v, want exactly [14 16]", profile.PeakHours)
	}
	if profile.PeakHours[0] != 14 || profile.PeakHours[1] != 16 {
		t.Errorf("peak hours = %v, want [14 16]", profile.PeakHours)
	}

	for _, hv := range profile.Hourly {
		if hv.Hour == 14 && (hv.Inbound != 90 || hv.Total != 90) {
			t.Errorf("hour 14 = %+v, want 90 inbound", hv)
		}
		if hv.Hour == 16 && (hv.Outbound != 95 || hv.Total != 95) {
			t.Errorf("hour 16 = %+v, want 95 outbound", hv)
		}
	}
}

func TestPeakVolumeDirectionlessMessages(t *testing.T) {
	created := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	table := &MessageTable{Messages: []Message{
		{ID: "m1", CreatedAt: created, Hour: 9},
		{ID: "m2", Direction: DirectionInbound, CreatedAt: created, Hour: 9},
	}}

	profile := PeakVolumeAnalysis(table)
	if profile == nil {
		t.Fatal("expected a peak-volume profile")
	}
	hv := profile.Hourly[0]
	if hv.Total != 1 {
		t.Errorf("total = %d, want 1 (directionless messages stay out of the pivot)", hv.Total)
	}
}

func TestPeakVolumeHeatmap(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	table := &MessageTable{Messages: []Message{
		{ID: "m1", Direction: DirectionInbound, CreatedAt: monday, Hour: 9, WeekdayNum: 0},
		{ID: "m2", Direction: DirectionInbound, CreatedAt: monday, Hour: 9, WeekdayNum: 0},
		{ID: "m3", Direction: DirectionInbound, CreatedAt: tuesday, Hour: 14, WeekdayNum: 1},
	}}

	profile := PeakVolumeAnalysis(table)
	if profile == nil {
		t.Fatal("expected a peak-volume profile")
	}
	if len(profile.Heatmap) != 2 {
		t.Fatalf("expected 2 heatmap cells, got %d", len(profile.Heatmap))
	}
	first := profile.Heatmap[0]
	if first.WeekdayNum != 0 || first.Hour != 9 || first.Volume != 2 {
		t.Errorf("first cell = %+v, want weekday 0 hour 9 volume 2", first)
	}
}

func TestPeakVolumeAnalysisNoTimestamps(t *testing.T) {
	table := &MessageTable{Messages: []Message{{ID: "m1"}}}
	if got := PeakVolumeAnalysis(table); got != nil {
		t.Errorf("messages without timestamps should yield nil, got %+v", got)
	}
	if got := PeakVolumeAnalysis(&MessageTable{}); got != nil {
		t.Errorf("empty table should yield nil, got %+v", got)
	}
}
