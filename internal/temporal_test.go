package internal

import (
	"testing"
	"time"
)

func timedSession(id string, created time.Time, queue, duration float64) Session {
	s := Session{ID: id, CreatedAt: created, QueueDuration: fptr(queue), Duration: fptr(duration)}
	s.Hour = created.Hour()
	s.Weekday = created.Weekday().String()
	s.WeekdayNum = weekdayIndex(created)
	return s
}

func TestResponseTimeAnalysis(t *testing.T) {
	monday9 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	monday14 := time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)
	tuesday9 := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	table := &SessionTable{Sessions: []Session{
		timedSession("s1", monday9, 60, 600),
		timedSession("s2", monday14, 120, 1200),
		timedSession("s3", tuesday9, 180, 900),
		{ID: "s4", QueueDuration: fptr(999)}, // no timestamp, excluded
	}}

	profile := ResponseTimeAnalysis(table)
	if profile == nil {
		t.Fatal("expected a response-time profile")
	}

	if len(profile.Hourly) != 2 {
		t.Fatalf("expected 2 hourly buckets, got %d", len(profile.Hourly))
	}
	nine := profile.Hourly[0]
	if nine.Hour != 9 || nine.Sessions != 2 {
		t.Errorf("first bucket = hour %d with %d sessions, want hour 9 with 2", nine.Hour, nine.Sessions)
	}
	if nine.AvgQueue != 120 {
		t.Errorf("avg queue at 9h = %v, want 120", nine.AvgQueue)
	}
	if nine.MedianQueue != 120 {
		t.Errorf("median queue at 9h = %v, want 120", nine.MedianQueue)
	}
	if nine.AvgDuration != 750 {
		t.Errorf("avg duration at 9h = %v, want 750", nine.AvgDuration)
	}

	if len(profile.Weekly) != 2 {
		t.Fatalf("expected 2 weekday buckets, got %d", len(profile.Weekly))
	}
	monday := profile.Weekly[0]
	if monday.Weekday != "Monday" || monday.WeekdayNum != 0 {
		t.Errorf("first weekday = %s/%d, want Monday/0", monday.Weekday, monday.WeekdayNum)
	}
	if monday.Sessions != 2 {
		t.Errorf("monday sessions = %d, want 2", monday.Sessions)
	}
}

func TestResponseTimeAnalysisNoTimestamps(t *testing.T) {
	table := &SessionTable{Sessions: []Session{{ID: "s1"}, {ID: "s2"}}}
	if got := ResponseTimeAnalysis(table); got != nil {
		t.Errorf("sessions without timestamps should yield nil, got %+v", got)
	}
}

func TestResponseTimeAnalysisEmpty(t *testing.T) {
	if got := ResponseTimeAnalysis(&SessionTable{}); got != nil {
		t.Errorf("empty table should yield nil, got %+v", got)
	}
}
