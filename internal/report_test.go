package internal

import (
	"testing"
	"time"
)

func TestBuildReport(t *testing.T) {
	created := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	messages := &MessageTable{Messages: []Message{
		{
			ID: "m1", SessionID: "s1", ContactID: "c1",
			Direction: DirectionInbound, Channel: "whatsapp",
			Content: "tive um problema", HasContent: true,
			CreatedAt: created, Hour: 9, WeekdayNum: 0, Date: "2024-03-04",
		},
	}}
	sessions := &SessionTable{Sessions: []Session{
		{
			ID: "s1", ContactID: "c1", Operator: "Ana",
			CreatedAt: created, Hour: 9, Weekday: "Monday", WeekdayNum: 0,
			Duration: fptr(600), DurationMinutes: fptr(10),
			Rating: fptr(5), CloseReason: "resolved", MessageCount: 2,
		},
	}}

	report := BuildReport(messages, sessions, nil)

	if report.GeneratedAt.IsZero() {
		t.Error("report should carry a generation timestamp")
	}
	if report.Summary.Messages == nil || report.Summary.Sessions == nil {
		t.Fatal("summary sections missing")
	}
	if report.Summary.Plugins != nil {
		t.Error("plugin breakdown should be nil without a plugins table")
	}
	if report.Operators == nil {
		t.Error("operator view missing")
	}
	if report.ResponseTimes == nil {
		t.Error("response-time view missing")
	}
	if report.Channels == nil {
		t.Error("channel view missing")
	}
	if report.Resolution == nil {
		t.Error("resolution view missing")
	}
	if report.Peaks == nil {
		t.Error("peak-volume view missing")
	}
	if report.Sentiment == nil {
		t.Error("sentiment view missing")
	}
	if report.Segments == nil {
		t.Error("segmentation view missing")
	}
	if len(report.Insights) == 0 {
		t.Error("insights missing")
	}
}

func TestBuildReportEmptyTables(t *testing.T) {
	report := BuildReport(&MessageTable{}, &SessionTable{}, &PluginTable{})

	if report.Operators != nil || report.ResponseTimes != nil || report.Channels != nil ||
		report.Resolution != nil || report.Peaks != nil || report.Sentiment != nil ||
		report.Segments != nil {
		t.Errorf("empty tables should yield nil views, got %+v", report)
	}
	if len(report.Insights) != 0 {
		t.Errorf("empty tables should yield no insights, got %v", report.Insights)
	}
}

func TestBuildReportNilTables(t *testing.T) {
	report := BuildReport(nil, nil, nil)
	if report == nil {
		t.Fatal("report should never be nil")
	}
	if len(report.Insights) != 0 {
		t.Errorf("expected no insights, got %v", report.Insights)
	}
}
