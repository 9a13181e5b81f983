package internal

import (
	"testing"
	"time"
)

func TestSummarizeDataset(t *testing.T) {
	early := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 8, 18, 0, 0, 0, time.UTC)

	messages := &MessageTable{
		Messages: []Message{
			{ID: "m1", Direction: DirectionInbound, SessionID: "s1", ContactID: "c1", CreatedAt: late},
			{ID: "m2", Direction: DirectionOutbound, SessionID: "s1", ContactID: "c1", CreatedAt: early},
			{ID: "m3", Direction: DirectionInbound, SessionID: "s2", ContactID: "c2"},
		},
		Dropped: 2,
	}
	sessions := &SessionTable{Sessions: []Session{
		{ID: "s1", Operator: "Ana", DurationMinutes: fptr(10), QueueMinutes: fptr(2), Rating: fptr(5)},
		{ID: "s2", Operator: "Bruno", DurationMinutes: fptr(20)},
	}}
	plugins := &PluginTable{Sessions: []PluginSession{
		{SessionID: "s1", PluginLabel: "Checkout Bot"},
		{SessionID: "s2", PluginLabel: "Checkout Bot"},
		{SessionID: "s3", PluginLabel: ""},
	}}

	summary := SummarizeDataset(messages, sessions, plugins)

	m := summary.Messages
	if m == nil {
		t.Fatal("expected a message summary")
	}
	if m.Total != 3 || m.Inbound != 2 || m.Outbound != 1 {
		t.Errorf("message counts = %d/%d/%d, want 3/2/1", m.Total, m.Inbound, m.Outbound)
	}
	if m.UniqueSessions != 2 || m.UniqueContacts != 2 {
		t.Errorf("unique = %d sessions / %d contacts, want 2/2", m.UniqueSessions, m.UniqueContacts)
	}
	if !m.FirstMessage.Equal(early) || !m.LastMessage.Equal(late) {
		t.Errorf("period = %v → %v, want %v → %v", m.FirstMessage, m.LastMessage, early, late)
	}
	if m.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", m.Dropped)
	}

	s := summary.Sessions
	if s == nil {
		t.Fatal("expected a session summary")
	}
	if s.Total != 2 || s.UniqueOperators != 2 {
		t.Errorf("session counts = %d/%d, want 2/2", s.Total, s.UniqueOperators)
	}
	if s.AvgDurationMinutes != 15 {
		t.Errorf("avg duration = %v, want 15", s.AvgDurationMinutes)
	}
	if s.AvgRating != 5 || s.RatedSessions != 1 {
		t.Errorf("ratings = %v/%d, want 5/1", s.AvgRating, s.RatedSessions)
	}

	p := summary.Plugins
	if p == nil {
		t.Fatal("expected a plugin breakdown")
	}
	if p.Total != 3 || len(p.Plugins) != 2 {
		t.Fatalf("plugin breakdown = %d total / %d labels, want 3/2", p.Total, len(p.Plugins))
	}
	top := p.Plugins[0]
	if top.Label != "Checkout Bot" || top.Sessions != 2 {
		t.Errorf("top plugin = %+v", top)
	}
	if top.Share != 66.67 {
		t.Errorf("top plugin share = %v, want 66.67", top.Share)
	}
	if p.Plugins[1].Label != "(unlabeled)" {
		t.Errorf("blank labels should render as (unlabeled), got %q", p.Plugins[1].Label)
	}
}

func TestSummarizeDatasetAbsentTables(t *testing.T) {
	summary := SummarizeDataset(nil, nil, nil)
	if summary.Messages != nil || summary.Sessions != nil || summary.Plugins != nil {
		t.Errorf("absent tables should yield nil sections, got %+v", summary)
	}

	summary = SummarizeDataset(&MessageTable{}, &SessionTable{}, &PluginTable{})
	if summary.Messages != nil || summary.Sessions != nil || summary.Plugins != nil {
		t.Errorf("empty tables should yield nil sections, got %+v", summary)
	}
}
