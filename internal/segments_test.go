package internal

import (
	"fmt"
	"testing"
	"time"
)

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		sessions int
		want     CustomerTier
	}{
		{0, TierSingleContact},
		{1, TierSingleContact},
		{2, TierOccasional},
		{3, TierOccasional},
		{4, TierRegular},
		{10, TierRegular},
		{11, TierFrequent},
		{50, TierFrequent},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d sessions", tt.sessions), func(t *testing.T) {
			if got := ClassifyTier(tt.sessions); got != tt.want {
				t.Errorf("ClassifyTier(%d) = %v, want %v", tt.sessions, got, tt.want)
			}
		})
	}
}

func TestClassifyTierExhaustive(t *testing.T) {
	// Every session count maps to exactly one tier, with no gaps between
	// the band edges.
	for n := 0; n <= 30; n++ {
		tier := ClassifyTier(n)
		switch tier {
		case TierSingleContact, TierOccasional, TierRegular, TierFrequent:
		default:
			t.Fatalf("ClassifyTier(%d) = %q, not a known tier", n, tier)
		}
	}
	if ClassifyTier(3) == ClassifyTier(4) {
		t.Error("3 and 4 sessions should land in different tiers")
	}
	if ClassifyTier(10) == ClassifyTier(11) {
		t.Error("10 and 11 sessions should land in different tiers")
	}
}

func TestCustomerSegmentationAnalysis(t *testing.T) {
	first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC)

	var sessions []Session
	// c1: two sessions ten days apart → Occasional.
	sessions = append(sessions,
		Session{ID: "s1", ContactID: "c1", CreatedAt: first, MessageCount: 4},
		Session{ID: "s2", ContactID: "c1", CreatedAt: later, MessageCount: 6},
	)
	// c2: a single session → Single-Contact.
	sessions = append(sessions, Session{ID: "s3", ContactID: "c2", CreatedAt: first, MessageCount: 2})
	// c3: twelve sessions → Frequent.
	for i := 0; i < 12; i++ {
		sessions = append(sessions, Session{
			ID:        fmt.Sprintf("f%d", i),
			ContactID: "c3",
			CreatedAt: first.Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	// Anonymous session, skipped.
	sessions = append(sessions, Session{ID: "s4"})

	seg := CustomerSegmentationAnalysis(&SessionTable{Sessions: sessions})
	if seg == nil {
		t.Fatal("expected a segmentation view")
	}
	if seg.Contacts != 3 {
		t.Fatalf("contacts = %d, want 3", seg.Contacts)
	}

	if len(seg.Journeys) != 3 {
		t.Fatalf("journeys = %d, want 3", len(seg.Journeys))
	}
	c1 := seg.Journeys[0]
	if c1.ContactID != "c1" {
		t.Fatalf("first journey = %q, want c1 (sorted by contact)", c1.ContactID)
	}
	if c1.Sessions != 2 || c1.Messages != 10 {
		t.Errorf("c1 = %d sessions / %d messages, want 2/10", c1.Sessions, c1.Messages)
	}
	if c1.RelationshipDays != 10 {
		t.Errorf("c1 relationship days = %d, want 10", c1.RelationshipDays)
	}
	if c1.Tier != TierOccasional {
		t.Errorf("c1 tier = %v, want Occasional", c1.Tier)
	}

	if len(seg.Tiers) != 3 {
		t.Fatalf("tiers = %d, want 3 (Regular is empty and skipped)", len(seg.Tiers))
	}
	// Tier order is fixed: Single-Contact, Occasional, Frequent here.
	if seg.Tiers[0].Tier != TierSingleContact || seg.Tiers[1].Tier != TierOccasional || seg.Tiers[2].Tier != TierFrequent {
		t.Errorf("tier order = %v, %v, %v", seg.Tiers[0].Tier, seg.Tiers[1].Tier, seg.Tiers[2].Tier)
	}
	occ := seg.Tiers[1]
	if occ.Contacts != 1 || occ.AvgSessions != 2 || occ.AvgMessages != 10 {
		t.Errorf("occasional tier = %+v", occ)
	}

	// 1 of 3 contacts is Frequent.
	if got := round2(seg.FrequentShare()); got != 33.33 {
		t.Errorf("frequent share = %v, want 33.33", got)
	}
}

func TestCustomerSegmentationAnalysisEmpty(t *testing.T) {
	if got := CustomerSegmentationAnalysis(&SessionTable{}); got != nil {
		t.Errorf("empty table should yield nil, got %+v", got)
	}

	anonymous := &SessionTable{Sessions: []Session{{ID: "s1"}}}
	if got := CustomerSegmentationAnalysis(anonymous); got != nil {
		t.Errorf("table without contacts should yield nil, got %+v", got)
	}

	var absent *CustomerSegmentation
	if got := absent.FrequentShare(); got != 0 {
		t.Errorf("nil segmentation share = %v, want 0", got)
	}
}
