package internal

import (
	"sort"
	"time"
)

// CustomerTier is the engagement tier of a contact, derived from how
// many sessions they have had.
type CustomerTier string

const (
	TierSingleContact CustomerTier = "Single-Contact"
	TierOccasional    CustomerTier = "Occasional"
	TierRegular       CustomerTier = "Regular"
	TierFrequent      CustomerTier = "Frequent"
)

// tierOrder fixes the presentation order of the tiers.
var tierOrder = []CustomerTier{TierSingleContact, TierOccasional, TierRegular, TierFrequent}

// ClassifyTier maps a session count onto its tier. Band upper bounds are
// inclusive: 3 is still Occasional, 10 is still Regular.
func ClassifyTier(sessions int) CustomerTier {
	switch {
	case sessions <= 1:
		return TierSingleContact
	case sessions <= 3:
		return TierOccasional
	case sessions <= 10:
		return TierRegular
	default:
		return TierFrequent
	}
}

// ContactJourney is the per-contact engagement record.
type ContactJourney struct {
	ContactID        string       `json:"contact_id" yaml:"contact_id"`
	Sessions         int          `json:"sessions" yaml:"sessions"`
	Messages         int          `json:"messages" yaml:"messages"`
	FirstContact     time.Time    `json:"first_contact,omitempty" yaml:"first_contact,omitempty"`
	LastContact      time.Time    `json:"last_contact,omitempty" yaml:"last_contact,omitempty"`
	RelationshipDays int          `json:"relationship_days" yaml:"relationship_days"`
	Tier             CustomerTier `json:"tier" yaml:"tier"`
}

// TierStats aggregates the contacts of one tier.
type TierStats struct {
	Tier                CustomerTier `json:"tier" yaml:"tier"`
	Contacts            int          `json:"contacts" yaml:"contacts"`
	AvgSessions         float64      `json:"avg_sessions" yaml:"avg_sessions"`
	AvgMessages         float64      `json:"avg_messages" yaml:"avg_messages"`
	AvgRelationshipDays float64      `json:"avg_relationship_days" yaml:"avg_relationship_days"`
}

// CustomerSegmentation is the segmentation view: one journey per contact
// plus the tier aggregates and population distribution.
type CustomerSegmentation struct {
	Journeys []ContactJourney `json:"journeys" yaml:"journeys"`
	Tiers    []TierStats      `json:"tiers" yaml:"tiers"`
	Contacts int              `json:"contacts" yaml:"contacts"`
}

// FrequentShare returns the percentage of contacts in the Frequent tier,
// 0 when no contacts were segmented.
func (s *CustomerSegmentation) FrequentShare() float64 {
	if s == nil || s.Contacts == 0 {
		return 0
	}
	for _, tier := range s.Tiers {
		if tier.Tier == TierFrequent {
			return float64(tier.Contacts) / float64(s.Contacts) * 100
		}
	}
	return 0
}

// CustomerSegmentationAnalysis groups sessions by contact and classifies
// each contact into exactly one tier. Sessions without a contact
// identifier are skipped. Returns nil when nothing can be segmented.
func CustomerSegmentationAnalysis(t *SessionTable) *CustomerSegmentation {
	if t.Empty() {
		return nil
	}

	journeys := make(map[string]*ContactJourney)
	for i := range t.Sessions {
		s := &t.Sessions[i]
		if s.ContactID == "" {
			continue
		}

		j := journeys[s.ContactID]
		if j == nil {
			j = &ContactJourney{ContactID: s.ContactID}
			journeys[s.ContactID] = j
		}
		j.Sessions++
		j.Messages += s.MessageCount

		if s.HasTime() {
			if j.FirstContact.IsZero() || s.CreatedAt.Before(j.FirstContact) {
				j.FirstContact = s.CreatedAt
			}
			if s.CreatedAt.After(j.LastContact) {
				j.LastContact = s.CreatedAt
			}
		}
	}
	if len(journeys) == 0 {
		return nil
	}

	seg := &CustomerSegmentation{Contacts: len(journeys)}
	for _, j := range journeys {
		// Whole days, truncated; a single interaction spans zero days.
		if !j.FirstContact.IsZero() && !j.LastContact.IsZero() {
			j.RelationshipDays = int(j.LastContact.Sub(j.FirstContact).Hours() / 24)
		}
		j.Tier = ClassifyTier(j.Sessions)
		seg.Journeys = append(seg.Journeys, *j)
	}
	sort.Slice(seg.Journeys, func(i, k int) bool {
		return seg.Journeys[i].ContactID < seg.Journeys[k].ContactID
	})

	byTier := make(map[CustomerTier][]*ContactJourney)
	for i := range seg.Journeys {
		j := &seg.Journeys[i]
		byTier[j.Tier] = append(byTier[j.Tier], j)
	}

	for _, tier := range tierOrder {
		contacts := byTier[tier]
		if len(contacts) == 0 {
			continue
		}
		stats := TierStats{Tier: tier, Contacts: len(contacts)}
		var sessions, messages, days float64
		for _, j := range contacts {
			sessions += float64(j.Sessions)
			messages += float64(j.Messages)
			days += float64(j.RelationshipDays)
		}
		stats.AvgSessions = round2(sessions / float64(len(contacts)))
		stats.AvgMessages = round2(messages / float64(len(contacts)))
		stats.AvgRelationshipDays = round2(days / float64(len(contacts)))
		seg.Tiers = append(seg.Tiers, stats)
	}

	return seg
}
