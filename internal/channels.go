package internal

import (
	"sort"
)

// ChannelStats holds the per-channel efficiency metrics.
type ChannelStats struct {
	Channel            string  `json:"channel" yaml:"channel"`
	TotalMessages      int     `json:"total_messages" yaml:"total_messages"`
	UniqueSessions     int     `json:"unique_sessions" yaml:"unique_sessions"`
	UniqueContacts     int     `json:"unique_contacts" yaml:"unique_contacts"`
	MessagesPerSession float64 `json:"messages_per_session" yaml:"messages_per_session"`
}

// ChannelEfficiency is the channel view, ordered by message count
// descending.
type ChannelEfficiency struct {
	Channels []ChannelStats `json:"channels" yaml:"channels"`
}

// ChannelEfficiencyAnalysis groups messages by channel. Messages without
// a channel are skipped; returns nil when the table is empty or carries
// no channel information at all.
func ChannelEfficiencyAnalysis(t *MessageTable) *ChannelEfficiency {
	if t.Empty() {
		return nil
	}

	groups := make(map[string][]*Message)
	for i := range t.Messages {
		m := &t.Messages[i]
		if m.Channel == "" {
			continue
		}
		groups[m.Channel] = append(groups[m.Channel], m)
	}
	if len(groups) == 0 {
		return nil
	}

	eff := &ChannelEfficiency{Channels: make([]ChannelStats, 0, len(groups))}
	for channel, messages := range groups {
		stats := ChannelStats{
			Channel:       channel,
			TotalMessages: len(messages),
		}

		sessionIDs := make([]string, 0, len(messages))
		contactIDs := make([]string, 0, len(messages))
		for _, m := range messages {
			sessionIDs = append(sessionIDs, m.SessionID)
			contactIDs = append(contactIDs, m.ContactID)
		}
		stats.UniqueSessions = distinctCount(sessionIDs)
		stats.UniqueContacts = distinctCount(contactIDs)

		if stats.UniqueSessions > 0 {
			stats.MessagesPerSession = round2(float64(stats.TotalMessages) / float64(stats.UniqueSessions))
		}

		eff.Channels = append(eff.Channels, stats)
	}

	sort.Slice(eff.Channels, func(i, j int) bool {
		if eff.Channels[i].TotalMessages != eff.Channels[j].TotalMessages {
			return eff.Channels[i].TotalMessages > eff.Channels[j].TotalMessages
		}
		return eff.Channels[i].Channel < eff.Channels[j].Channel
	})

	return eff
}
