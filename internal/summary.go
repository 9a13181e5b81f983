package internal

import (
	"sort"
	"time"
)

// MessageSummary is the high-level profile of the messages table.
type MessageSummary struct {
	Total          int       `json:"total" yaml:"total"`
	Inbound        int       `json:"inbound" yaml:"inbound"`
	Outbound       int       `json:"outbound" yaml:"outbound"`
	UniqueContacts int       `json:"unique_contacts" yaml:"unique_contacts"`
	UniqueSessions int       `json:"unique_sessions" yaml:"unique_sessions"`
	FirstMessage   time.Time `json:"first_message,omitempty" yaml:"first_message,omitempty"`
	LastMessage    time.Time `json:"last_message,omitempty" yaml:"last_message,omitempty"`
	Dropped        int       `json:"dropped" yaml:"dropped"`
}

// SessionSummary is the high-level profile of the sessions table.
type SessionSummary struct {
	Total              int     `json:"total" yaml:"total"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes" yaml:"avg_duration_minutes"`
	AvgQueueMinutes    float64 `json:"avg_queue_minutes" yaml:"avg_queue_minutes"`
	AvgRating          float64 `json:"avg_rating" yaml:"avg_rating"`
	RatedSessions      int     `json:"rated_sessions" yaml:"rated_sessions"`
	UniqueOperators    int     `json:"unique_operators" yaml:"unique_operators"`
	Dropped            int     `json:"dropped" yaml:"dropped"`
}

// PluginStats is the session count and share for one plugin connection
// label.
type PluginStats struct {
	Label    string  `json:"label" yaml:"label"`
	Sessions int     `json:"sessions" yaml:"sessions"`
	Share    float64 `json:"share" yaml:"share"`
}

// PluginBreakdown is the plugin-connection distribution over the
// sessions-with-plugins export.
type PluginBreakdown struct {
	Plugins []PluginStats `json:"plugins" yaml:"plugins"`
	Total   int           `json:"total" yaml:"total"`
}

// DatasetSummary profiles the loaded dataset. Each section is nil when
// its table was absent or empty.
type DatasetSummary struct {
	Messages *MessageSummary  `json:"messages,omitempty" yaml:"messages,omitempty"`
	Sessions *SessionSummary  `json:"sessions,omitempty" yaml:"sessions,omitempty"`
	Plugins  *PluginBreakdown `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// SummarizeDataset computes the dataset summary from the normalized
// tables.
func SummarizeDataset(messages *MessageTable, sessions *SessionTable, plugins *PluginTable) DatasetSummary {
	return DatasetSummary{
		Messages: summarizeMessages(messages),
		Sessions: summarizeSessions(sessions),
		Plugins:  summarizePlugins(plugins),
	}
}

func summarizeMessages(t *MessageTable) *MessageSummary {
	if t.Empty() {
		return nil
	}

	summary := &MessageSummary{Total: len(t.Messages), Dropped: t.Dropped}
	sessionIDs := make([]string, 0, len(t.Messages))
	contactIDs := make([]string, 0, len(t.Messages))

	for i := range t.Messages {
		m := &t.Messages[i]
		switch m.Direction {
		case DirectionInbound:
			summary.Inbound++
		case DirectionOutbound:
			summary.Outbound++
		}
		sessionIDs = append(sessionIDs, m.SessionID)
		contactIDs = append(contactIDs, m.ContactID)

		if m.HasTime() {
			if summary.FirstMessage.IsZero() || m.CreatedAt.Before(summary.FirstMessage) {
				summary.FirstMessage = m.CreatedAt
			}
			if m.CreatedAt.After(summary.LastMessage) {
				summary.LastMessage = m.CreatedAt
			}
		}
	}

	summary.UniqueSessions = distinctCount(sessionIDs)
	summary.UniqueContacts = distinctCount(contactIDs)
	return summary
}

func summarizeSessions(t *SessionTable) *SessionSummary {
	if t.Empty() {
		return nil
	}

	summary := &SessionSummary{Total: len(t.Sessions), Dropped: t.Dropped}
	var durations, queues, ratings []*float64
	operators := make([]string, 0, len(t.Sessions))

	for i := range t.Sessions {
		s := &t.Sessions[i]
		durations = append(durations, s.DurationMinutes)
		queues = append(queues, s.QueueMinutes)
		ratings = append(ratings, s.Rating)
		operators = append(operators, s.Operator)
	}

	if m, ok := mean(positiveValues(durations)); ok {
		summary.AvgDurationMinutes = round2(m)
	}
	if m, ok := mean(positiveValues(queues)); ok {
		summary.AvgQueueMinutes = round2(m)
	}
	ratingValues := presentValues(ratings)
	summary.RatedSessions = len(ratingValues)
	if m, ok := mean(ratingValues); ok {
		summary.AvgRating = round2(m)
	}
	summary.UniqueOperators = distinctCount(operators)

	return summary
}

func summarizePlugins(t *PluginTable) *PluginBreakdown {
	if t.Empty() {
		return nil
	}

	counts := make(map[string]int)
	total := 0
	for i := range t.Sessions {
		label := t.Sessions[i].PluginLabel
		if label == "" {
			label = "(unlabeled)"
		}
		counts[label]++
		total++
	}

	breakdown := &PluginBreakdown{Total: total}
	for label, count := range counts {
		breakdown.Plugins = append(breakdown.Plugins, PluginStats{
			Label:    label,
			Sessions: count,
			Share:    round2(float64(count) / float64(total) * 100),
		})
	}
	sort.Slice(breakdown.Plugins, func(i, j int) bool {
		if breakdown.Plugins[i].Sessions != breakdown.Plugins[j].Sessions {
			return breakdown.Plugins[i].Sessions > breakdown.Plugins[j].Sessions
		}
		return breakdown.Plugins[i].Label < breakdown.Plugins[j].Label
	})

	return breakdown
}
