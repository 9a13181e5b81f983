package internal

import (
	"strconv"
	"strings"
	"time"
)

// Normalizer converts raw export rows into canonical tables. Every
// derived field is computed here exactly once; downstream aggregations
// only read.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// timestampLayouts are the formats the exports have been seen to use.
// The first match wins; anything else degrades to an unknown timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a timestamp tolerantly. A missing or unparseable
// value yields the zero time, never an error: the row survives and is
// simply excluded from time-bucketed aggregations.
func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseFloat parses an optional numeric field. Missing or non-numeric
// values degrade to nil.
func parseFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseInt parses an optional integer field, zero on failure.
func parseInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	// Exports occasionally write counts as floats ("12.0").
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

// NormalizeMessages converts raw message rows into a MessageTable.
// Rows without a message identifier are dropped and counted; no single
// bad row aborts normalization.
func (n *Normalizer) NormalizeMessages(rows []RawMessageRow) *MessageTable {
	table := &MessageTable{Messages: make([]Message, 0, len(rows))}

	for _, row := range rows {
		id := strings.TrimSpace(row.MessageID)
		if id == "" {
			table.Dropped++
			continue
		}

		msg := Message{
			ID:        id,
			SessionID: strings.TrimSpace(row.SessionID),
			ContactID: strings.TrimSpace(row.ContactID),
			Channel:   strings.TrimSpace(row.Channel),
			Content:   row.Content,
			Kind:      strings.TrimSpace(row.Kind),
			CreatedAt: parseTimestamp(row.CreatedAt),
		}

		switch strings.ToLower(strings.TrimSpace(row.Direction)) {
		case "inbound":
			msg.Direction = DirectionInbound
		case "outbound":
			msg.Direction = DirectionOutbound
		}

		if msg.HasTime() {
			msg.Date = msg.CreatedAt.Format("2006-01-02")
			msg.Hour = msg.CreatedAt.Hour()
			msg.Weekday = msg.CreatedAt.Weekday().String()
			msg.WeekdayNum = weekdayIndex(msg.CreatedAt)
			msg.Month = int(msg.CreatedAt.Month())
			msg.Day = msg.CreatedAt.Day()
		}

		msg.Category = messageCategory(msg.Kind)
		msg.ContentLength = len([]rune(msg.Content))
		msg.HasContent = strings.TrimSpace(msg.Content) != ""

		table.Messages = append(table.Messages, msg)
	}

	return table
}

// NormalizeSessions converts raw session rows into a SessionTable.
func (n *Normalizer) NormalizeSessions(rows []RawSessionRow) *SessionTable {
	table := &SessionTable{Sessions: make([]Session, 0, len(rows))}

	for _, row := range rows {
		id := strings.TrimSpace(row.SessionID)
		if id == "" {
			table.Dropped++
			continue
		}

		sess := Session{
			ID:             id,
			ContactID:      strings.TrimSpace(row.ContactID),
			Operator:       strings.TrimSpace(row.Operator),
			CloseReason:    strings.TrimSpace(row.CloseReason),
			MessageCount:   parseInt(row.MessageCount),
			QueuedAt:       parseTimestamp(row.QueuedAt),
			ManualAt:       parseTimestamp(row.ManualAt),
			ClosedAt:       parseTimestamp(row.ClosedAt),
			CreatedAt:      parseTimestamp(row.CreatedAt),
			UpdatedAt:      parseTimestamp(row.UpdatedAt),
			Rating:         parseFloat(row.Rating),
			Duration:       parseFloat(row.Duration),
			QueueDuration:  parseFloat(row.QueueDuration),
			ManualDuration: parseFloat(row.ManualDuration),
		}

		if sess.HasTime() {
			sess.Date = sess.CreatedAt.Format("2006-01-02")
			sess.Hour = sess.CreatedAt.Hour()
			sess.Weekday = sess.CreatedAt.Weekday().String()
			sess.WeekdayNum = weekdayIndex(sess.CreatedAt)
		}

		sess.DurationMinutes = secondsToMinutes(sess.Duration)
		sess.QueueMinutes = secondsToMinutes(sess.QueueDuration)
		sess.ManualMinutes = secondsToMinutes(sess.ManualDuration)

		if sess.Rating != nil {
			sess.RatingBucket = BucketRating(*sess.Rating)
		}

		table.Sessions = append(table.Sessions, sess)
	}

	return table
}

// NormalizePlugins converts raw sessions-with-plugins rows into a PluginTable.
func (n *Normalizer) NormalizePlugins(rows []RawPluginRow) *PluginTable {
	table := &PluginTable{Sessions: make([]PluginSession, 0, len(rows))}

	for _, row := range rows {
		id := strings.TrimSpace(row.SessionID)
		if id == "" {
			table.Dropped++
			continue
		}
		table.Sessions = append(table.Sessions, PluginSession{
			SessionID:   id,
			PluginLabel: strings.TrimSpace(row.PluginLabel),
			CreatedAt:   parseTimestamp(row.CreatedAt),
		})
	}

	return table
}

// secondsToMinutes derives a minutes field from an optional seconds field.
func secondsToMinutes(seconds *float64) *float64 {
	if seconds == nil {
		return nil
	}
	m := *seconds / 60
	return &m
}
