package internal

import (
	"time"
)

// Direction identifies who sent a message.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// RatingBucket is a coarse satisfaction band derived from a 1-5 star rating.
type RatingBucket string

const (
	RatingPoor      RatingBucket = "Poor"
	RatingRegular   RatingBucket = "Regular"
	RatingGood      RatingBucket = "Good"
	RatingExcellent RatingBucket = "Excellent"
)

// Message is a canonical chat event after normalization. Derived fields
// are computed once by the Normalizer and never re-derived downstream.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	SessionID string    `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	ContactID string    `json:"contact_id,omitempty" yaml:"contact_id,omitempty"`
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
	Channel   string    `json:"channel,omitempty" yaml:"channel,omitempty"`
	Content   string    `json:"content,omitempty" yaml:"content,omitempty"`
	Kind      string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`

	// Derived time buckets. Valid only when HasTime reports true.
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Hour       int    `json:"hour" yaml:"hour"`
	Weekday    string `json:"weekday,omitempty" yaml:"weekday,omitempty"`
	WeekdayNum int    `json:"weekday_num" yaml:"weekday_num"`
	Month      int    `json:"month" yaml:"month"`
	Day        int    `json:"day" yaml:"day"`

	// Derived content fields.
	Category      string `json:"category,omitempty" yaml:"category,omitempty"`
	ContentLength int    `json:"content_length" yaml:"content_length"`
	HasContent    bool   `json:"has_content" yaml:"has_content"`
}

// HasTime reports whether the creation timestamp parsed successfully.
func (m *Message) HasTime() bool {
	return !m.CreatedAt.IsZero()
}

// Session is a canonical support interaction after normalization.
// Nullable numeric fields are pointers; a nil pointer means the source
// value was missing or unparseable.
type Session struct {
	ID           string `json:"id" yaml:"id"`
	ContactID    string `json:"contact_id,omitempty" yaml:"contact_id,omitempty"`
	Operator     string `json:"operator,omitempty" yaml:"operator,omitempty"`
	CloseReason  string `json:"close_reason,omitempty" yaml:"close_reason,omitempty"`
	MessageCount int    `json:"message_count" yaml:"message_count"`

	QueuedAt  time.Time `json:"queued_at,omitempty" yaml:"queued_at,omitempty"`
	ManualAt  time.Time `json:"manual_at,omitempty" yaml:"manual_at,omitempty"`
	ClosedAt  time.Time `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`

	Rating         *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Duration       *float64 `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	QueueDuration  *float64 `json:"queue_duration_seconds,omitempty" yaml:"queue_duration_seconds,omitempty"`
	ManualDuration *float64 `json:"manual_duration_seconds,omitempty" yaml:"manual_duration_seconds,omitempty"`

	// Derived time buckets from CreatedAt. Valid only when HasTime is true.
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Hour       int    `json:"hour" yaml:"hour"`
	Weekday    string `json:"weekday,omitempty" yaml:"weekday,omitempty"`
	WeekdayNum int    `json:"weekday_num" yaml:"weekday_num"`

	// Derived duration/rating fields.
	DurationMinutes *float64     `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	QueueMinutes    *float64     `json:"queue_minutes,omitempty" yaml:"queue_minutes,omitempty"`
	ManualMinutes   *float64     `json:"manual_minutes,omitempty" yaml:"manual_minutes,omitempty"`
	RatingBucket    RatingBucket `json:"rating_bucket,omitempty" yaml:"rating_bucket,omitempty"`
}

// HasTime reports whether the creation timestamp parsed successfully.
func (s *Session) HasTime() bool {
	return !s.CreatedAt.IsZero()
}

// HasDuration reports whether the session carries a usable (positive)
// total duration. Zero and negative source values are invalid and must
// stay out of duration averages.
func (s *Session) HasDuration() bool {
	return s.Duration != nil && *s.Duration > 0
}

// PluginSession is one row of the sessions-with-plugins export.
type PluginSession struct {
	SessionID   string    `json:"session_id" yaml:"session_id"`
	PluginLabel string    `json:"plugin_label,omitempty" yaml:"plugin_label,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// MessageTable holds normalized messages plus the count of raw rows
// dropped during normalization.
type MessageTable struct {
	Messages []Message `json:"messages" yaml:"messages"`
	Dropped  int       `json:"dropped" yaml:"dropped"`
}

// Empty reports whether the table has no rows.
func (t *MessageTable) Empty() bool {
	return t == nil || len(t.Messages) == 0
}

// SessionTable holds normalized sessions plus the dropped-row count.
type SessionTable struct {
	Sessions []Session `json:"sessions" yaml:"sessions"`
	Dropped  int       `json:"dropped" yaml:"dropped"`
}

// Empty reports whether the table has no rows.
func (t *SessionTable) Empty() bool {
	return t == nil || len(t.Sessions) == 0
}

// PluginTable holds normalized plugin-session rows.
type PluginTable struct {
	Sessions []PluginSession `json:"sessions" yaml:"sessions"`
	Dropped  int             `json:"dropped" yaml:"dropped"`
}

// Empty reports whether the table has no rows.
func (t *PluginTable) Empty() bool {
	return t == nil || len(t.Sessions) == 0
}

// RawMessageRow is one untyped messages-export row as read from the
// source. All fields are raw strings; coercion happens in the Normalizer.
type RawMessageRow struct {
	MessageID string
	SessionID string
	ContactID string
	Direction string
	Channel   string
	Content   string
	Kind      string
	CreatedAt string
}

// RawSessionRow is one untyped sessions-export row.
type RawSessionRow struct {
	SessionID      string
	ContactID      string
	Operator       string
	QueuedAt       string
	ManualAt       string
	ClosedAt       string
	CreatedAt      string
	UpdatedAt      string
	Rating         string
	MessageCount   string
	Duration       string
	QueueDuration  string
	ManualDuration string
	CloseReason    string
}

// RawPluginRow is one untyped sessions-with-plugins row.
type RawPluginRow struct {
	SessionID   string
	PluginLabel string
	CreatedAt   string
}

// BucketRating maps a 1-5 star rating onto its satisfaction band using
// half-open intervals: only ratings of 4 and above count as Excellent.
func BucketRating(rating float64) RatingBucket {
	switch {
	case rating < 2:
		return RatingPoor
	case rating < 3:
		return RatingRegular
	case rating < 4:
		return RatingGood
	default:
		return RatingExcellent
	}
}

// messageCategory maps a content kind onto its display category.
func messageCategory(kind string) string {
	switch kind {
	case "text":
		return "Text"
	case "file":
		return "File"
	case "event":
		return "Event"
	case "image":
		return "Image"
	case "audio":
		return "Audio"
	case "video":
		return "Video"
	default:
		return "Other"
	}
}

// weekdayIndex returns the weekday of t with Monday as 0 and Sunday as 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
