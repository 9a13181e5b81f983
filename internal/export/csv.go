package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/talqui/cx-insight/internal"
)

// CSVExporter exports reports as flat section/key/metric/value rows so
// downstream tooling can ingest any view mechanically.
type CSVExporter struct{}

// Export exports a report to CSV format
func (e *CSVExporter) Export(report *internal.Report, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"section", "key", "metric", "value"}); err != nil {
		return err
	}

	rows := flattenReport(report)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func flattenReport(report *internal.Report) [][]string {
	var rows [][]string
	add := func(section, key, metric string, value interface{}) {
		rows = append(rows, []string{section, key, metric, fmt.Sprintf("%v", value)})
	}

	if m := report.Summary.Messages; m != nil {
		add("summary", "messages", "total", m.Total)
		add("summary", "messages", "inbound", m.Inbound)
		add("summary", "messages", "outbound", m.Outbound)
		add("summary", "messages", "unique_contacts", m.UniqueContacts)
		add("summary", "messages", "unique_sessions", m.UniqueSessions)
		add("summary", "messages", "dropped", m.Dropped)
	}
	if s := report.Summary.Sessions; s != nil {
		add("summary", "sessions", "total", s.Total)
		add("summary", "sessions", "avg_duration_minutes", s.AvgDurationMinutes)
		add("summary", "sessions", "avg_queue_minutes", s.AvgQueueMinutes)
		add("summary", "sessions", "avg_rating", s.AvgRating)
		add("summary", "sessions", "unique_operators", s.UniqueOperators)
		add("summary", "sessions", "dropped", s.Dropped)
	}
	if p := report.Summary.Plugins; p != nil {
		for _, plugin := range p.Plugins {
			add("plugins", plugin.Label, "sessions", plugin.Sessions)
			add("plugins", plugin.Label, "share", plugin.Share)
		}
	}

	if report.Operators != nil {
		for _, o := range report.Operators.Operators {
			add("operators", o.Operator, "sessions", o.Sessions)
			add("operators", o.Operator, "avg_duration", o.AvgDuration)
			add("operators", o.Operator, "median_duration", o.MedianDuration)
			add("operators", o.Operator, "avg_rating", o.AvgRating)
			add("operators", o.Operator, "total_ratings", o.TotalRatings)
			add("operators", o.Operator, "total_messages", o.TotalMessages)
			add("operators", o.Operator, "efficiency_sessions_per_hour", o.Efficiency)
			add("operators", o.Operator, "satisfaction_rate", o.SatisfactionRate)
		}
	}

	if report.ResponseTimes != nil {
		for _, h := range report.ResponseTimes.Hourly {
			key := fmt.Sprintf("hour_%d", h.Hour)
			add("response_times", key, "sessions", h.Sessions)
			add("response_times", key, "avg_queue", h.AvgQueue)
			add("response_times", key, "avg_duration", h.AvgDuration)
		}
		for _, d := range report.ResponseTimes.Weekly {
			add("response_times", d.Weekday, "sessions", d.Sessions)
			add("response_times", d.Weekday, "avg_queue", d.AvgQueue)
			add("response_times", d.Weekday, "avg_duration", d.AvgDuration)
		}
	}

	if report.Channels != nil {
		for _, c := range report.Channels.Channels {
			add("channels", c.Channel, "total_messages", c.TotalMessages)
			add("channels", c.Channel, "unique_sessions", c.UniqueSessions)
			add("channels", c.Channel, "unique_contacts", c.UniqueContacts)
			add("channels", c.Channel, "messages_per_session", c.MessagesPerSession)
		}
	}

	if report.Resolution != nil {
		for _, r := range report.Resolution.CloseReasons {
			add("close_reasons", r.Reason, "sessions", r.Sessions)
			add("close_reasons", r.Reason, "avg_duration", r.AvgDuration)
			add("close_reasons", r.Reason, "avg_messages", r.AvgMessages)
			add("close_reasons", r.Reason, "avg_rating", r.AvgRating)
		}
		for _, band := range report.Resolution.DurationBands {
			add("duration_bands", band.Label, "sessions", band.Sessions)
			add("duration_bands", band.Label, "ratings", band.Ratings)
			add("duration_bands", band.Label, "avg_rating", band.AvgRating)
		}
	}

	if report.Peaks != nil {
		for _, hv := range report.Peaks.Hourly {
			key := fmt.Sprintf("hour_%d", hv.Hour)
			add("peak_volume", key, "inbound", hv.Inbound)
			add("peak_volume", key, "outbound", hv.Outbound)
			add("peak_volume", key, "total", hv.Total)
		}
		for _, h := range report.Peaks.PeakHours {
			add("peak_volume", fmt.Sprintf("hour_%d", h), "peak", true)
		}
	}

	if report.Sentiment != nil {
		add("sentiment", "overall", "analyzed", report.Sentiment.Analyzed)
		add("sentiment", "overall", "negative", report.Sentiment.Totals[internal.SentimentNegative])
		add("sentiment", "overall", "neutral", report.Sentiment.Totals[internal.SentimentNeutral])
		add("sentiment", "overall", "positive", report.Sentiment.Totals[internal.SentimentPositive])
		for _, ds := range report.Sentiment.ByDate {
			add("sentiment", ds.Date, "negative", ds.Negative)
			add("sentiment", ds.Date, "neutral", ds.Neutral)
			add("sentiment", ds.Date, "positive", ds.Positive)
		}
	}

	if report.Segments != nil {
		for _, tier := range report.Segments.Tiers {
			add("segments", string(tier.Tier), "contacts", tier.Contacts)
			add("segments", string(tier.Tier), "avg_sessions", tier.AvgSessions)
			add("segments", string(tier.Tier), "avg_messages", tier.AvgMessages)
			add("segments", string(tier.Tier), "avg_relationship_days", tier.AvgRelationshipDays)
		}
	}

	for i, insight := range report.Insights {
		add("insights", fmt.Sprintf("%d", i+1), "text", insight)
	}

	return rows
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
