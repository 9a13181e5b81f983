package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/talqui/cx-insight/internal"
)

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct{}

// Export exports a report to Markdown format
func (e *MarkdownExporter) Export(report *internal.Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# CX Report\n\n")
	_, _ = fmt.Fprintf(w, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	writeSummaryMD(w, report)
	writeInsightsMD(w, report.Insights)
	writeOperatorsMD(w, report.Operators)
	writeChannelsMD(w, report.Channels)
	writePeaksMD(w, report.Peaks)
	writeSentimentMD(w, report.Sentiment)
	writeSegmentsMD(w, report.Segments)
	writeResolutionMD(w, report.Resolution)

	return nil
}

func writeSummaryMD(w io.Writer, report *internal.Report) {
	_, _ = fmt.Fprintf(w, "## Summary\n\n")

	if m := report.Summary.Messages; m != nil {
		_, _ = fmt.Fprintf(w, "**Messages:** %d total, %d inbound, %d outbound, %d contacts, %d sessions\n\n",
			m.Total, m.Inbound, m.Outbound, m.UniqueContacts, m.UniqueSessions)
	}
	if s := report.Summary.Sessions; s != nil {
		_, _ = fmt.Fprintf(w, "**Sessions:** %d total, avg duration %.1f min, avg queue %.1f min, avg rating %.2f, %d operators\n\n",
			s.Total, s.AvgDurationMinutes, s.AvgQueueMinutes, s.AvgRating, s.UniqueOperators)
	}
	if report.Summary.Messages == nil && report.Summary.Sessions == nil {
		_, _ = fmt.Fprintf(w, "No data loaded.\n\n")
	}
}

func writeInsightsMD(w io.Writer, insights []string) {
	if len(insights) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "## Insights\n\n")
	for _, insight := range insights {
		_, _ = fmt.Fprintf(w, "- %s\n", insight)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func writeOperatorsMD(w io.Writer, ops *internal.OperatorPerformance) {
	if ops == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Operator Performance\n\n")
	_, _ = fmt.Fprintf(w, "| Operator | Sessions | Avg Duration (s) | Avg Rating | Efficiency (sess/h) | Satisfaction |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|---|\n")
	for _, o := range ops.Operators {
		_, _ = fmt.Fprintf(w, "| %s | %d | %.1f | %.2f | %.1f | %.1f%% |\n",
			escapeCell(o.Operator), o.Sessions, o.AvgDuration, o.AvgRating, o.Efficiency, o.SatisfactionRate)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func writeChannelsMD(w io.Writer, channels *internal.ChannelEfficiency) {
	if channels == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Channel Efficiency\n\n")
	_, _ = fmt.Fprintf(w, "| Channel | Messages | Sessions | Contacts | Msg/Session |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|\n")
	for _, c := range channels.Channels {
		_, _ = fmt.Fprintf(w, "| %s | %d | %d | %d | %.2f |\n",
			escapeCell(c.Channel), c.TotalMessages, c.UniqueSessions, c.UniqueContacts, c.MessagesPerSession)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func writePeaksMD(w io.Writer, peaks *internal.PeakVolumeProfile) {
	if peaks == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Peak Hours\n\n")
	hours := make([]string, 0, len(peaks.PeakHours))
	for _, h := range peaks.PeakHours {
		hours = append(hours, fmt.Sprintf("%dh", h))
	}
	_, _ = fmt.Fprintf(w, "Peak hours (volume at or above the 80th percentile): %s\n\n", strings.Join(hours, ", "))

	_, _ = fmt.Fprintf(w, "| Hour | Inbound | Outbound | Total |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|\n")
	for _, hv := range peaks.Hourly {
		_, _ = fmt.Fprintf(w, "| %dh | %d | %d | %d |\n", hv.Hour, hv.Inbound, hv.Outbound, hv.Total)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func writeSentimentMD(w io.Writer, sentiment *internal.SentimentBreakdown) {
	if sentiment == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Sentiment\n\n")
	_, _ = fmt.Fprintf(w, "Analyzed %d inbound message(s): %d negative, %d neutral, %d positive.\n\n",
		sentiment.Analyzed,
		sentiment.Totals[internal.SentimentNegative],
		sentiment.Totals[internal.SentimentNeutral],
		sentiment.Totals[internal.SentimentPositive])

	if len(sentiment.NegativeSamples) > 0 {
		_, _ = fmt.Fprintf(w, "Sample negative messages:\n\n")
		for _, sample := range sentiment.NegativeSamples {
			_, _ = fmt.Fprintf(w, "- %s\n", escapeCell(truncate(sample, 100)))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}
}

func writeSegmentsMD(w io.Writer, segments *internal.CustomerSegmentation) {
	if segments == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Customer Segments\n\n")
	_, _ = fmt.Fprintf(w, "| Tier | Contacts | Avg Sessions | Avg Messages | Avg Relationship (days) |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|\n")
	for _, tier := range segments.Tiers {
		_, _ = fmt.Fprintf(w, "| %s | %d | %.2f | %.2f | %.2f |\n",
			tier.Tier, tier.Contacts, tier.AvgSessions, tier.AvgMessages, tier.AvgRelationshipDays)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func writeResolutionMD(w io.Writer, resolution *internal.ResolutionPatterns) {
	if resolution == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "## Resolution Patterns\n\n")

	if len(resolution.CloseReasons) > 0 {
		_, _ = fmt.Fprintf(w, "| Close Reason | Sessions | Avg Duration (s) | Avg Messages | Avg Rating |\n")
		_, _ = fmt.Fprintf(w, "|---|---|---|---|---|\n")
		for _, r := range resolution.CloseReasons {
			_, _ = fmt.Fprintf(w, "| %s | %d | %.1f | %.2f | %.2f |\n",
				escapeCell(r.Reason), r.Sessions, r.AvgDuration, r.AvgMessages, r.AvgRating)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	_, _ = fmt.Fprintf(w, "| Duration Band | Sessions | Ratings | Avg Rating |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|\n")
	for _, band := range resolution.DurationBands {
		_, _ = fmt.Fprintf(w, "| %s | %d | %d | %.2f |\n", band.Label, band.Sessions, band.Ratings, band.AvgRating)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

// escapeCell keeps table-breaking characters out of markdown cells.
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
