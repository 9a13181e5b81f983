package internal

import (
	"time"
)

// Report bundles every aggregate view, the classifier outputs and the
// insight list into one immutable snapshot for the renderers and
// exporters. Nil sections mean "no data", never "zero".
type Report struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Summary DatasetSummary `json:"summary" yaml:"summary"`

	Operators     *OperatorPerformance  `json:"operators,omitempty" yaml:"operators,omitempty"`
	ResponseTimes *ResponseTimeProfile  `json:"response_times,omitempty" yaml:"response_times,omitempty"`
	Channels      *ChannelEfficiency    `json:"channels,omitempty" yaml:"channels,omitempty"`
	Resolution    *ResolutionPatterns   `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Peaks         *PeakVolumeProfile    `json:"peaks,omitempty" yaml:"peaks,omitempty"`
	Sentiment     *SentimentBreakdown   `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Segments      *CustomerSegmentation `json:"segments,omitempty" yaml:"segments,omitempty"`

	Insights []string `json:"insights" yaml:"insights"`
}

// BuildReport runs every aggregation over the normalized tables. Each
// view is a pure function of its input table, so the order here is
// presentation order, nothing more.
func BuildReport(messages *MessageTable, sessions *SessionTable, plugins *PluginTable) *Report {
	report := &Report{
		GeneratedAt: time.Now(),
		Summary:     SummarizeDataset(messages, sessions, plugins),
	}

	report.Operators = OperatorPerformanceAnalysis(sessions)
	report.ResponseTimes = ResponseTimeAnalysis(sessions)
	report.Channels = ChannelEfficiencyAnalysis(messages)
	report.Resolution = ResolutionPatternAnalysis(sessions)
	report.Peaks = PeakVolumeAnalysis(messages)
	report.Sentiment = SentimentAnalysis(messages)
	report.Segments = CustomerSegmentationAnalysis(sessions)

	report.Insights = GenerateInsights(report.Operators, report.Sentiment, report.Peaks, report.Segments)

	return report
}
