package internal

import (
	"sort"
	"strings"
)

// SentimentLabel is the rule-based classification of a message.
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentPositive SentimentLabel = "positive"
)

// The keyword vocabularies are fixed and language-specific (Brazilian
// Portuguese, the deployment's language). Matching is plain substring
// matching after lowercasing; multi-word entries match as a unit.
// Intentionally naive: extending the semantics is a new feature, not a
// tweak.
var problemKeywords = []string{
	"problema", "erro", "falha", "ruim", "péssimo", "terrível", "horrível",
	"demora", "lento", "não funciona", "quebrado", "defeito", "reclamação",
	"insatisfeito", "cancelar", "reembolso", "devolver",
}

var positiveKeywords = []string{
	"obrigado", "obrigada", "excelente", "ótimo", "perfeito", "maravilhoso",
	"satisfeito", "feliz", "recomendo", "parabéns", "adorei", "amei",
}

// negativeSampleCap bounds the qualitative-review sample.
const negativeSampleCap = 10

// ClassifySentiment labels a message body. The label depends only on the
// content: missing content, ties and keyword-free text all resolve to
// neutral.
func ClassifySentiment(content string) SentimentLabel {
	if strings.TrimSpace(content) == "" {
		return SentimentNeutral
	}

	lower := strings.ToLower(content)
	negative := countKeywords(lower, problemKeywords)
	positive := countKeywords(lower, positiveKeywords)

	switch {
	case negative > positive:
		return SentimentNegative
	case positive > negative:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// countKeywords counts how many vocabulary entries occur in text.
func countKeywords(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

// MessageSentiment pairs a message with its label.
type MessageSentiment struct {
	MessageID string         `json:"message_id" yaml:"message_id"`
	Label     SentimentLabel `json:"label" yaml:"label"`
}

// DateSentiment is the per-date label breakdown.
type DateSentiment struct {
	Date     string `json:"date" yaml:"date"`
	Negative int    `json:"negative" yaml:"negative"`
	Neutral  int    `json:"neutral" yaml:"neutral"`
	Positive int    `json:"positive" yaml:"positive"`
}

// SentimentBreakdown is the sentiment view over inbound messages with
// content.
type SentimentBreakdown struct {
	Analyzed        int                    `json:"analyzed" yaml:"analyzed"`
	Labels          []MessageSentiment     `json:"labels" yaml:"labels"`
	Totals          map[SentimentLabel]int `json:"totals" yaml:"totals"`
	ByDate          []DateSentiment        `json:"by_date" yaml:"by_date"`
	NegativeSamples []string               `json:"negative_samples" yaml:"negative_samples"`
}

// Negatives returns the count of messages labeled negative.
func (b *SentimentBreakdown) Negatives() int { return b.Totals[SentimentNegative] }

// Neutrals returns the count of messages labeled neutral.
func (b *SentimentBreakdown) Neutrals() int { return b.Totals[SentimentNeutral] }

// Positives returns the count of messages labeled positive.
func (b *SentimentBreakdown) Positives() int { return b.Totals[SentimentPositive] }

// NegativeShare returns the percentage of analyzed messages labeled
// negative, 0 for an empty analysis.
func (b *SentimentBreakdown) NegativeShare() float64 {
	if b == nil || b.Analyzed == 0 {
		return 0
	}
	return float64(b.Totals[SentimentNegative]) / float64(b.Analyzed) * 100
}

// SentimentAnalysis classifies every inbound message that carries
// content. Returns nil when no such message exists.
func SentimentAnalysis(t *MessageTable) *SentimentBreakdown {
	if t.Empty() {
		return nil
	}

	breakdown := &SentimentBreakdown{
		Totals: map[SentimentLabel]int{
			SentimentNegative: 0,
			SentimentNeutral:  0,
			SentimentPositive: 0,
		},
	}
	byDate := make(map[string]*DateSentiment)

	for i := range t.Messages {
		m := &t.Messages[i]
		if m.Direction != DirectionInbound || !m.HasContent {
			continue
		}

		label := ClassifySentiment(m.Content)
		breakdown.Analyzed++
		breakdown.Labels = append(breakdown.Labels, MessageSentiment{MessageID: m.ID, Label: label})
		breakdown.Totals[label]++

		if label == SentimentNegative && len(breakdown.NegativeSamples) < negativeSampleCap {
			breakdown.NegativeSamples = append(breakdown.NegativeSamples, m.Content)
		}

		if m.Date != "" {
			ds := byDate[m.Date]
			if ds == nil {
				ds = &DateSentiment{Date: m.Date}
				byDate[m.Date] = ds
			}
			switch label {
			case SentimentNegative:
				ds.Negative++
			case SentimentPositive:
				ds.Positive++
			default:
				ds.Neutral++
			}
		}
	}

	if breakdown.Analyzed == 0 {
		return nil
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		breakdown.ByDate = append(breakdown.ByDate, *byDate[d])
	}

	return breakdown
}
