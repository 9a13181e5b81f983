package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

var sentimentShowSamples bool

// sentimentCmd represents the sentiment command
var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Classify inbound message sentiment",
	Long: `Classify every inbound text message as negative, neutral or
positive by keyword matching and show the totals, the daily trend and a
sample of negative messages for qualitative review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		breakdown := internal.SentimentAnalysis(ds.Messages)
		if breakdown == nil {
			internal.PrintWarning("No inbound text messages to analyze")
			return nil
		}

		printHeader(fmt.Sprintf("💬 Sentiment (%d message(s) analyzed)", breakdown.Analyzed))

		fmt.Printf("  Negative: %s (%.1f%%)\n", alertStyle.Render(strconv.Itoa(breakdown.Negatives())), breakdown.NegativeShare())
		fmt.Printf("  Neutral:  %d\n", breakdown.Neutrals())
		fmt.Printf("  Positive: %s\n", countStyle.Render(strconv.Itoa(breakdown.Positives())))
		fmt.Println()

		if len(breakdown.ByDate) > 0 {
			w, writeHeader := newTable("Date", "Negative", "Neutral", "Positive")
			writeHeader()
			for _, day := range breakdown.ByDate {
				_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t\n",
					dimStyle.Render(day.Date), day.Negative, day.Neutral, day.Positive)
			}
			_ = w.Flush()
			fmt.Println()
		}

		if sentimentShowSamples && len(breakdown.NegativeSamples) > 0 {
			fmt.Println(titleStyle.Render("Sample negative messages"))
			for _, sample := range breakdown.NegativeSamples {
				fmt.Printf("  • %s\n", truncateName(sample, 100))
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
	sentimentCmd.Flags().BoolVar(&sentimentShowSamples, "samples", false, "Show sample negative messages")
}
