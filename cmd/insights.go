package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

// insightsCmd represents the insights command
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show headline findings from the dataset",
	Long: `Run the aggregate views and print the headline findings: best
rated and most efficient operators, negative sentiment share, peak hours
and the frequent-customer share.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		operators := internal.OperatorPerformanceAnalysis(ds.Sessions)
		sentiment := internal.SentimentAnalysis(ds.Messages)
		peaks := internal.PeakVolumeAnalysis(ds.Messages)
		segments := internal.CustomerSegmentationAnalysis(ds.Sessions)

		insights := internal.GenerateInsights(operators, sentiment, peaks, segments)
		if len(insights) == 0 {
			internal.PrintWarning("Not enough data for insights")
			return nil
		}

		printHeader("💡 Insights")
		for _, insight := range insights {
			fmt.Printf("  • %s\n", insight)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
