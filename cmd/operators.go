package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

// operatorsCmd represents the operators command
var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "Show per-operator performance metrics",
	Long: `Show per-operator session counts, handling times, ratings,
efficiency (sessions per busy hour) and satisfaction rate (share of
4-5 star ratings).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		perf := internal.OperatorPerformanceAnalysis(ds.Sessions)
		if perf == nil {
			internal.PrintWarning("No operator-attributed sessions in the dataset")
			return nil
		}

		printHeader(fmt.Sprintf("👤 Operator Performance (%d operator(s))", len(perf.Operators)))

		w, writeHeader := newTable("Operator", "Sessions", "Avg Dur (s)", "Med Dur (s)", "Avg Queue (s)", "Avg Rating", "Rated", "Eff (sess/h)", "Satisfaction")
		writeHeader()
		for _, o := range perf.Operators {
			rating := "—"
			satisfaction := "—"
			if o.TotalRatings > 0 {
				rating = fmt.Sprintf("%.2f", o.AvgRating)
				satisfaction = fmt.Sprintf("%.1f%%", o.SatisfactionRate)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%s\t%d\t%.1f\t%s\t\n",
				labelStyle.Render(truncateName(o.Operator, 30)),
				countStyle.Render(strconv.Itoa(o.Sessions)),
				o.AvgDuration,
				o.MedianDuration,
				o.AvgQueueTime,
				rating,
				o.TotalRatings,
				o.Efficiency,
				satisfaction)
		}
		_ = w.Flush()
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
