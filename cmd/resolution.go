package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

// resolutionCmd represents the resolution command
var resolutionCmd = &cobra.Command{
	Use:   "resolution",
	Short: "Show close reasons and duration bands",
	Long: `Group sessions by close reason and by duration band (Very Fast
through Very Long) and show how ratings correlate with handling time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		patterns := internal.ResolutionPatternAnalysis(ds.Sessions)
		if patterns == nil {
			internal.PrintWarning("No sessions in the dataset")
			return nil
		}

		printHeader("🏁 Resolution Patterns")

		if len(patterns.CloseReasons) > 0 {
			fmt.Println(titleStyle.Render("Close Reasons"))
			w, writeHeader := newTable("Reason", "Sessions", "Avg Dur (s)", "Avg Msgs", "Avg Rating")
			writeHeader()
			for _, r := range patterns.CloseReasons {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%.2f\t\n",
					labelStyle.Render(truncateName(r.Reason, 30)),
					countStyle.Render(strconv.Itoa(r.Sessions)),
					r.AvgDuration,
					r.AvgMessages,
					r.AvgRating)
			}
			_ = w.Flush()
			fmt.Println()
		}

		fmt.Println(titleStyle.Render("Duration Bands"))
		bw, writeBandHeader := newTable("Band", "Sessions", "Ratings", "Avg Rating")
		writeBandHeader()
		for _, band := range patterns.DurationBands {
			rating := "—"
			if band.Ratings > 0 {
				rating = fmt.Sprintf("%.2f", band.AvgRating)
			}
			_, _ = fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t\n",
				labelStyle.Render(band.Label), band.Sessions, band.Ratings, rating)
		}
		_ = bw.Flush()
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolutionCmd)
}
