package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

var peaksShowHeatmap bool

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// peaksCmd represents the peaks command
var peaksCmd = &cobra.Command{
	Use:   "peaks",
	Short: "Show hourly message volume and peak hours",
	Long: `Pivot message volume by hour of day and direction and mark the
peak hours: every hour whose total volume is at or above the 80th
percentile of the hourly totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		peaks := internal.PeakVolumeAnalysis(ds.Messages)
		if peaks == nil {
			internal.PrintWarning("No timestamped messages in the dataset")
			return nil
		}

		printHeader("📈 Peak Volume")

		hours := make([]string, 0, len(peaks.PeakHours))
		for _, h := range peaks.PeakHours {
			hours = append(hours, fmt.Sprintf("%dh", h))
		}
		fmt.Printf("  Peak hours: %s %s\n\n",
			countStyle.Render(strings.Join(hours, ", ")),
			dimStyle.Render(fmt.Sprintf("(threshold %.1f msgs)", peaks.Threshold)))

		peakSet := make(map[int]bool, len(peaks.PeakHours))
		for _, h := range peaks.PeakHours {
			peakSet[h] = true
		}

		w, writeHeader := newTable("Hour", "Inbound", "Outbound", "Total", "")
		writeHeader()
		for _, hv := range peaks.Hourly {
			marker := ""
			if peakSet[hv.Hour] {
				marker = alertStyle.Render("peak")
			}
			_, _ = fmt.Fprintf(w, "%dh\t%d\t%d\t%d\t%s\t\n",
				hv.Hour, hv.Inbound, hv.Outbound, hv.Total, marker)
		}
		_ = w.Flush()
		fmt.Println()

		if peaksShowHeatmap && len(peaks.Heatmap) > 0 {
			hw, writeHeatmapHeader := newTable("Weekday", "Hour", "Volume")
			writeHeatmapHeader()
			for _, cell := range peaks.Heatmap {
				day := "—"
				if cell.WeekdayNum >= 0 && cell.WeekdayNum < len(weekdayNames) {
					day = weekdayNames[cell.WeekdayNum]
				}
				_, _ = fmt.Fprintf(hw, "%s\t%dh\t%d\t\n", labelStyle.Render(day), cell.Hour, cell.Volume)
			}
			_ = hw.Flush()
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(peaksCmd)
	peaksCmd.Flags().BoolVar(&peaksShowHeatmap, "heatmap", false, "Show the weekday/hour volume matrix")
}
