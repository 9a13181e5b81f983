package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level profile of the loaded dataset",
	Long: `Show totals, direction split, unique contacts/sessions, session
averages and the plugin-connection breakdown for the loaded exports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		summary := internal.SummarizeDataset(ds.Messages, ds.Sessions, ds.Plugins)
		if summary.Messages == nil && summary.Sessions == nil && summary.Plugins == nil {
			internal.PrintWarning("No data loaded")
			return nil
		}

		printHeader("📊 Dataset Summary")

		if m := summary.Messages; m != nil {
			fmt.Println(titleStyle.Render("Messages"))
			fmt.Printf("  Total:           %s\n", countStyle.Render(strconv.Itoa(m.Total)))
			fmt.Printf("  Inbound:         %d\n", m.Inbound)
			fmt.Printf("  Outbound:        %d\n", m.Outbound)
			fmt.Printf("  Unique contacts: %d\n", m.UniqueContacts)
			fmt.Printf("  Unique sessions: %d\n", m.UniqueSessions)
			if !m.FirstMessage.IsZero() {
				fmt.Printf("  Period:          %s → %s\n",
					dimStyle.Render(m.FirstMessage.Format("2006-01-02")),
					dimStyle.Render(m.LastMessage.Format("2006-01-02")))
			}
			if m.Dropped > 0 {
				fmt.Printf("  Dropped rows:    %s\n", alertStyle.Render(strconv.Itoa(m.Dropped)))
			}
			fmt.Println()
		}

		if s := summary.Sessions; s != nil {
			fmt.Println(titleStyle.Render("Sessions"))
			fmt.Printf("  Total:             %s\n", countStyle.Render(strconv.Itoa(s.Total)))
			fmt.Printf("  Avg duration:      %.1f min\n", s.AvgDurationMinutes)
			fmt.Printf("  Avg queue time:    %.1f min\n", s.AvgQueueMinutes)
			fmt.Printf("  Avg rating:        %.2f (%d rated)\n", s.AvgRating, s.RatedSessions)
			fmt.Printf("  Unique operators:  %d\n", s.UniqueOperators)
			if s.Dropped > 0 {
				fmt.Printf("  Dropped rows:      %s\n", alertStyle.Render(strconv.Itoa(s.Dropped)))
			}
			fmt.Println()
		}

		if p := summary.Plugins; p != nil {
			fmt.Println(titleStyle.Render("Plugin Connections"))
			w, writeHeader := newTable("Plugin", "Sessions", "Share")
			writeHeader()
			for _, plugin := range p.Plugins {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.1f%%\t\n",
					labelStyle.Render(truncateName(plugin.Label, 40)),
					countStyle.Render(strconv.Itoa(plugin.Sessions)),
					plugin.Share)
			}
			_ = w.Flush()
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
