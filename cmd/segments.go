package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

var segmentsShowJourneys bool

// segmentsCmd represents the segments command
var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Segment customers by engagement tier",
	Long: `Group sessions by contact, classify each contact into an
engagement tier (Single-Contact, Occasional, Regular, Frequent) and show
the per-tier aggregates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		seg := internal.CustomerSegmentationAnalysis(ds.Sessions)
		if seg == nil {
			internal.PrintWarning("No contact-attributed sessions to segment")
			return nil
		}

		printHeader(fmt.Sprintf("🧭 Customer Segments (%d contact(s))", seg.Contacts))

		w, writeHeader := newTable("Tier", "Contacts", "Avg Sessions", "Avg Messages", "Avg Days")
		writeHeader()
		for _, tier := range seg.Tiers {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t\n",
				labelStyle.Render(string(tier.Tier)),
				countStyle.Render(strconv.Itoa(tier.Contacts)),
				tier.AvgSessions,
				tier.AvgMessages,
				tier.AvgRelationshipDays)
		}
		_ = w.Flush()
		fmt.Println()
		fmt.Printf("  Frequent contacts: %.1f%% of the base\n\n", seg.FrequentShare())

		if segmentsShowJourneys {
			jw, writeJourneyHeader := newTable("Contact", "Tier", "Sessions", "Messages", "Days")
			writeJourneyHeader()
			for _, j := range seg.Journeys {
				_, _ = fmt.Fprintf(jw, "%s\t%s\t%d\t%d\t%d\t\n",
					dimStyle.Render(truncateName(j.ContactID, 20)),
					string(j.Tier), j.Sessions, j.Messages, j.RelationshipDays)
			}
			_ = jw.Flush()
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
	segmentsCmd.Flags().BoolVar(&segmentsShowJourneys, "journeys", false, "Show the per-contact journey table")
}
