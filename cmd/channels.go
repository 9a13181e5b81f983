package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Compare message channels",
	Long: `Show per-channel message volume, unique sessions and contacts,
and messages per session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		eff := internal.ChannelEfficiencyAnalysis(ds.Messages)
		if eff == nil {
			internal.PrintWarning("No channel-attributed messages in the dataset")
			return nil
		}

		printHeader(fmt.Sprintf("📡 Channel Efficiency (%d channel(s))", len(eff.Channels)))

		w, writeHeader := newTable("Channel", "Messages", "Sessions", "Contacts", "Msg/Session")
		writeHeader()
		for _, c := range eff.Channels {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t\n",
				labelStyle.Render(truncateName(c.Channel, 30)),
				countStyle.Render(strconv.Itoa(c.TotalMessages)),
				c.UniqueSessions,
				c.UniqueContacts,
				c.MessagesPerSession)
		}
		_ = w.Flush()
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(channelsCmd)
}
