package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
	"github.com/talqui/cx-insight/internal/export"
)

var (
	reportFormat string
	reportOut    string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the full analytics report to a file",
	Long: `Run every aggregate view, the classifiers and the insight
summarizer, and write the assembled report in the chosen format
(json, yaml, md, csv, html).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(reportFormat)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		var report *internal.Report
		err = internal.ShowProgress(cmd.Context(), "Building report", func() error {
			report = internal.BuildReport(ds.Messages, ds.Sessions, ds.Plugins)
			return nil
		})
		if err != nil {
			return err
		}

		outPath := reportOut
		if outPath == "" {
			outPath = fmt.Sprintf("cx_report_%s.%s",
				report.GeneratedAt.Format("20060102_150405"), exporter.Extension())
		}

		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		file, err := os.Create(outPath)
		if err != nil {
			return &internal.ExportError{Format: reportFormat, Path: outPath, Err: err}
		}

		if err := exporter.Export(report, file); err != nil {
			_ = file.Close()
			return &internal.ExportError{Format: reportFormat, Path: outPath, Err: err}
		}
		if err := file.Close(); err != nil {
			return &internal.ExportError{Format: reportFormat, Path: outPath, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Report written to %s", outPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "json", "Report format (json, yaml, md, csv, html)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output file (default cx_report_<timestamp>.<ext>)")
}
