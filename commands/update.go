package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dialworks/campaign-sheets/config"
	"github.com/dialworks/campaign-sheets/report"
	"github.com/dialworks/campaign-sheets/sheet"
	"github.com/dialworks/campaign-sheets/updater"
)

var updateOptions = struct {
	worksheet string
	mode      string
	day       int
}{
	mode: string(report.ModeCTC),
	day:  1,
}

var updateCmd = &cobra.Command{
	Use:   "update --worksheet <name> [--mode <mode>] [--day <1..5>] <report file>...",
	Short: "Updates the campaign worksheet from one or more report files",
	Long: `Aggregates each report file's per-campaign metrics and writes them into the
day's columns of the named worksheet, matching report rows to worksheet rows
by campaign name with a fallback alias lookup.

Examples:
  campaign-sheets update --worksheet "Week 34" --mode "CTC" --day 2 monday.csv
  campaign-sheets update --worksheet "Week 34" --mode "Log type" --day 1 logs.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateOptions.worksheet, "worksheet", "", "Name of the worksheet to update (as it appears in Google Sheets)")
	updateCmd.Flags().StringVar(&updateOptions.mode, "mode", updateOptions.mode, `Update type - "CTC" or "Log type"`)
	updateCmd.Flags().IntVar(&updateOptions.day, "day", updateOptions.day, "Day of the week (1..5)")
	updateCmd.MarkFlagRequired("worksheet")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	mode, err := report.ParseMode(updateOptions.mode)
	if err != nil {
		return err
	}

	if updateOptions.day < 1 || updateOptions.day > 5 {
		return fmt.Errorf("invalid day %d - expected a value in the range 1..5", updateOptions.day)
	}

	files := []updater.File{}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("unable to open report file '%s' (%v)", path, err)
		}

		defer f.Close()

		files = append(files, updater.File{
			Name:    path,
			Content: f,
		})
	}

	client, err := sheet.NewClient(cmd.Context(), cfg.Credentials, cfg.SpreadsheetId)
	if err != nil {
		return err
	}

	opts := updater.Options{
		Client:    client,
		Worksheet: updateOptions.worksheet,
		Settings:  cfg.SettingsWorksheet,
		Mode:      mode,
		Day:       updateOptions.day - 1,
		Retry:     cfg.Retry,
		Reporter:  updater.NewLogReporter(logger),
	}

	return updater.Process(cmd.Context(), opts, files)
}
