package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/categories"
	"github.com/wintrace/wintrace/config"
	"github.com/wintrace/wintrace/models"
	"github.com/wintrace/wintrace/storage"
)

var (
	reportPeriod string
	reportDate   string
	reportStart  string
	reportEnd    string
	reportJSON   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate persisted usage over a period",
	Long: `Report aggregates the persisted usage data over the selected period and
prints the ranked application list. The daemon does not need to be running;
the report reads the last persisted state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		snapshot, resolver, err := loadPersisted(cfg)
		if err != nil {
			return err
		}

		kind := calculations.PeriodKind(reportPeriod)
		var custom *calculations.CustomRange
		if reportStart != "" || reportEnd != "" {
			kind = calculations.PeriodCustom
			custom = &calculations.CustomRange{Start: reportStart, End: reportEnd}
		}

		date := reportDate
		if date == "" {
			date = models.DateKey(time.Now())
		}

		start, end := calculations.ResolveRange(date, kind, custom)
		report := calculations.Aggregate(snapshot, start, end, kind, resolver.Resolve)

		if reportJSON {
			return printJSON(report)
		}
		printReport(report)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportPeriod, "period", "p", "daily", "period (daily, weekly, monthly, yearly)")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "reference date (YYYY-MM-DD, default today)")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "custom range start (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "custom range end (YYYY-MM-DD)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(reportCmd)
}

// loadPersisted reads the usage blob and category overrides from disk.
func loadPersisted(cfg *config.Config) (models.UsageStore, *categories.Resolver, error) {
	usage, err := storage.New(cfg.UsageFilePath()).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load usage data: %w", err)
	}
	resolver, err := categories.NewResolver(cfg.CategoriesFilePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: category overrides unavailable: %v\n", err)
	}
	return usage, resolver, nil
}

func printJSON(v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printReport(report models.Report) {
	fmt.Printf("%s (%s)\n", report.Date, report.ViewMode)
	fmt.Printf("Total tracked: %s\n\n", formatSeconds(report.TotalDurationSeconds))
	if len(report.Apps) == 0 {
		fmt.Println("No activity recorded for this period.")
		return
	}
	for i, app := range report.Apps {
		fmt.Printf("%2d. %-30s %-14s %s\n", i+1, app.Name, app.Category,
			formatSeconds(app.DurationSeconds))
	}
}

func formatSeconds(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %02dm", seconds/3600, (seconds%3600)/60)
}
