package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/models"
)

var recapJSON bool

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var recapCmd = &cobra.Command{
	Use:   "recap [year]",
	Short: "Build the yearly usage recap",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		year := time.Now().Year()
		if len(args) == 1 {
			year, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
		}

		snapshot, resolver, err := loadPersisted(cfg)
		if err != nil {
			return err
		}

		recap := calculations.Recap(snapshot, year, resolver.Resolve)
		if recapJSON {
			return printJSON(recap)
		}
		printRecap(recap)
		return nil
	},
}

func init() {
	recapCmd.Flags().BoolVar(&recapJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(recapCmd)
}

func printRecap(recap models.RecapReport) {
	fmt.Printf("Recap %d\n", recap.Year)
	fmt.Printf("Total tracked:      %dh\n", recap.TotalHours)
	fmt.Printf("Peak hour:          %s\n", recap.PeakHour)
	fmt.Printf("Weekend share:      %d%%\n", recap.WeekendPercentage)
	fmt.Printf("Most productive:    %s\n", weekdayNames[recap.MostProductiveDay])
	fmt.Printf("Top app:            %s (%s, %s)\n",
		recap.TopApp.Name, recap.TopApp.Category, formatSeconds(recap.TopApp.DurationSeconds))
	fmt.Printf("Top category:       %s\n\n", recap.TopCategory)

	fmt.Println("Category breakdown:")
	if len(recap.CategoryBreakdown) == 0 {
		fmt.Println("  no data")
	}
	for _, share := range recap.CategoryBreakdown {
		fmt.Printf("  %-16s %3d%%\n", share.Category, share.Percentage)
	}
	fmt.Println()

	fmt.Println("Monthly hours:")
	for _, monthly := range recap.MonthlyUsage {
		fmt.Printf("  %s %4dh\n", time.Month(monthly.Month).String()[:3], monthly.Hours)
	}
	fmt.Println()

	fmt.Println("Daily averages:")
	for _, avg := range recap.DailyAverages {
		fmt.Printf("  %-10s %.1fh\n", weekdayNames[avg.Day], avg.Hours)
	}

	if len(recap.Apps) > 0 {
		fmt.Println()
		fmt.Println("Top apps:")
		limit := len(recap.Apps)
		if limit > 10 {
			limit = 10
		}
		for i := 0; i < limit; i++ {
			app := recap.Apps[i]
			fmt.Printf("%2d. %-30s %-14s %s\n", i+1, app.Name, app.Category,
				formatSeconds(app.DurationSeconds))
		}
	}
}
