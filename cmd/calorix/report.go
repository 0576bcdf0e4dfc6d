package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var (
	reportEnd  string
	reportDays int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Average consumption over recent days vs your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			report, err := service.BuildReport(st, user, reportEnd, reportDays)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report %s .. %s\n", report.FromDate, report.ToDate)
			if report.LoggedDays == 0 {
				fmt.Fprintln(out, "No data logged in this window")
				return nil
			}
			fmt.Fprintf(out, "Logged days: %d\n", report.LoggedDays)
			fmt.Fprintf(out, "Avg calories: %.0f kcal", report.AvgCalories)
			if report.HasGoal {
				fmt.Fprintf(out, " (goal %d)", report.CaloriesGoal)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Avg macros: %.1fg protein, %.1fg carbs, %.1fg fat\n",
				report.AvgProteinG, report.AvgCarbsG, report.AvgFatG)
			fmt.Fprintf(out, "Avg water: %.0f ml", report.AvgWaterML)
			if report.HasGoal {
				fmt.Fprintf(out, " (goal %d)", report.WaterGoalML)
			}
			fmt.Fprintln(out)
			if report.HasGoal {
				fmt.Fprintf(out, "Days at calorie goal: %d/%d\n", report.CalorieGoalDays, report.LoggedDays)
				fmt.Fprintf(out, "Days at water goal: %d/%d\n", report.WaterGoalDays, report.LoggedDays)
			}

			fmt.Fprintln(out, "\nDATE\tKCAL\tP\tC\tF\tWATER")
			for _, d := range report.Days {
				fmt.Fprintf(out, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\n",
					d.Date, d.Calories, d.ProteinG, d.CarbsG, d.FatG, d.WaterML)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "Last day of the window (YYYY-MM-DD, default today)")
	reportCmd.Flags().IntVar(&reportDays, "days", 7, "Window size in days")
}
