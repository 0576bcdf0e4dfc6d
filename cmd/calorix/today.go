package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's consumption against your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			status, err := service.DaySummary(st, user, todayDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			if !status.HasGoal {
				fmt.Fprintf(out, "Calories: %.0f kcal\n", status.CaloriesConsumed)
				fmt.Fprintf(out, "Protein: %.1fg  Carbs: %.1fg  Fat: %.1fg\n",
					status.ProteinConsumedG, status.CarbsConsumedG, status.FatConsumedG)
				fmt.Fprintf(out, "Water: %d ml\n", status.WaterIntakeML)
				fmt.Fprintln(out, "No targets yet; run 'calorix onboard' to set them.")
				return nil
			}

			fmt.Fprintf(out, "Calories: %.0f / %d kcal (%.0f remaining)\n",
				status.CaloriesConsumed, status.CaloriesGoal, status.RemainingCalories)
			fmt.Fprintf(out, "Protein: %.1f / %dg\n", status.ProteinConsumedG, status.ProteinGoalG)
			fmt.Fprintf(out, "Carbs: %.1f / %dg\n", status.CarbsConsumedG, status.CarbGoalG)
			fmt.Fprintf(out, "Fat: %.1f / %dg\n", status.FatConsumedG, status.FatGoalG)
			fmt.Fprintf(out, "Water: %d / %d ml\n", status.WaterIntakeML, status.WaterGoalML)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
