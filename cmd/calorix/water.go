package calorix

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var waterDate string

var waterCmd = &cobra.Command{
	Use:   "water <delta-ml>",
	Short: "Adjust a day's water intake (negative to remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q (expected ml as a whole number)", args[0])
		}
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			log, events, err := service.AdjustWater(st, user, waterDate, delta)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d ml\n", log.Date, log.WaterIntakeML)
			printNotifications(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.Flags().StringVar(&waterDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
