package calorix

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Track intermittent fasting",
}

var fastHours float64

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			state, err := service.StartFast(st, user, fastHours, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting for %gh, until %s\n",
				state.DurationHours, state.EndTime.Local().Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var fastWatch bool

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show fast progress; --watch polls until completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for {
				state, event, err := service.TickFast(st, user, time.Now())
				if err != nil {
					return err
				}
				if event != nil {
					fmt.Fprintln(out, event.Message)
				}
				if state == nil {
					fmt.Fprintln(out, "No fast in progress")
					return nil
				}
				if !state.Active {
					fmt.Fprintf(out, "Last %gh fast completed at %s\n",
						state.DurationHours, state.EndTime.Local().Format("2006-01-02 15:04"))
					return nil
				}
				remaining := service.FastingRemaining(state, time.Now())
				fmt.Fprintf(out, "Fasting: %s remaining (ends %s)\n",
					remaining.Round(time.Second), state.EndTime.Local().Format("15:04"))
				if !fastWatch {
					return nil
				}
				time.Sleep(time.Second)
			}
		})
	},
}

var fastCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the current fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			if err := service.CancelFast(st, user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fast cancelled")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd)
	fastCmd.AddCommand(fastStatusCmd)
	fastCmd.AddCommand(fastCancelCmd)

	fastStartCmd.Flags().Float64Var(&fastHours, "hours", 16, "Fast duration in hours")
	fastStatusCmd.Flags().BoolVar(&fastWatch, "watch", false, "Poll every second until the fast completes")
}
