package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage daily reminders",
}

var reminderTime string

var reminderAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			r, err := service.AddReminder(st, user, args[0], reminderTime)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s at %s (%s)\n", r.Name, r.Time, r.ID)
			return nil
		})
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			reminders, err := service.ListReminders(st, user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reminders) == 0 {
				fmt.Fprintln(out, "No reminders")
				return nil
			}
			fmt.Fprintln(out, "ID\tTIME\tNAME\tACTIVE")
			for _, r := range reminders {
				fmt.Fprintf(out, "%s\t%s\t%s\t%t\n", r.ID, r.Time, r.Name, r.Active)
			}
			return nil
		})
	},
}

var reminderToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			active, err := service.ToggleReminder(st, user, args[0])
			if err != nil {
				return err
			}
			if active {
				fmt.Fprintln(cmd.OutOrStdout(), "Reminder enabled")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Reminder disabled")
			}
			return nil
		})
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			if err := service.DeleteReminder(st, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reminder deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderToggleCmd)
	reminderCmd.AddCommand(reminderDeleteCmd)

	reminderAddCmd.Flags().StringVar(&reminderTime, "at", "", "Time of day (HH:MM)")
	reminderAddCmd.MarkFlagRequired("at")
}
