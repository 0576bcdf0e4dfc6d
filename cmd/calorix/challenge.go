package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Manage habit challenges",
}

var (
	challengeDescription string
	challengeDays        int
	challengeType        string
	challengeDate        string
)

var challengeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			c, err := service.AddChallenge(st, user, service.AddChallengeInput{
				Name:        args[0],
				Description: challengeDescription,
				TargetDays:  challengeDays,
				Type:        challengeType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created challenge %s: %d days (%s)\n", c.Name, c.TargetDays, c.ID)
			return nil
		})
	},
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List challenges and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			challenges, err := service.ListChallenges(st, user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(challenges) == 0 {
				fmt.Fprintln(out, "No challenges")
				return nil
			}
			fmt.Fprintln(out, "ID\tNAME\tPROGRESS\tSTATUS")
			for _, c := range challenges {
				completed := 0
				for _, p := range c.Progress {
					if p.Completed {
						completed++
					}
				}
				status := "in progress"
				if c.IsCompleted {
					status = "completed 🏅"
				}
				fmt.Fprintf(out, "%s\t%s\t%d/%d\t%s\n", c.ID, c.Name, completed, c.TargetDays, status)
			}
			return nil
		})
	},
}

var challengeCheckinCmd = &cobra.Command{
	Use:   "checkin <id>",
	Short: "Mark a challenge day as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			c, err := service.CheckInChallenge(st, user, args[0], challengeDate)
			if err != nil {
				return err
			}
			if c.IsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Challenge %q completed! Medal earned 🏅\n", c.Name)
				return nil
			}
			completed := 0
			for _, p := range c.Progress {
				if p.Completed {
					completed++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked in: %d/%d days\n", completed, c.TargetDays)
			return nil
		})
	},
}

var challengeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			if err := service.DeleteChallenge(st, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Challenge deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)
	challengeCmd.AddCommand(challengeAddCmd)
	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeCheckinCmd)
	challengeCmd.AddCommand(challengeDeleteCmd)

	challengeAddCmd.Flags().StringVar(&challengeDescription, "description", "", "Challenge description")
	challengeAddCmd.Flags().IntVar(&challengeDays, "days", 7, "Target number of completed days")
	challengeAddCmd.Flags().StringVar(&challengeType, "type", "custom", "Challenge type (standard, custom)")
	challengeCheckinCmd.Flags().StringVar(&challengeDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
