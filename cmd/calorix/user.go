package calorix

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local user accounts",
}

var userLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Select (and create if needed) the active user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(strings.ToLower(args[0]))
		return withStore(func(st store.Store) error {
			if err := st.EnsureUser(email); err != nil {
				return err
			}
			if err := st.SetConfig(store.ConfigCurrentUser, email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		})
	},
}

var userCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			current, ok, err := st.GetConfig(store.ConfigCurrentUser)
			if err != nil {
				return err
			}
			if !ok || current == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No user selected")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		})
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			users, err := st.Users()
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users yet")
				return nil
			}
			for _, u := range users {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userCurrentCmd)
	userCmd.AddCommand(userListCmd)
}
