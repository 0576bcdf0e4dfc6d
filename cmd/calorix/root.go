package calorix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	userFlag string
)

var rootCmd = &cobra.Command{
	Use:   "calorix",
	Short: "calorix tracks nutrition goals, meals, and habits from your terminal",
	Long:  "calorix is a local-first wellness CLI: onboarding, calorie and macro goals, daily food and water logging, fasting, reminders, and challenges.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "User email (defaults to the logged-in user)")
}
