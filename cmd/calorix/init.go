package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/app"
	"github.com/rafavit29-crypto/app-calorix/internal/config"
	"github.com/rafavit29-crypto/app-calorix/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local calorix database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := resolveDBPath(cfg)
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized calorix database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
