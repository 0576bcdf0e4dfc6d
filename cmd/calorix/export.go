package calorix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all user data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			raw, err := service.ExportJSON(st, user)
			if err != nil {
				return err
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data for %s to %s\n", user, exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}
