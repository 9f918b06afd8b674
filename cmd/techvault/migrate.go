package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, closeKV, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeKV()
		log.Info("migrations applied", "driver", cfg.Storage.Driver)
		return nil
	},
}
