package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
	"github.com/spf13/cobra"

	"github.com/Spok95/techvault/internal/config"
	"github.com/Spok95/techvault/internal/infra/logger"
)

var (
	cfgPath string
	cfg     config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "techvault",
	Short:         "Personal inventory: hardware, warranties, subscriptions, credentials",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// .env необязателен, переменные окружения важнее
		_ = gotenv.Load()

		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = c
		log = logger.New(cfg.App.Env)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config/example.yaml", `YAML config ("" for env only, APP_* vars override it)`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(digestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
