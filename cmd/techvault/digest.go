package main

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/Spok95/techvault/internal/bot"
	"github.com/Spok95/techvault/internal/dialog"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send one expiry digest to the Telegram admin chat and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Telegram.Token == "" {
			return errors.New("telegram.token is not set")
		}
		kv, closeKV, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeKV()

		tg, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return err
		}
		return bot.New(tg, log, newInventory(kv, cfg), dialog.NewRepo(kv), cfg.Telegram.AdminChatID).SendDigest(cmd.Context())
	},
}
